package seedfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/packlist/internal/model"
)

// Seed files are read once at startup and never written back.
// YAML for .yaml/.yml, JSON for everything else.

var (
	ErrEmptyDescription = errors.New("empty description")
	ErrDuplicateID      = errors.New("duplicate id")
)

// Default is the list a fresh session starts with.
func Default() []model.Item {
	return []model.Item{
		{ID: "1", Description: "Passports", Quantity: 2},
		{ID: "2", Description: "Socks", Quantity: 12},
		{ID: "3", Description: "Charger", Quantity: 3},
		{ID: "4", Description: "Cellphone", Quantity: 22, Packed: true},
	}
}

// Load reads seed items from path.
func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	items, err := Parse(b, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Format names a seed file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// seedID accepts ids written as strings or numbers, as in
// [{"id": 1, "description": "Passports"}].
type seedID string

func (id *seedID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = seedID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = seedID(n.String())
	return nil
}

// seedItem is the on-disk shape of an item.
type seedItem struct {
	ID          seedID `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Quantity    int    `json:"quantity" yaml:"quantity"`
	Packed      bool   `json:"packed" yaml:"packed"`
}

// Parse decodes and normalizes seed items.
func Parse(b []byte, f Format) ([]model.Item, error) {
	var raw []seedItem
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	}
	items := make([]model.Item, 0, len(raw))
	for _, r := range raw {
		items = append(items, model.Item{
			ID:          strings.TrimSpace(string(r.ID)),
			Description: r.Description,
			Quantity:    r.Quantity,
			Packed:      r.Packed,
		})
	}
	return normalize(items)
}

func normalize(items []model.Item) ([]model.Item, error) {
	out := make([]model.Item, 0, len(items))
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		it.Description = strings.TrimSpace(it.Description)
		if it.Description == "" {
			return nil, fmt.Errorf("item %d: %w", i+1, ErrEmptyDescription)
		}
		if it.ID == "" {
			it.ID = model.NewID()
		}
		if seen[it.ID] {
			return nil, fmt.Errorf("item %d: %w %q", i+1, ErrDuplicateID, it.ID)
		}
		seen[it.ID] = true
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		out = append(out, it)
	}
	return out, nil
}
