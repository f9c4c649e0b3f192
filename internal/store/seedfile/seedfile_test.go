package seedfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefault(t *testing.T) {
	items := Default()
	require.Len(t, items, 4)
	require.Equal(t, "Passports", items[0].Description)
	require.Equal(t, 22, items[3].Quantity)
	require.True(t, items[3].Packed)

	items[0].Description = "changed"
	require.Equal(t, "Passports", Default()[0].Description, "Default returns a fresh slice")
}

func TestLoad_JSON(t *testing.T) {
	p := writeFile(t, "seed.json", `[
  {"id": "x", "description": " Tent ", "quantity": 1},
  {"description": "Stove", "quantity": 0, "packed": true}
]`)

	items, err := Load(p)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "x", items[0].ID)
	require.Equal(t, "Tent", items[0].Description)
	require.NotEmpty(t, items[1].ID, "missing id gets generated")
	require.Equal(t, 1, items[1].Quantity, "quantity below 1 is raised to 1")
	require.True(t, items[1].Packed)
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, "seed.yml", `
- id: a
  description: Sunscreen
  quantity: 2
- id: b
  description: Hat
  quantity: 1
  packed: true
`)

	items, err := Load(p)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Sunscreen", items[0].Description)
	require.Equal(t, 2, items[0].Quantity)
	require.True(t, items[1].Packed)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_Rejects(t *testing.T) {
	p := writeFile(t, "empty.json", `[{"description": "   "}]`)
	_, err := Load(p)
	require.ErrorIs(t, err, ErrEmptyDescription)

	p = writeFile(t, "dup.yaml", "- {id: a, description: A}\n- {id: a, description: B}\n")
	_, err = Load(p)
	require.ErrorIs(t, err, ErrDuplicateID)

	p = writeFile(t, "bad.json", `{not json`)
	_, err = Load(p)
	require.Error(t, err)
}

func TestParse_NumericIDs(t *testing.T) {
	want := []string{"1", "1700000000000"}

	items, err := Parse([]byte(`[{"id":1,"description":"Passports","quantity":2},{"id":1700000000000,"description":"Socks"}]`), FormatJSON)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, want, []string{items[0].ID, items[1].ID})
	require.Equal(t, "Passports", items[0].Description)
	require.Equal(t, 2, items[0].Quantity)

	items, err = Parse([]byte("- {id: 1, description: Passports, quantity: 2}\n- {id: 1700000000000, description: Socks}\n"), FormatYAML)
	require.NoError(t, err)
	require.Equal(t, want, []string{items[0].ID, items[1].ID}, "YAML and JSON agree on ids")
}

func TestParse_IDShapes(t *testing.T) {
	items, err := Parse([]byte(`[{"id":"a","description":"A"},{"id":null,"description":"B"}]`), FormatJSON)
	require.NoError(t, err)
	require.Equal(t, "a", items[0].ID)
	require.NotEmpty(t, items[1].ID, "null id gets generated")

	_, err = Parse([]byte(`[{"id":1,"description":"A"},{"id":"1","description":"B"}]`), FormatJSON)
	require.ErrorIs(t, err, ErrDuplicateID, "numeric and string forms of the same id collide")

	_, err = Parse([]byte(`[{"id":true,"description":"A"}]`), FormatJSON)
	require.Error(t, err)
}
