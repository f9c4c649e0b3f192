// Package config loads packlist settings with Viper.
//
// Precedence, highest first: command-line flags bound by the caller,
// PACKLIST_* environment variables, packlist.yaml, built-in defaults.
// A missing packlist.yaml is not an error unless it was named explicitly.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/Makepad-fr/packlist/internal/form"
	"github.com/Makepad-fr/packlist/internal/model"
)

const (
	configFileName = "packlist"
	configFileType = "yaml"
	envPrefix      = "PACKLIST"

	KeyTheme       = "theme"
	KeySort        = "sort"
	KeySeedFile    = "seed_file"
	KeyMaxQuantity = "max_quantity"
	KeyLanguage    = "language"
	KeyNoColor     = "no_color"
	KeyDebug       = "debug"
	KeyLogFile     = "log_file"
)

var ErrInvalid = errors.New("invalid config")

var themes = []string{"classic", "neon", "mono"}

// Config is the resolved set of settings.
type Config struct {
	Theme       string `mapstructure:"theme"`
	Sort        string `mapstructure:"sort"`
	SeedFile    string `mapstructure:"seed_file"`
	MaxQuantity int    `mapstructure:"max_quantity"`
	Language    string `mapstructure:"language"`
	NoColor     bool   `mapstructure:"no_color"`
	Debug       bool   `mapstructure:"debug"`
	LogFile     string `mapstructure:"log_file"`
}

// New returns a Viper instance with defaults, env binding and search paths.
// When file is non-empty it is the only config file considered.
func New(file string) *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyTheme, "classic")
	v.SetDefault(KeySort, string(model.SortInput))
	v.SetDefault(KeySeedFile, "")
	v.SetDefault(KeyMaxQuantity, form.DefaultMax)
	v.SetDefault(KeyLanguage, "en")
	v.SetDefault(KeyNoColor, false)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogFile, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		return v
	}
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "packlist"))
	}
	return v
}

// Load reads the config file, if any, and returns validated settings.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that would otherwise fail later.
func (c Config) Validate() error {
	if c.MaxQuantity < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalid, KeyMaxQuantity, c.MaxQuantity)
	}
	if !isTheme(c.Theme) {
		return fmt.Errorf("%w: unknown %s %q (want one of %s)", ErrInvalid, KeyTheme, c.Theme, strings.Join(themes, ", "))
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("%w: %s %q: %v", ErrInvalid, KeyLanguage, c.Language, err)
	}
	return nil
}

// LanguageTag returns the parsed collation language, English if unparsable.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// SortCriterion returns the configured initial sort.
func (c Config) SortCriterion() model.SortCriterion { return model.ParseSort(c.Sort) }

func isTheme(name string) bool {
	name = strings.ToLower(name)
	for _, t := range themes {
		if t == name {
			return true
		}
	}
	return false
}
