package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"plucheck/schema"
)

const (
	KeyCheckSchema         = "check.schema"
	KeyCheckHeaderScanRows = "check.header_scan_rows"
	KeyCheckAutoFix        = "check.auto_fix"
	KeyHistoryDatabase     = "history.database"
	KeyAliases             = "aliases"
)

type Config struct {
	Check   CheckConfig   `mapstructure:"check" validate:"required"`
	History HistoryConfig `mapstructure:"history"`

	// Aliases adds site-specific header spellings per canonical field key,
	// on top of the built-in alias lists.
	Aliases map[string][]string `mapstructure:"aliases"`
}

type CheckConfig struct {
	Schema         string `mapstructure:"schema" validate:"required"`
	HeaderScanRows int    `mapstructure:"header_scan_rows" validate:"gte=1,lte=100"`
	AutoFix        bool   `mapstructure:"auto_fix"`
}

type HistoryConfig struct {
	Database string `mapstructure:"database" validate:"required"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# plucheck configuration
check:
  schema: "product"
  header_scan_rows: 10
  auto_fix: false

history:
  database: "plucheck.db"

# Extra header spellings per canonical field, merged with the built-in
# aliases. Example:
#
# aliases:
#   plu_code:
#     - "item code"
aliases: {}
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := schema.ByName(cfg.Check.Schema); err != nil {
		return nil, fmt.Errorf("validation failed: check.schema: %w", err)
	}
	if err := validateAliases(cfg.Aliases); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyCheckSchema, "product")
	v.SetDefault(KeyCheckHeaderScanRows, 10)
	v.SetDefault(KeyCheckAutoFix, false)
	v.SetDefault(KeyHistoryDatabase, "plucheck.db")
	v.SetDefault(KeyAliases, map[string][]string{})
}

// validateAliases rejects alias keys that match no canonical field in any
// schema; a typoed key would otherwise be silently ignored at resolve time.
func validateAliases(aliases map[string][]string) error {
	known := make(map[string]bool)
	for _, name := range schema.SupportedNames() {
		s, err := schema.ByName(name)
		if err != nil {
			return err
		}
		for _, field := range s.Fields {
			known[field.Key] = true
		}
	}

	for key, values := range aliases {
		if !known[key] {
			return fmt.Errorf("validation failed: aliases key %q matches no known field", key)
		}
		for i, value := range values {
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf("validation failed: aliases[%s][%d] is empty", key, i)
			}
		}
	}
	return nil
}
