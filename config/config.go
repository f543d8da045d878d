// Package config loads the settings of the degrees tool.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Name index backends.
const (
	IndexMemory        = "memory"
	IndexElasticsearch = "elasticsearch"
)

// Config is the top level configuration document.
type Config struct {
	DataDir   string          `yaml:"data_dir"`
	Store     StoreConfig     `yaml:"store"`
	NameIndex NameIndexConfig `yaml:"name_index"`
	Search    SearchConfig    `yaml:"search"`
	Log       LogConfig       `yaml:"log"`

	// MetricsFile, when set, receives the search metrics in the Prometheus
	// text format when the session ends.
	MetricsFile string `yaml:"metrics_file"`
}

// StoreConfig selects where the cast graph lives.
type StoreConfig struct {
	Backend string `yaml:"backend" validate:"required,oneof=memory postgres"`
	DSN     string `yaml:"dsn" validate:"required_if=Backend postgres"`
}

// NameIndexConfig selects the index used to resolve names to people.
type NameIndexConfig struct {
	Backend     string   `yaml:"backend" validate:"required,oneof=memory elasticsearch"`
	Nodes       []string `yaml:"nodes" validate:"dive,url"`
	Suggestions int      `yaml:"suggestions" validate:"min=0,max=50"`
}

// SearchConfig tunes the path search.
type SearchConfig struct {
	Frontier      string `yaml:"frontier" validate:"oneof=queue stack bfs dfs"`
	MaxExpansions int    `yaml:"max_expansions" validate:"min=0"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		DataDir: "large",
		Store: StoreConfig{
			Backend: StoreMemory,
		},
		NameIndex: NameIndexConfig{
			Backend:     IndexMemory,
			Suggestions: 5,
		},
		Search: SearchConfig{
			Frontier: "queue",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their YAML path rather than their Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads the YAML file at path on top of Default and validates the
// result. An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return cfg, err
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Read is Load without validation, for callers that apply further overrides
// before validating.
func Read(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values and the rules that span several fields.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, describe(fe))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.Store.Backend == StoreMemory && c.DataDir == "" {
		return errors.New("invalid config: data_dir is required for the memory store")
	}
	if c.NameIndex.Backend == IndexElasticsearch && len(c.NameIndex.Nodes) == 0 {
		return errors.New("invalid config: name_index.nodes is required for elasticsearch")
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required", "required_if":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "min", "max":
		return fmt.Sprintf("%s must satisfy %s=%s", field, fe.Tag(), fe.Param())
	case "url":
		return fmt.Sprintf("%s is not a valid URL: %q", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
