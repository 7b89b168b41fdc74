package catalog

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/configloader"
	"github.com/go-playground/validator/v10"
)

// ErrModelNotFound is returned when a logical model name is not in the catalog.
var ErrModelNotFound = errors.New("model not found in free-tier catalog")

// Entry describes one free-tier model.
type Entry struct {
	// LogicalName is the name callers use to request the model.
	LogicalName string `json:"name" yaml:"name" validate:"required"`
	// Provider is the vendor serving the model, e.g. "openai", "meta", "google".
	Provider string `json:"provider" yaml:"provider" validate:"required"`
	// Model is the provider-side model identifier sent on the wire.
	Model string `json:"model" yaml:"model" validate:"required"`
	// ContextLength is the model's context window in tokens.
	ContextLength int `json:"context_length" yaml:"context_length" validate:"gt=0"`
	// Free indicates the model is served at no monetary cost.
	Free bool `json:"free" yaml:"free"`
}

// Config is the serialized form of a catalog.
type Config struct {
	Models []*Entry `json:"models" yaml:"models"`
}

// Catalog is an immutable set of free-tier model entries keyed by logical name.
type Catalog struct {
	entries map[string]*Entry
	names   []string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// New builds a Catalog from a config, validating every entry.
func New(cfg *Config) (*Catalog, error) {
	c := &Catalog{
		entries: make(map[string]*Entry, len(cfg.Models)),
	}
	for _, entry := range cfg.Models {
		if err := validate.Struct(entry); err != nil {
			return nil, errors.Wrapf(err, "invalid catalog entry: %q", entry.LogicalName)
		}
		if _, ok := c.entries[entry.LogicalName]; ok {
			return nil, errors.Errorf("duplicate catalog entry: %q", entry.LogicalName)
		}
		c.entries[entry.LogicalName] = entry
		c.names = append(c.names, entry.LogicalName)
	}
	sort.Strings(c.names)
	return c, nil
}

// Load builds a Catalog from a YAML or JSON file.
func Load(file string) (*Catalog, error) {
	cfg := new(Config)
	err := configloader.UnmarshalAndExpand(file, cfg)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// Default returns the built-in free-tier catalog.
func Default() *Catalog {
	c, err := New(&Config{
		Models: []*Entry{
			{
				LogicalName:   "gpt-oss-20b",
				Provider:      "openai",
				Model:         "gpt-oss-20b",
				ContextLength: 8192,
				Free:          true,
			},
			{
				LogicalName:   "llama-3.1-8b-instruct",
				Provider:      "meta",
				Model:         "llama-3.1-8b-instruct",
				ContextLength: 8192,
				Free:          true,
			},
			{
				LogicalName:   "gemma-2-9b-it",
				Provider:      "google",
				Model:         "gemma-2-9b-it",
				ContextLength: 8192,
				Free:          true,
			},
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the entry for a logical model name.
func (c *Catalog) Lookup(name string) (*Entry, error) {
	entry, ok := c.entries[name]
	if !ok {
		return nil, errors.WithMessagef(ErrModelNotFound, "model: %q", name)
	}
	return entry, nil
}

// Has reports whether a logical model name is in the catalog.
func (c *Catalog) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Names returns the logical model names in the catalog, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}
