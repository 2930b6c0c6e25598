package main

import (
	"fmt"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
)

// config is a schuko.Configuration with defaults, optionally overlayed by
// a YAML configuration file. Nested YAML keys are accessible with dots, e.g.
//
//	tracelevel:
//	  rope: Debug
//
// is accessible as key "tracelevel.rope".
type config struct {
	*koanfadapter.KConf
}

var _ schuko.Configuration = (*config)(nil)

func newConfig() *config {
	c := &config{KConf: koanfadapter.New(koanf.New("."), "", nil)}
	c.InitDefaults()
	return c
}

// loadConfig creates a configuration from defaults and, if path is non-empty,
// from the YAML file at path.
func loadConfig(path string) (*config, error) {
	c := newConfig()
	if path == "" {
		return c, nil
	}
	if err := c.Koanf().Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("configuration %s: %w", path, err)
	}
	return c, nil
}

// InitDefaults sets the default configuration. Part of interface
// schuko.Configuration.
func (c *config) InitDefaults() {
	c.KConf.InitDefaults()
	c.Koanf().Load(confmap.Provider(map[string]interface{}{
		"tracing.adapter":   "go",
		"tracelevel.root":   "Error",
		"tracelevel.rope":   "Error",
		"textfile.fragsize": 0,
		"view.preview":      24,
	}, "."), nil)
}
