package logfilter

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes a log filter configuration file.
type Config struct {
	// Filter is a raw directive string, identical in grammar to the input of
	// Parse.
	Filter string `yaml:"filter"`

	// Modules maps module paths to thresholds. On a duplicated module, the
	// Filter directive string takes precedence over this map.
	Modules map[string]Level `yaml:"modules"`
}

// ParseConfig parses a Config from a YAML file specified as a path on disk.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: error reading config: err=%v", err)
	}

	var cfg *Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: error parsing config: err=%v", err)
	}

	if cfg == nil {
		cfg = &Config{}
	}

	return cfg, nil
}

// FilterSet combines the directive string and the module map into a single
// FilterSet. Module map entries are appended after the directive string in
// sorted key order, so directive-string rules win on duplicated modules and
// the result is deterministic.
func (c *Config) FilterSet() *FilterSet {
	directives := make([]string, 0, len(c.Modules)+1)
	if c.Filter != "" {
		directives = append(directives, c.Filter)
	}

	modules := make([]string, 0, len(c.Modules))
	for module := range c.Modules {
		modules = append(modules, module)
	}
	sort.Strings(modules)

	for _, module := range modules {
		directives = append(directives, module+"="+c.Modules[module].String())
	}

	return Parse(strings.Join(directives, ","))
}

// UnmarshalYAML implements yaml.Unmarshaler so thresholds can be written as
// plain level names in config files.
func (l *Level) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}

	parsed, ok := ParseLevel(name)
	if !ok {
		return fmt.Errorf("config: unknown level name: %s", name)
	}

	*l = parsed
	return nil
}
