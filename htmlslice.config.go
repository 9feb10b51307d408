package htmlslice

import (
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config carries host-level render settings, typically loaded once at
// startup from an application config file and converted to render options.
type Config struct {
	// Debug enables development logging of render passes.
	Debug bool `yaml:"debug"`
	// DefaultLayout wraps slices that declare no layout of their own.
	DefaultLayout string `yaml:"default_layout"`
	// SanitizerProfile selects the WriteSanitized policy: "ugc" (default)
	// or "strict".
	SanitizerProfile string `yaml:"sanitizer_profile"`
}

// ConfigFromYAML parses a Config from YAML.
func ConfigFromYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigError(err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.SanitizerProfile {
	case "", SanitizerProfileUGC, SanitizerProfileStrict:
		return nil
	default:
		return NewUnknownSanitizerProfileError(c.SanitizerProfile)
	}
}

// Options converts the config into render options ready to pass to the
// render entry points.
func (c *Config) Options() ([]RenderOption, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	var opts []RenderOption
	if c.Debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, NewConfigError(err)
		}
		opts = append(opts, WithLogger(logger))
	}
	if c.DefaultLayout != "" {
		opts = append(opts, WithDefaultLayout(c.DefaultLayout))
	}
	if c.SanitizerProfile == SanitizerProfileStrict {
		opts = append(opts, WithSanitizer(bluemonday.StrictPolicy()))
	}
	return opts, nil
}
