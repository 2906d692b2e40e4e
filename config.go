package locale

import (
	"errors"
	"log/slog"
)

// Config captures how UserFactory assembles its chain.
type Config struct {
	// Detector decides the ambient locale per category. Defaults to
	// DefaultDetector.
	Detector Detector
	// System answers for detected and explicit identifiers. Defaults to
	// NewSystemFactory.
	System Factory
	// Overrides, when set, is consulted before System.
	Overrides *TableFactory
	Hooks     []QueryHook
	Logger    *slog.Logger

	overridePaths    []string
	overrideFallback FallbackResolver
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildConfig always returns a usable Config; err reports the options or
// override files that could not be applied.
func buildConfig(opts []Option) (*Config, error) {
	cfg := &Config{}

	var errs []error
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			errs = append(errs, err)
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}
	if cfg.Detector == nil {
		cfg.Detector = DefaultDetector()
	}
	if cfg.System == nil {
		cfg.System = NewSystemFactory()
	}

	if len(cfg.overridePaths) > 0 {
		if cfg.Overrides != nil {
			errs = append(errs, errors.New("locale: override paths and an override table are mutually exclusive"))
		} else {
			var tableOpts []TableOption
			if cfg.overrideFallback != nil {
				tableOpts = append(tableOpts, WithTableFallback(cfg.overrideFallback))
			}
			table, err := LoadTableFactory(cfg.overridePaths, tableOpts...)
			if err != nil {
				errs = append(errs, err)
			} else {
				cfg.Overrides = table
			}
		}
	}

	return cfg, errors.Join(errs...)
}

// WithDetector replaces the ambient locale detector.
func WithDetector(detector Detector) Option {
	return func(c *Config) error {
		if detector == nil {
			return errors.New("locale: nil detector")
		}
		c.Detector = detector
		return nil
	}
}

// WithSystemFactory replaces the native factory, mostly for tests.
func WithSystemFactory(factory Factory) Option {
	return func(c *Config) error {
		if factory == nil {
			return errors.New("locale: nil system factory")
		}
		c.System = factory
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

func WithHooks(hooks ...QueryHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

// WithOverrides loads override tables from JSON or YAML files.
func WithOverrides(paths ...string) Option {
	return func(c *Config) error {
		c.overridePaths = append(c.overridePaths, paths...)
		return nil
	}
}

// WithOverrideFallback lets files loaded through WithOverrides answer for
// identifiers they do not list, using resolver's chain.
func WithOverrideFallback(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.overrideFallback = resolver
		return nil
	}
}

func WithOverrideTable(table *TableFactory) Option {
	return func(c *Config) error {
		c.Overrides = table
		return nil
	}
}
