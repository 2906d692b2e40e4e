package locale

import "log/slog"

// UserFactory returns the factory applications normally want: the user's
// locale as detected at query time, read from the native subsystem, with
// invariant data for anything it cannot answer. Override tables, when
// configured, take precedence over native data.
//
// UserFactory never fails. Options that cannot be applied are logged and
// skipped.
func UserFactory(opts ...Option) Factory {
	cfg, err := buildConfig(opts)
	if err != nil {
		cfg.Logger.Warn("locale: ignoring invalid user factory options", "error", err)
	}
	return NewUserFactory(cfg)
}

// NewUserFactory assembles the chain described by cfg.
func NewUserFactory(cfg *Config) Factory {
	defaults, _ := buildConfig(nil)
	if cfg == nil {
		cfg = defaults
	}
	logger, detector, system := cfg.Logger, cfg.Detector, cfg.System
	if logger == nil {
		logger = defaults.Logger
	}
	if detector == nil {
		detector = defaults.Detector
	}
	if system == nil {
		system = defaults.System
	}

	bound := &userBoundFactory{detector: detector, system: system, logger: logger}
	if cfg.Overrides != nil {
		bound.overrides = cfg.Overrides
	}

	composite, _ := NewCompositeFactory([]Factory{
		bound,
		NewInvariantFactory(),
	}, WithCompositeLogger(logger))
	return WrapFactoryWithHooks(composite, cfg.Hooks...)
}

// userBoundFactory resolves ambient queries through a Detector on every
// call, so changes to the user's settings are seen by the next query. The
// override table, when present, is asked before the system factory.
type userBoundFactory struct {
	detector  Detector
	overrides Factory
	system    Factory
	logger    *slog.Logger
}

var _ Factory = &userBoundFactory{}

func (u *userBoundFactory) NumericInfo(locale string) (Numeric, error) {
	return userQuery(u, CategoryNumeric, opNumeric, locale, Factory.NumericInfo)
}

func (u *userBoundFactory) TimeInfo(locale string) (Time, error) {
	return userQuery(u, CategoryTime, opTime, locale, Factory.TimeInfo)
}

func userQuery[T any](u *userBoundFactory, category Category, op, locale string, query func(Factory, string) (T, error)) (T, error) {
	var zero T
	id, native, err := u.resolve(category, op, locale)
	if err != nil {
		return zero, err
	}

	if u.overrides != nil {
		v, err := query(u.overrides, id)
		if err == nil {
			return v, nil
		}
		u.logger.Debug("locale override missed", "op", op, "locale", id, "error", err)
	}

	v, err := query(u.system, native)
	if err != nil {
		return zero, withQuery(op, locale, err)
	}
	return v, nil
}

// resolve returns the identifier for the override table and the one for the
// system factory. They differ only when the platform detector answered: the
// system factory then gets Current and reads the native user locale itself.
func (u *userBoundFactory) resolve(category Category, op, locale string) (string, string, error) {
	if locale != Current {
		return locale, locale, nil
	}

	id, platform, err := detectWithSource(u.detector, category)
	if err != nil {
		u.logger.Debug("locale detection failed", "category", category, "error", err)
		return "", "", newError(op, locale, KindUnsupported, err)
	}
	if IsNeutral(id) {
		return "", "", newError(op, locale, KindUnsupported, nil)
	}

	u.logger.Debug("locale detected", "category", category, "locale", id, "platform", platform)
	if platform {
		return id, Current, nil
	}
	return id, id, nil
}
