package locale

import (
	"context"
	"log/slog"
)

// CompositeFactory delegates to an ordered chain of factories. For each query
// the first delegate that succeeds answers it; results are never merged
// across delegates. When every delegate fails the last error is returned, so
// chains should end in an always-succeeding factory such as InvariantFactory.
type CompositeFactory struct {
	factories []Factory
	logger    *slog.Logger
}

var _ Factory = &CompositeFactory{}

type compositeConfig struct {
	logger *slog.Logger
}

// CompositeOption configures a CompositeFactory.
type CompositeOption func(*compositeConfig)

// WithCompositeLogger logs every fall-through to the next delegate.
func WithCompositeLogger(logger *slog.Logger) CompositeOption {
	return func(cfg *compositeConfig) {
		cfg.logger = logger
	}
}

// NewCompositeFactory builds a composite over factories in priority order.
// Nil entries are skipped and nested composites are flattened in place.
func NewCompositeFactory(factories []Factory, opts ...CompositeOption) (*CompositeFactory, error) {
	cfg := compositeConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger()
	}

	flattened := make([]Factory, 0, len(factories))
	for _, factory := range factories {
		if factory == nil {
			continue
		}
		if composite, ok := factory.(*CompositeFactory); ok {
			if composite == nil {
				continue
			}
			flattened = append(flattened, composite.factories...)
			continue
		}
		flattened = append(flattened, factory)
	}

	if len(flattened) == 0 {
		return nil, ErrNoFactories
	}

	return &CompositeFactory{factories: flattened, logger: cfg.logger}, nil
}

// Factories returns a copy of the delegate chain.
func (c *CompositeFactory) Factories() []Factory {
	if c == nil {
		return nil
	}
	out := make([]Factory, len(c.factories))
	copy(out, c.factories)
	return out
}

func (c *CompositeFactory) NumericInfo(locale string) (Numeric, error) {
	return firstSuccess(c, opNumeric, locale, Factory.NumericInfo)
}

func (c *CompositeFactory) TimeInfo(locale string) (Time, error) {
	return firstSuccess(c, opTime, locale, Factory.TimeInfo)
}

func firstSuccess[T any](c *CompositeFactory, op, locale string, query func(Factory, string) (T, error)) (T, error) {
	var zero T
	if c == nil || len(c.factories) == 0 {
		return zero, newError(op, locale, KindUnsupported, ErrNoFactories)
	}

	var lastErr error
	for i, factory := range c.factories {
		result, err := query(factory, locale)
		if err == nil {
			return result, nil
		}
		lastErr = err
		c.logFallThrough(op, locale, i, err)
	}

	return zero, withQuery(op, locale, lastErr)
}

func (c *CompositeFactory) logFallThrough(op, locale string, index int, err error) {
	level := slog.LevelDebug
	if KindOf(err) == KindOSFailure {
		level = slog.LevelWarn
	}
	c.logger.Log(context.Background(), level, "locale factory fell through",
		"op", op,
		"locale", locale,
		"delegate", index,
		"remaining", len(c.factories)-index-1,
		"error", err,
	)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
