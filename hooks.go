package locale

import (
	"context"
	"log/slog"
)

// QueryHook observes factory queries. BeforeQuery may rewrite the locale
// being asked for; AfterQuery may inspect or replace the outcome.
type QueryHook interface {
	BeforeQuery(ctx *QueryContext)
	AfterQuery(ctx *QueryContext)
}

// QueryContext carries one query through the hooks.
type QueryContext struct {
	// Op is "numeric" or "time".
	Op     string
	Locale string

	// Numeric is set after a numeric query, Time after a time query.
	Numeric Numeric
	Time    Time
	Error   error

	Metadata map[string]any
}

func (ctx *QueryContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
	ctx.Metadata[key] = value
}

func (ctx *QueryContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

type QueryHookFuncs struct {
	Before func(ctx *QueryContext)
	After  func(ctx *QueryContext)
}

func (h QueryHookFuncs) BeforeQuery(ctx *QueryContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h QueryHookFuncs) AfterQuery(ctx *QueryContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

var _ Factory = &HookedFactory{}

// HookedFactory runs hooks around every query of the wrapped factory.
type HookedFactory struct {
	next  Factory
	hooks []QueryHook
}

// WrapFactoryWithHooks returns next unchanged when there is nothing to run.
func WrapFactoryWithHooks(next Factory, hooks ...QueryHook) Factory {
	if next == nil || len(hooks) == 0 {
		return next
	}

	filtered := make([]QueryHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}

	if len(filtered) == 0 {
		return next
	}

	return &HookedFactory{next: next, hooks: filtered}
}

func (f *HookedFactory) NumericInfo(locale string) (Numeric, error) {
	if f == nil || f.next == nil {
		return Numeric{}, newError(opNumeric, locale, KindUnsupported, nil)
	}
	ctx := f.run(opNumeric, locale, func(ctx *QueryContext) {
		ctx.Numeric, ctx.Error = f.next.NumericInfo(ctx.Locale)
	})
	if ctx.Error != nil {
		return Numeric{}, ctx.Error
	}
	return ctx.Numeric, nil
}

func (f *HookedFactory) TimeInfo(locale string) (Time, error) {
	if f == nil || f.next == nil {
		return Time{}, newError(opTime, locale, KindUnsupported, nil)
	}
	ctx := f.run(opTime, locale, func(ctx *QueryContext) {
		ctx.Time, ctx.Error = f.next.TimeInfo(ctx.Locale)
	})
	if ctx.Error != nil {
		return Time{}, ctx.Error
	}
	return ctx.Time, nil
}

func (f *HookedFactory) run(op, locale string, query func(*QueryContext)) *QueryContext {
	ctx := &QueryContext{Op: op, Locale: locale}

	for _, hook := range f.hooks {
		hook.BeforeQuery(ctx)
	}

	query(ctx)

	for _, hook := range f.hooks {
		hook.AfterQuery(ctx)
	}

	return ctx
}

// LoggingHook logs each completed query: failures at Warn when the native
// subsystem broke, at Debug when the locale is simply unknown, and successes
// at Debug.
func LoggingHook(logger *slog.Logger) QueryHook {
	if logger == nil {
		logger = discardLogger()
	}
	return QueryHookFuncs{
		After: func(ctx *QueryContext) {
			attrs := []any{"op", ctx.Op, "locale", ctx.Locale}
			if ctx.Error != nil {
				level := slog.LevelDebug
				if KindOf(ctx.Error) == KindOSFailure {
					level = slog.LevelWarn
				}
				logger.Log(context.Background(), level, "locale query failed", append(attrs, "error", ctx.Error)...)
				return
			}

			switch ctx.Op {
			case opNumeric:
				attrs = append(attrs, "decimal", ctx.Numeric.DecimalSeparator(), "grouping", ctx.Numeric.GroupingSeparator())
			case opTime:
				attrs = append(attrs, "short_date", ctx.Time.Layout(StyleShortDate))
			}
			logger.Debug("locale query", attrs...)
		},
	}
}
