package locale

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// TableFactory answers from a fixed table of locale data, typically loaded
// from override files with LoadTableFactory. Identifiers are matched after
// canonicalization. Ambient queries are not answered: a table has no notion
// of the current user.
type TableFactory struct {
	numeric  map[string]Numeric
	times    map[string]Time
	resolver FallbackResolver
}

var _ Factory = &TableFactory{}

// TableEntry is the data of one locale. Either half may be nil, in which
// case queries for that half report ErrUnsupported.
type TableEntry struct {
	Numeric *Numeric
	Time    *Time
}

// TableOption configures a TableFactory.
type TableOption func(*TableFactory)

// WithTableFallback consults resolver when an exact lookup misses.
func WithTableFallback(resolver FallbackResolver) TableOption {
	return func(t *TableFactory) {
		t.resolver = resolver
	}
}

// NewTableFactory builds a table from entries keyed by locale identifier.
// Keys that canonicalize to the same tag are rejected.
func NewTableFactory(entries map[string]TableEntry, opts ...TableOption) (*TableFactory, error) {
	t := &TableFactory{
		numeric: make(map[string]Numeric),
		times:   make(map[string]Time),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}

	seen := make(map[string]string, len(entries))
	for id, entry := range entries {
		key := Canonical(id)
		if key == "" {
			return nil, fmt.Errorf("%w: table entry with empty locale", ErrMalformed)
		}
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: table entries %q and %q both name %s", ErrMalformed, prev, id, key)
		}
		seen[key] = id

		if entry.Numeric != nil {
			t.numeric[key] = entry.Numeric.clone()
		}
		if entry.Time != nil {
			t.times[key] = *entry.Time
		}
	}

	return t, nil
}

// Locales lists the canonical identifiers with any data, sorted.
func (t *TableFactory) Locales() []string {
	if t == nil {
		return nil
	}
	set := make(map[string]struct{}, len(t.numeric)+len(t.times))
	for id := range t.numeric {
		set[id] = struct{}{}
	}
	for id := range t.times {
		set[id] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (t *TableFactory) NumericInfo(locale string) (Numeric, error) {
	if t == nil {
		return Numeric{}, newError(opNumeric, locale, KindUnsupported, nil)
	}
	n, err := tableLookup(t, t.numeric, opNumeric, locale)
	if err != nil {
		return Numeric{}, err
	}
	return n.clone(), nil
}

func (t *TableFactory) TimeInfo(locale string) (Time, error) {
	if t == nil {
		return Time{}, newError(opTime, locale, KindUnsupported, nil)
	}
	return tableLookup(t, t.times, opTime, locale)
}

func tableLookup[T any](t *TableFactory, values map[string]T, op, locale string) (T, error) {
	var zero T
	key := Canonical(locale)
	if key == "" {
		return zero, newError(op, locale, KindUnsupported, nil)
	}
	if v, ok := values[key]; ok {
		return v, nil
	}
	if t.resolver != nil {
		for _, fallback := range t.resolver.Resolve(key) {
			if v, ok := values[Canonical(fallback)]; ok {
				return v, nil
			}
		}
	}
	return zero, newError(op, locale, KindUnsupported, nil)
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday accepts English weekday names, full or abbreviated to three
// letters, in any case.
func ParseWeekday(name string) (time.Weekday, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if day, ok := weekdayNames[name]; ok {
		return day, nil
	}
	if len(name) == 3 {
		for full, day := range weekdayNames {
			if strings.HasPrefix(full, name) {
				return day, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrMalformed, name)
}
