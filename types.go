package locale

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Current addresses the locale the environment considers active at call time.
const Current = ""

// GroupingStop terminates a grouping pattern: no further groups are formed
// to the left of the groups listed before it.
const GroupingStop = -1

// Numeric holds the number formatting conventions of a locale.
//
// Group sizes are listed from the decimal point leftwards and the last size
// repeats, so [3] groups thousands and [3 2] yields 12,34,56,789. A trailing
// GroupingStop ends grouping, an empty pattern disables it.
type Numeric struct {
	decimal   string
	separator string
	grouping  []int
}

// NewNumeric validates and builds a Numeric value. Repeating patterns are
// stored in their shortest form, so [3 3] is kept as [3].
func NewNumeric(decimal, separator string, grouping []int) (Numeric, error) {
	if decimal == "" {
		return Numeric{}, fmt.Errorf("%w: empty decimal separator", ErrMalformed)
	}
	if decimal == separator {
		return Numeric{}, fmt.Errorf("%w: decimal and grouping separators are both %q", ErrMalformed, decimal)
	}

	for i, size := range grouping {
		if size == GroupingStop && i == len(grouping)-1 && i > 0 {
			continue
		}
		if size <= 0 {
			return Numeric{}, fmt.Errorf("%w: invalid group size %d at position %d", ErrMalformed, size, i)
		}
	}

	return Numeric{
		decimal:   decimal,
		separator: separator,
		grouping:  compactGrouping(slices.Clone(grouping)),
	}, nil
}

// DecimalSeparator returns the symbol between integer and fractional digits.
func (n Numeric) DecimalSeparator() string { return n.decimal }

// GroupingSeparator returns the symbol between digit groups, possibly empty.
func (n Numeric) GroupingSeparator() string { return n.separator }

// Grouping returns a copy of the grouping pattern.
func (n Numeric) Grouping() []int { return slices.Clone(n.grouping) }

// Groups reports whether the locale groups integer digits at all.
func (n Numeric) Groups() bool {
	return len(n.grouping) > 0 && n.grouping[0] > 0 && n.separator != ""
}

// Equal reports whether both values describe the same conventions.
func (n Numeric) Equal(other Numeric) bool {
	return n.decimal == other.decimal &&
		n.separator == other.separator &&
		slices.Equal(n.grouping, other.grouping)
}

func (n Numeric) String() string {
	return fmt.Sprintf("Numeric{decimal=%q grouping=%q groups=%v}", n.decimal, n.separator, n.grouping)
}

// TimeStyle names one rendering intent for dates and times.
type TimeStyle uint8

const (
	// StyleShortDate is the numeric calendar date, e.g. 12/31/2024.
	StyleShortDate TimeStyle = iota
	// StyleTime is the time of day.
	StyleTime
	// StyleDateTime combines date and time of day.
	StyleDateTime
	// StyleFull is the most verbose date and time form the locale defines.
	StyleFull

	styleCount
)

var styleNames = [styleCount]string{
	StyleShortDate: "short_date",
	StyleTime:      "time",
	StyleDateTime:  "date_time",
	StyleFull:      "full",
}

// Styles lists every recognized style in declaration order.
func Styles() []TimeStyle {
	out := make([]TimeStyle, 0, styleCount)
	for s := TimeStyle(0); s < styleCount; s++ {
		out = append(out, s)
	}
	return out
}

func (s TimeStyle) String() string {
	if s < styleCount {
		return styleNames[s]
	}
	return fmt.Sprintf("TimeStyle(%d)", uint8(s))
}

// ParseTimeStyle maps a style name back to its TimeStyle.
func ParseTimeStyle(name string) (TimeStyle, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range styleNames {
		if n == name {
			return TimeStyle(s), true
		}
	}
	return 0, false
}

// Time holds the date and time formatting conventions of a locale.
//
// Layouts are Unicode LDML date patterns ("yyyy-MM-dd", "h:mm a") regardless
// of the native format of the backend that produced them. Time values are
// comparable with ==.
type Time struct {
	layouts      [styleCount]string
	am, pm       string
	firstWeekday time.Weekday
}

// TimeLayouts maps every style to its LDML pattern when building a Time.
type TimeLayouts map[TimeStyle]string

// NewTime validates and builds a Time value. Every style needs a well-formed
// layout. The day period markers may be empty for locales without a 12-hour
// clock, but not when a layout prints them.
func NewTime(layouts TimeLayouts, am, pm string, firstWeekday time.Weekday) (Time, error) {
	var t Time
	usesPeriod := false
	for s := TimeStyle(0); s < styleCount; s++ {
		layout := layouts[s]
		if strings.TrimSpace(layout) == "" {
			return Time{}, fmt.Errorf("%w: missing layout for style %s", ErrMalformed, s)
		}
		tokens, err := tokenizePattern(layout)
		if err != nil {
			return Time{}, fmt.Errorf("style %s: %w", s, err)
		}
		for _, tok := range tokens {
			if tok.field == 'a' || tok.field == 'b' {
				usesPeriod = true
			}
		}
		t.layouts[s] = layout
	}
	for s := range layouts {
		if s >= styleCount {
			return Time{}, fmt.Errorf("%w: unknown style %s", ErrMalformed, s)
		}
	}

	if usesPeriod && (am == "" || pm == "") {
		return Time{}, fmt.Errorf("%w: layouts print a day period but markers are empty", ErrMalformed)
	}
	if firstWeekday < time.Sunday || firstWeekday > time.Saturday {
		return Time{}, fmt.Errorf("%w: first weekday %d out of range", ErrMalformed, firstWeekday)
	}

	t.am, t.pm = am, pm
	t.firstWeekday = firstWeekday
	return t, nil
}

// Layout returns the LDML pattern for style, or "" for an unknown style.
func (t Time) Layout(style TimeStyle) string {
	if style >= styleCount {
		return ""
	}
	return t.layouts[style]
}

// Layouts returns a fresh map of every style to its pattern.
func (t Time) Layouts() TimeLayouts {
	out := make(TimeLayouts, styleCount)
	for s := TimeStyle(0); s < styleCount; s++ {
		out[s] = t.layouts[s]
	}
	return out
}

// GoLayout converts the pattern for style into a Go reference layout.
func (t Time) GoLayout(style TimeStyle) (string, error) {
	if style >= styleCount {
		return "", fmt.Errorf("%w: unknown style %s", ErrMalformed, style)
	}
	return GoLayout(t.layouts[style])
}

// AM returns the marker for times before noon.
func (t Time) AM() string { return t.am }

// PM returns the marker for times from noon on.
func (t Time) PM() string { return t.pm }

// FirstWeekday returns the day weeks start on.
func (t Time) FirstWeekday() time.Weekday { return t.firstWeekday }

// Equal reports whether both values describe the same conventions.
func (t Time) Equal(other Time) bool { return t == other }

func (t Time) String() string {
	var b strings.Builder
	b.WriteString("Time{")
	for s := TimeStyle(0); s < styleCount; s++ {
		fmt.Fprintf(&b, "%s=%q ", s, t.layouts[s])
	}
	fmt.Fprintf(&b, "am=%q pm=%q first=%s}", t.am, t.pm, t.firstWeekday)
	return b.String()
}
