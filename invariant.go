package locale

import "time"

// InvariantFactory returns fixed, locale-agnostic conventions. It never
// consults the OS and never fails, which makes it the natural tail of a
// CompositeFactory chain.
type InvariantFactory struct{}

var _ Factory = InvariantFactory{}

// NewInvariantFactory returns the invariant factory.
func NewInvariantFactory() InvariantFactory {
	return InvariantFactory{}
}

var (
	invariantNumeric = mustNumeric(".", ",", []int{3})
	invariantTime    = mustTime(TimeLayouts{
		StyleShortDate: "yyyy-MM-dd",
		StyleTime:      "HH:mm:ss",
		StyleDateTime:  "yyyy-MM-dd'T'HH:mm:ss",
		StyleFull:      "EEEE, yyyy-MM-dd'T'HH:mm:ssZZZZZ",
	}, "AM", "PM", time.Monday)
)

// NumericInfo ignores the identifier and returns ".", "," and [3].
func (InvariantFactory) NumericInfo(string) (Numeric, error) {
	return invariantNumeric.clone(), nil
}

// TimeInfo ignores the identifier and returns ISO-8601 style layouts, a
// 24-hour clock and Monday as the first weekday.
func (InvariantFactory) TimeInfo(string) (Time, error) {
	return invariantTime, nil
}

// InvariantNumeric returns the invariant numeric conventions.
func InvariantNumeric() Numeric { return invariantNumeric.clone() }

// InvariantTime returns the invariant time conventions.
func InvariantTime() Time { return invariantTime }

func (n Numeric) clone() Numeric {
	n.grouping = n.Grouping()
	return n
}

func mustNumeric(decimal, separator string, grouping []int) Numeric {
	n, err := NewNumeric(decimal, separator, grouping)
	if err != nil {
		panic(err)
	}
	return n
}

func mustTime(layouts TimeLayouts, am, pm string, first time.Weekday) Time {
	t, err := NewTime(layouts, am, pm, first)
	if err != nil {
		panic(err)
	}
	return t
}
