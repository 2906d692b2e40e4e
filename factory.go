package locale

// Factory produces locale formatting data.
//
// An empty identifier (Current) addresses whatever the environment considers
// the user's locale at call time. Implementations report failures as *Error
// values matching ErrUnsupported, ErrOSFailure or ErrMalformed. Every
// implementation in this package is safe for concurrent use.
type Factory interface {
	NumericInfo(locale string) (Numeric, error)
	TimeInfo(locale string) (Time, error)
}

const (
	opNumeric = "numeric"
	opTime    = "time"
)

// FactoryFuncs adapts plain functions to Factory. Nil functions report
// ErrUnsupported.
type FactoryFuncs struct {
	Numeric func(locale string) (Numeric, error)
	Time    func(locale string) (Time, error)
}

var _ Factory = FactoryFuncs{}

func (f FactoryFuncs) NumericInfo(locale string) (Numeric, error) {
	if f.Numeric == nil {
		return Numeric{}, newError(opNumeric, locale, KindUnsupported, nil)
	}
	return f.Numeric(locale)
}

func (f FactoryFuncs) TimeInfo(locale string) (Time, error) {
	if f.Time == nil {
		return Time{}, newError(opTime, locale, KindUnsupported, nil)
	}
	return f.Time(locale)
}
