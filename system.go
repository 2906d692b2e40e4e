package locale

// SystemFactory reads locale data from the host's native locale subsystem:
// glibc on Linux, Core Foundation on macOS and the NLS API on Windows. The
// backend is selected at build time; on other targets, or when cgo is
// disabled for Linux and macOS, every query reports ErrUnsupported.
//
// Each query acquires a native locale handle, reads the fields it needs and
// releases the handle before returning. The process-wide locale set through
// setlocale is never read or changed, so queries for different locales may
// run concurrently.
type SystemFactory struct {
	backend string
}

var _ Factory = &SystemFactory{}

// NewSystemFactory returns the factory for the build target's native backend.
func NewSystemFactory() *SystemFactory {
	return &SystemFactory{backend: systemBackend}
}

// Backend names the native subsystem compiled into this build.
func (f *SystemFactory) Backend() string {
	if f == nil {
		return systemBackend
	}
	return f.backend
}

// NumericInfo reads the numeric conventions of locale, or of the current
// user locale when locale is empty.
func (f *SystemFactory) NumericInfo(locale string) (Numeric, error) {
	n, err := systemNumeric(locale)
	if err != nil {
		return Numeric{}, withQuery(opNumeric, locale, err)
	}
	return n, nil
}

// TimeInfo reads the date and time conventions of locale, or of the current
// user locale when locale is empty.
func (f *SystemFactory) TimeInfo(locale string) (Time, error) {
	t, err := systemTime(locale)
	if err != nil {
		return Time{}, withQuery(opTime, locale, err)
	}
	return t, nil
}
