package locale

import (
	"errors"
	"os"
	"runtime"
	"strings"

	syslocale "github.com/jeandeaual/go-locale"
)

// Category selects the locale category a detector answers for.
type Category uint8

const (
	CategoryNumeric Category = iota + 1
	CategoryTime
)

func (c Category) String() string {
	switch c {
	case CategoryNumeric:
		return "LC_NUMERIC"
	case CategoryTime:
		return "LC_TIME"
	default:
		return "unknown"
	}
}

// Detector reports which locale the user has chosen for a category. An empty
// identifier with a nil error means the detector has no opinion; "C" or
// "POSIX" is an explicit choice of the neutral locale.
type Detector interface {
	DetectLocale(category Category) (string, error)
}

// DetectorFunc adapts a function to Detector.
type DetectorFunc func(category Category) (string, error)

func (f DetectorFunc) DetectLocale(category Category) (string, error) {
	return f(category)
}

// EnvDetector reads the POSIX locale variables: LC_ALL overrides the category
// variable, which overrides LANG. Values are returned as set, codeset and
// modifier included.
type EnvDetector struct {
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

var _ Detector = EnvDetector{}

func (d EnvDetector) DetectLocale(category Category) (string, error) {
	getenv := d.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	vars := []string{"LC_ALL", category.String(), "LANG"}
	if category != CategoryNumeric && category != CategoryTime {
		vars = []string{"LC_ALL", "LANG"}
	}

	for _, name := range vars {
		if value := strings.TrimSpace(getenv(name)); value != "" {
			return value, nil
		}
	}
	return "", nil
}

// OSDetector asks the operating system for the user's preferred locale:
// the NLS user default on Windows, AppleLocale on macOS and the environment
// elsewhere. It does not distinguish categories.
//
// Its answer names the same locale the native backends open for Current, so
// UserFactory lets the system factory use that native path and keep the
// user's customised settings.
type OSDetector struct {
	// Lookup defaults to the platform preference lookup.
	Lookup func() (string, error)
}

var _ Detector = OSDetector{}

func (d OSDetector) DetectLocale(Category) (string, error) {
	lookup := d.Lookup
	if lookup == nil {
		lookup = syslocale.GetLocale
	}

	id, err := lookup()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(id), nil
}

func (d OSDetector) detectSource(category Category) (string, bool, error) {
	id, err := d.DetectLocale(category)
	return id, true, err
}

// sourceDetector reports, with the answer, whether it came from the
// platform's own notion of the current locale.
type sourceDetector interface {
	detectSource(category Category) (id string, platform bool, err error)
}

func detectWithSource(d Detector, category Category) (string, bool, error) {
	if sd, ok := d.(sourceDetector); ok {
		return sd.detectSource(category)
	}
	id, err := d.DetectLocale(category)
	return id, false, err
}

// DetectorChain asks each detector in turn. An empty answer passes to the
// next detector; any other answer ends the chain, including an explicit
// neutral one such as "C", which callers treat as the invariant locale.
// When no detector answers, the errors of failing detectors are joined.
type DetectorChain []Detector

var _ Detector = DetectorChain{}

func (c DetectorChain) DetectLocale(category Category) (string, error) {
	id, _, err := c.detectSource(category)
	return id, err
}

func (c DetectorChain) detectSource(category Category) (string, bool, error) {
	var errs []error
	for _, detector := range c {
		if detector == nil {
			continue
		}
		id, platform, err := detectWithSource(detector, category)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if id != "" {
			return id, platform, nil
		}
	}
	return "", false, errors.Join(errs...)
}

// DefaultDetector checks the POSIX environment first. On macOS and Windows,
// where the environment is often unset, the OS preferences come second.
// Elsewhere the OS lookup only reads messages variables such as LANGUAGE,
// which say nothing about numbers or dates, so it is not consulted.
func DefaultDetector() Detector {
	return defaultDetectorFor(runtime.GOOS)
}

func defaultDetectorFor(goos string) Detector {
	switch goos {
	case "darwin", "ios", "windows":
		return DetectorChain{EnvDetector{}, OSDetector{}}
	default:
		return DetectorChain{EnvDetector{}}
	}
}
