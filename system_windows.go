//go:build windows

package locale

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

const systemBackend = "nls"

// LCTYPE values from winnls.h.
const (
	localeSDecimal        = 0x0000000E
	localeSThousand       = 0x0000000F
	localeSGrouping       = 0x00000010
	localeSShortDate      = 0x0000001F
	localeSLongDate       = 0x00000020
	localeS1159           = 0x00000028
	localeS2359           = 0x00000029
	localeSTimeFormat     = 0x00001003
	localeIFirstDayOfWeek = 0x0000100C
)

const localeInfoMaxLength = 256

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procGetLocaleInfoEx   = kernel32.NewProc("GetLocaleInfoEx")
	procIsValidLocaleName = kernel32.NewProc("IsValidLocaleName")
)

// nlsLocale is a resolved locale name; a nil name addresses the user default.
type nlsLocale struct {
	id   string
	name *uint16
}

func openNLSLocale(id string) (*nlsLocale, error) {
	if err := procGetLocaleInfoEx.Find(); err != nil {
		return nil, newError("", id, KindOSFailure, err)
	}
	if id == Current {
		return &nlsLocale{}, nil
	}

	name, err := windows.UTF16PtrFromString(Canonical(id))
	if err != nil {
		return nil, newError("", id, KindUnsupported, err)
	}
	if procIsValidLocaleName.Find() == nil {
		if ok, _, _ := procIsValidLocaleName.Call(uintptr(unsafe.Pointer(name))); ok == 0 {
			return nil, newError("", id, KindUnsupported, nil)
		}
	}
	return &nlsLocale{id: id, name: name}, nil
}

func (l *nlsLocale) info(lctype uint32) (string, error) {
	buf := make([]uint16, localeInfoMaxLength)
	for {
		ret, _, callErr := procGetLocaleInfoEx.Call(
			uintptr(unsafe.Pointer(l.name)),
			uintptr(lctype),
			uintptr(unsafe.Pointer(&buf[0])),
			uintptr(len(buf)),
		)
		if ret > 0 {
			return windows.UTF16ToString(buf[:ret]), nil
		}
		if errors.Is(callErr, windows.ERROR_INSUFFICIENT_BUFFER) && len(buf) < 16*localeInfoMaxLength {
			buf = make([]uint16, 2*len(buf))
			continue
		}
		if errors.Is(callErr, windows.ERROR_INVALID_PARAMETER) {
			return "", newError("", l.id, KindUnsupported, callErr)
		}
		return "", newError("", l.id, KindOSFailure, callErr)
	}
}

func systemNumeric(id string) (Numeric, error) {
	loc, err := openNLSLocale(id)
	if err != nil {
		return Numeric{}, err
	}

	decimal, err := loc.info(localeSDecimal)
	if err != nil {
		return Numeric{}, err
	}
	separator, err := loc.info(localeSThousand)
	if err != nil {
		return Numeric{}, err
	}
	rawGrouping, err := loc.info(localeSGrouping)
	if err != nil {
		return Numeric{}, err
	}
	grouping, err := DecodeWindowsGrouping(rawGrouping)
	if err != nil {
		return Numeric{}, err
	}

	return NewNumeric(decimal, separator, grouping)
}

func systemTime(id string) (Time, error) {
	loc, err := openNLSLocale(id)
	if err != nil {
		return Time{}, err
	}

	pictures := map[uint32]string{}
	for _, lctype := range []uint32{localeSShortDate, localeSLongDate, localeSTimeFormat, localeS1159, localeS2359, localeIFirstDayOfWeek} {
		value, err := loc.info(lctype)
		if err != nil {
			return Time{}, err
		}
		pictures[lctype] = value
	}

	short, err := WindowsPictureToLDML(pictures[localeSShortDate])
	if err != nil {
		return Time{}, err
	}
	long, err := WindowsPictureToLDML(pictures[localeSLongDate])
	if err != nil {
		return Time{}, err
	}
	clock, err := WindowsPictureToLDML(pictures[localeSTimeFormat])
	if err != nil {
		return Time{}, err
	}

	// NLS counts from Monday (0) to Sunday (6).
	day, err := strconv.Atoi(strings.TrimSpace(pictures[localeIFirstDayOfWeek]))
	if err != nil || day < 0 || day > 6 {
		return Time{}, newError("", id, KindMalformed, errors.New("invalid LOCALE_IFIRSTDAYOFWEEK"))
	}

	return NewTime(TimeLayouts{
		StyleShortDate: short,
		StyleTime:      clock,
		StyleDateTime:  short + " " + clock,
		StyleFull:      long + " " + clock,
	}, pictures[localeS1159], pictures[localeS2359], time.Weekday((day+1)%7))
}
