//go:build darwin && cgo

package locale

/*
#cgo LDFLAGS: -framework CoreFoundation
#include <CoreFoundation/CoreFoundation.h>
#include <stdlib.h>
#include <string.h>

enum {
	LF_OK = 0,
	LF_UNSUPPORTED = 1,
	LF_FAILURE = 2
};

// lf_locale_create returns a retained locale for name, or the current user
// locale when name is NULL. Explicit names must be known to the system.
static CFLocaleRef lf_locale_create(const char *name, int *status) {
	*status = LF_FAILURE;
	if (name == NULL) {
		CFLocaleRef current = CFLocaleCopyCurrent();
		if (current != NULL) {
			*status = LF_OK;
		}
		return current;
	}

	CFStringRef raw = CFStringCreateWithCString(kCFAllocatorDefault, name, kCFStringEncodingUTF8);
	if (raw == NULL) {
		return NULL;
	}
	CFStringRef canonical = CFLocaleCreateCanonicalLocaleIdentifierFromString(kCFAllocatorDefault, raw);
	CFRelease(raw);
	if (canonical == NULL) {
		*status = LF_UNSUPPORTED;
		return NULL;
	}

	CFArrayRef available = CFLocaleCopyAvailableLocaleIdentifiers();
	if (available == NULL) {
		CFRelease(canonical);
		return NULL;
	}
	Boolean known = CFArrayContainsValue(available, CFRangeMake(0, CFArrayGetCount(available)), canonical);
	CFRelease(available);
	if (!known) {
		CFRelease(canonical);
		*status = LF_UNSUPPORTED;
		return NULL;
	}

	CFLocaleRef loc = CFLocaleCreate(kCFAllocatorDefault, canonical);
	CFRelease(canonical);
	if (loc != NULL) {
		*status = LF_OK;
	}
	return loc;
}

static void lf_release(CFTypeRef ref) {
	if (ref != NULL) {
		CFRelease(ref);
	}
}

// lf_copy_utf8 converts s to a malloc'd UTF-8 string the caller frees.
static char *lf_copy_utf8(CFStringRef s) {
	if (s == NULL) {
		return NULL;
	}
	CFIndex length = CFStringGetLength(s);
	CFIndex size = CFStringGetMaximumSizeForEncoding(length, kCFStringEncodingUTF8) + 1;
	char *buf = malloc(size);
	if (buf == NULL) {
		return NULL;
	}
	if (!CFStringGetCString(s, buf, size, kCFStringEncodingUTF8)) {
		free(buf);
		return NULL;
	}
	return buf;
}

enum {
	LF_NUM_DECIMAL,
	LF_NUM_GROUPING_SEPARATOR
};

static char *lf_number_symbol(CFLocaleRef loc, int which) {
	CFNumberFormatterRef f = CFNumberFormatterCreate(kCFAllocatorDefault, loc, kCFNumberFormatterDecimalStyle);
	if (f == NULL) {
		return NULL;
	}
	CFStringRef key = which == LF_NUM_DECIMAL ? kCFNumberFormatterDecimalSeparator : kCFNumberFormatterGroupingSeparator;
	CFStringRef value = (CFStringRef)CFNumberFormatterCopyProperty(f, key);
	char *out = value != NULL ? lf_copy_utf8(value) : strdup("");
	lf_release(value);
	CFRelease(f);
	return out;
}

// lf_grouping_sizes reports the primary and secondary group sizes, or -1 on failure.
static int lf_grouping_sizes(CFLocaleRef loc, int *primary, int *secondary) {
	*primary = 0;
	*secondary = 0;
	CFNumberFormatterRef f = CFNumberFormatterCreate(kCFAllocatorDefault, loc, kCFNumberFormatterDecimalStyle);
	if (f == NULL) {
		return -1;
	}

	CFBooleanRef uses = (CFBooleanRef)CFNumberFormatterCopyProperty(f, kCFNumberFormatterUseGroupingSeparator);
	Boolean grouped = uses != NULL && CFBooleanGetValue(uses);
	lf_release(uses);

	if (grouped) {
		CFNumberRef size = (CFNumberRef)CFNumberFormatterCopyProperty(f, kCFNumberFormatterGroupingSize);
		if (size != NULL) {
			CFNumberGetValue(size, kCFNumberIntType, primary);
			CFRelease(size);
		}
		size = (CFNumberRef)CFNumberFormatterCopyProperty(f, kCFNumberFormatterSecondaryGroupingSize);
		if (size != NULL) {
			CFNumberGetValue(size, kCFNumberIntType, secondary);
			CFRelease(size);
		}
	}
	CFRelease(f);
	return 0;
}

static char *lf_date_format(CFLocaleRef loc, int dateStyle, int timeStyle) {
	CFDateFormatterRef f = CFDateFormatterCreate(kCFAllocatorDefault, loc,
		(CFDateFormatterStyle)dateStyle, (CFDateFormatterStyle)timeStyle);
	if (f == NULL) {
		return NULL;
	}
	char *out = lf_copy_utf8(CFDateFormatterGetFormat(f));
	CFRelease(f);
	return out;
}

static char *lf_day_period(CFLocaleRef loc, int pm) {
	CFDateFormatterRef f = CFDateFormatterCreate(kCFAllocatorDefault, loc,
		kCFDateFormatterNoStyle, kCFDateFormatterShortStyle);
	if (f == NULL) {
		return NULL;
	}
	CFStringRef value = (CFStringRef)CFDateFormatterCopyProperty(f, pm ? kCFDateFormatterPMSymbol : kCFDateFormatterAMSymbol);
	char *out = value != NULL ? lf_copy_utf8(value) : strdup("");
	lf_release(value);
	CFRelease(f);
	return out;
}

// lf_first_weekday returns 1 for Sunday through 7 for Saturday, 0 on failure.
static int lf_first_weekday(CFLocaleRef loc) {
	CFCalendarRef cal = (CFCalendarRef)CFLocaleGetValue(loc, kCFLocaleCalendar);
	if (cal == NULL) {
		return 0;
	}
	return (int)CFCalendarGetFirstWeekday(cal);
}
*/
import "C"

import (
	"errors"
	"time"
	"unsafe"
)

const systemBackend = "corefoundation"

var errCFNull = errors.New("core foundation returned NULL")

type cfLocale struct {
	ref C.CFLocaleRef
}

func openCFLocale(id string) (*cfLocale, error) {
	var name *C.char
	if id != Current {
		name = C.CString(Canonical(id))
		defer C.free(unsafe.Pointer(name))
	}

	var status C.int
	ref := C.lf_locale_create(name, &status)
	switch status {
	case C.LF_OK:
		return &cfLocale{ref: ref}, nil
	case C.LF_UNSUPPORTED:
		return nil, newError("", id, KindUnsupported, nil)
	default:
		return nil, newError("", id, KindOSFailure, errCFNull)
	}
}

func (l *cfLocale) close() {
	C.lf_release(C.CFTypeRef(l.ref))
}

// take converts a malloc'd C string and frees it. NULL reports a failure.
func take(s *C.char) (string, error) {
	if s == nil {
		return "", newError("", "", KindOSFailure, errCFNull)
	}
	defer C.free(unsafe.Pointer(s))
	return C.GoString(s), nil
}

func systemNumeric(id string) (Numeric, error) {
	loc, err := openCFLocale(id)
	if err != nil {
		return Numeric{}, err
	}
	defer loc.close()

	decimal, err := take(C.lf_number_symbol(loc.ref, C.LF_NUM_DECIMAL))
	if err != nil {
		return Numeric{}, err
	}
	separator, err := take(C.lf_number_symbol(loc.ref, C.LF_NUM_GROUPING_SEPARATOR))
	if err != nil {
		return Numeric{}, err
	}

	var primary, secondary C.int
	if C.lf_grouping_sizes(loc.ref, &primary, &secondary) != 0 {
		return Numeric{}, newError("", id, KindOSFailure, errCFNull)
	}

	return NewNumeric(decimal, separator, primarySecondaryGrouping(int(primary), int(secondary)))
}

var cfStyles = [styleCount][2]C.int{
	StyleShortDate: {C.kCFDateFormatterShortStyle, C.kCFDateFormatterNoStyle},
	StyleTime:      {C.kCFDateFormatterNoStyle, C.kCFDateFormatterMediumStyle},
	StyleDateTime:  {C.kCFDateFormatterMediumStyle, C.kCFDateFormatterMediumStyle},
	StyleFull:      {C.kCFDateFormatterFullStyle, C.kCFDateFormatterFullStyle},
}

func systemTime(id string) (Time, error) {
	loc, err := openCFLocale(id)
	if err != nil {
		return Time{}, err
	}
	defer loc.close()

	layouts := make(TimeLayouts, styleCount)
	for style, pair := range cfStyles {
		layout, err := take(C.lf_date_format(loc.ref, pair[0], pair[1]))
		if err != nil {
			return Time{}, err
		}
		layouts[TimeStyle(style)] = layout
	}

	am, err := take(C.lf_day_period(loc.ref, 0))
	if err != nil {
		return Time{}, err
	}
	pm, err := take(C.lf_day_period(loc.ref, 1))
	if err != nil {
		return Time{}, err
	}

	first := int(C.lf_first_weekday(loc.ref))
	if first < 1 || first > 7 {
		return Time{}, newError("", id, KindOSFailure, errors.New("calendar has no first weekday"))
	}

	return NewTime(layouts, am, pm, time.Weekday(first-1))
}
