//go:build linux && cgo

package locale

/*
#define _GNU_SOURCE
#include <langinfo.h>
#include <locale.h>
#include <stdint.h>
#include <stdlib.h>

enum {
	LF_DECIMAL,
	LF_THOUSANDS,
	LF_GROUPING,
	LF_DATE,
	LF_TIME,
	LF_DATE_TIME,
	LF_DATE_FULL,
	LF_AM,
	LF_PM,
	LF_CODESET
};

static const char *lf_item(locale_t loc, int which) {
	nl_item item;
	switch (which) {
	case LF_DECIMAL:   item = RADIXCHAR; break;
	case LF_THOUSANDS: item = THOUSEP; break;
	case LF_GROUPING:  item = GROUPING; break;
	case LF_DATE:      item = D_FMT; break;
	case LF_TIME:      item = T_FMT; break;
	case LF_DATE_TIME: item = D_T_FMT; break;
	case LF_DATE_FULL: item = _DATE_FMT; break;
	case LF_AM:        item = AM_STR; break;
	case LF_PM:        item = PM_STR; break;
	case LF_CODESET:   item = CODESET; break;
	default:           return "";
	}
	const char *value = nl_langinfo_l(item, loc);
	return value ? value : "";
}

// _NL_TIME_WEEK_1STDAY is a date whose weekday is day 1 of
// _NL_TIME_FIRST_WEEKDAY: 19971130 is a Sunday, 19971201 a Monday.
static int lf_first_weekday(locale_t loc) {
	unsigned int base = (unsigned int)(uintptr_t)nl_langinfo_l(_NL_TIME_WEEK_1STDAY, loc);
	const char *first = nl_langinfo_l(_NL_TIME_FIRST_WEEKDAY, loc);
	int day = first ? first[0] : 1;
	if (day < 1 || day > 7) {
		day = 1;
	}
	int offset = base == 19971201 ? 1 : 0;
	return (offset + day - 1) % 7;
}
*/
import "C"

import (
	"errors"
	"strings"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

const systemBackend = "glibc"

const glibcCategories = C.LC_NUMERIC_MASK | C.LC_TIME_MASK | C.LC_CTYPE_MASK

// glibcLocale is a locale object created with newlocale. It is private to one
// query and released with close.
type glibcLocale struct {
	handle  C.locale_t
	decoder *encoding.Decoder
}

func openGlibcLocale(id string) (*glibcLocale, error) {
	var lastErr error
	for _, name := range glibcCandidates(id) {
		cname := C.CString(name)
		handle, errno := C.newlocale(glibcCategories, cname, nil)
		C.free(unsafe.Pointer(cname))

		if handle != nil {
			loc := &glibcLocale{handle: handle}
			loc.decoder = codesetDecoder(loc.raw(C.LF_CODESET))
			return loc, nil
		}

		lastErr = classifyErrno(id, errno)
		if KindOf(lastErr) != KindUnsupported {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

func (l *glibcLocale) close() {
	if l.handle != nil {
		C.freelocale(l.handle)
		l.handle = nil
	}
}

func (l *glibcLocale) raw(which C.int) string {
	return C.GoString(C.lf_item(l.handle, which))
}

// text reads an item and converts it from the locale codeset to UTF-8.
func (l *glibcLocale) text(which C.int) (string, error) {
	raw := l.raw(which)
	if l.decoder == nil || raw == "" {
		return raw, nil
	}
	decoded, err := l.decoder.String(raw)
	if err != nil {
		return "", newError("", "", KindMalformed, err)
	}
	return decoded, nil
}

func (l *glibcLocale) firstWeekday() time.Weekday {
	return time.Weekday(C.lf_first_weekday(l.handle))
}

// glibcCandidates lists the names tried for id, most specific first. Most
// distributions only generate UTF-8 variants, under either spelling.
func glibcCandidates(id string) []string {
	if id == Current {
		return []string{""}
	}

	name := posixName(id)
	if strings.Contains(name, ".") || IsNeutral(name) {
		return []string{name}
	}

	base, modifier := name, ""
	if idx := strings.IndexByte(name, '@'); idx >= 0 {
		base, modifier = name[:idx], name[idx:]
	}
	return []string{name, base + ".UTF-8" + modifier, base + ".utf8" + modifier}
}

func classifyErrno(id string, err error) error {
	switch {
	case err == nil, errors.Is(err, unix.ENOENT), errors.Is(err, unix.EINVAL):
		return newError("", id, KindUnsupported, err)
	default:
		return newError("", id, KindOSFailure, err)
	}
}

func codesetDecoder(codeset string) *encoding.Decoder {
	switch strings.ToUpper(codeset) {
	case "", "UTF-8", "UTF8", "ANSI_X3.4-1968", "ASCII", "US-ASCII":
		return nil
	}
	enc, err := ianaindex.IANA.Encoding(codeset)
	if err != nil || enc == nil {
		return nil
	}
	return enc.NewDecoder()
}

func systemNumeric(id string) (Numeric, error) {
	loc, err := openGlibcLocale(id)
	if err != nil {
		return Numeric{}, err
	}
	defer loc.close()

	decimal, err := loc.text(C.LF_DECIMAL)
	if err != nil {
		return Numeric{}, err
	}
	separator, err := loc.text(C.LF_THOUSANDS)
	if err != nil {
		return Numeric{}, err
	}
	grouping := DecodeCGrouping([]byte(loc.raw(C.LF_GROUPING)))

	return NewNumeric(decimal, separator, grouping)
}

func systemTime(id string) (Time, error) {
	loc, err := openGlibcLocale(id)
	if err != nil {
		return Time{}, err
	}
	defer loc.close()

	items := map[C.int]string{}
	for _, which := range []C.int{C.LF_DATE, C.LF_TIME, C.LF_DATE_TIME, C.LF_DATE_FULL, C.LF_AM, C.LF_PM} {
		value, err := loc.text(which)
		if err != nil {
			return Time{}, err
		}
		items[which] = value
	}

	full := items[C.LF_DATE_FULL]
	if full == "" {
		full = items[C.LF_DATE_TIME]
	}
	expand := map[byte]string{
		'x': items[C.LF_DATE],
		'X': items[C.LF_TIME],
		'c': items[C.LF_DATE_TIME],
	}

	formats := map[TimeStyle]string{
		StyleShortDate: items[C.LF_DATE],
		StyleTime:      items[C.LF_TIME],
		StyleDateTime:  items[C.LF_DATE_TIME],
		StyleFull:      full,
	}
	layouts := make(TimeLayouts, len(formats))
	for style, format := range formats {
		layout, err := StrftimeToLDML(format, expand)
		if err != nil {
			return Time{}, err
		}
		layouts[style] = layout
	}

	return NewTime(layouts, items[C.LF_AM], items[C.LF_PM], loc.firstWeekday())
}
