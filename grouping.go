package locale

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeCGrouping decodes the grouping string of the C locale model
// (localeconv, nl_langinfo GROUPING). Each byte is a group size; a zero byte
// or the end of the string repeats the previous size, CHAR_MAX ends grouping.
// CHAR_MAX is 127 where char is signed and 255 where it is not.
func DecodeCGrouping(raw []byte) []int {
	var groups []int
	for _, b := range raw {
		switch {
		case b == 0:
			return compactGrouping(groups)
		case b >= 127:
			if len(groups) == 0 {
				return nil
			}
			return append(groups, GroupingStop)
		default:
			groups = append(groups, int(b))
		}
	}
	return compactGrouping(groups)
}

// compactGrouping drops trailing sizes equal to the one before them when the
// pattern repeats, since [3 3] and [3] group identically. Patterns ending in
// GroupingStop are left alone.
func compactGrouping(groups []int) []int {
	n := len(groups)
	if n == 0 || groups[n-1] == GroupingStop {
		return groups
	}
	for n > 1 && groups[n-1] == groups[n-2] {
		n--
	}
	return groups[:n]
}

// DecodeWindowsGrouping decodes LOCALE_SGROUPING values such as "3;0",
// "3;2;0" or "3". In that notation a trailing 0 repeats the previous size and
// its absence means no further grouping.
func DecodeWindowsGrouping(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ";")
	groups := make([]int, 0, len(parts))
	repeat := false
	for i, part := range parts {
		size, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || size < 0 {
			return nil, fmt.Errorf("%w: invalid grouping %q", ErrMalformed, raw)
		}
		if size == 0 {
			if i != len(parts)-1 {
				return nil, fmt.Errorf("%w: zero group size inside %q", ErrMalformed, raw)
			}
			repeat = true
			break
		}
		groups = append(groups, size)
	}

	switch {
	case len(groups) == 0:
		return nil, nil
	case repeat:
		return compactGrouping(groups), nil
	default:
		return append(groups, GroupingStop), nil
	}
}

// primarySecondaryGrouping builds a pattern from the two sizes number
// formatters expose (ICU, Core Foundation). A secondary size of zero or one
// equal to the primary collapses to a single repeating size.
func primarySecondaryGrouping(primary, secondary int) []int {
	switch {
	case primary <= 0:
		return nil
	case secondary <= 0 || secondary == primary:
		return []int{primary}
	default:
		return []int{primary, secondary}
	}
}
