package locale

import (
	"fmt"
	"strings"
)

// patternToken is either a run of one pattern letter or a literal chunk.
type patternToken struct {
	field   byte
	width   int
	literal string
}

func isPatternLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// tokenizePattern splits an LDML pattern. Windows format pictures share the
// same letter-run and quoting rules, so they go through here as well.
func tokenizePattern(pattern string) ([]patternToken, error) {
	var (
		tokens  []patternToken
		literal strings.Builder
	)

	flush := func() {
		if literal.Len() == 0 {
			return
		}
		tokens = append(tokens, patternToken{literal: literal.String()})
		literal.Reset()
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				literal.WriteByte('\'')
				i += 2
				continue
			}
			end := i + 1
			for {
				next := strings.IndexByte(pattern[end:], '\'')
				if next < 0 {
					return nil, fmt.Errorf("%w: unterminated quote in %q", ErrMalformed, pattern)
				}
				literal.WriteString(pattern[end : end+next])
				end += next + 1
				if end < len(pattern) && pattern[end] == '\'' {
					literal.WriteByte('\'')
					end++
					continue
				}
				break
			}
			i = end
		case isPatternLetter(c):
			flush()
			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			tokens = append(tokens, patternToken{field: c, width: j - i})
			i = j
		default:
			literal.WriteByte(c)
			i++
		}
	}
	flush()

	return tokens, nil
}

// quoteLiteral renders literal text so that it survives as LDML.
func quoteLiteral(text string) string {
	if text == "" {
		return ""
	}

	hasLetter := false
	for i := 0; i < len(text); i++ {
		if isPatternLetter(text[i]) {
			hasLetter = true
			break
		}
	}

	escaped := strings.ReplaceAll(text, "'", "''")
	if !hasLetter {
		return escaped
	}
	return "'" + escaped + "'"
}

func renderPattern(tokens []patternToken) string {
	var b strings.Builder
	var pending strings.Builder

	flush := func() {
		b.WriteString(quoteLiteral(pending.String()))
		pending.Reset()
	}

	for _, tok := range tokens {
		if tok.field == 0 {
			pending.WriteString(tok.literal)
			continue
		}
		flush()
		b.WriteString(strings.Repeat(string(tok.field), tok.width))
	}
	flush()

	return b.String()
}

// GoLayout converts an LDML date pattern into a Go reference layout for the
// time package. Fields Go cannot express, and literal text Go would mistake
// for layout elements, are reported as ErrMalformed.
func GoLayout(pattern string) (string, error) {
	tokens, err := tokenizePattern(pattern)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, tok := range tokens {
		if tok.field == 0 {
			if clash := layoutClash(tok.literal); clash != "" {
				return "", fmt.Errorf("%w: literal %q contains layout element %q", ErrMalformed, tok.literal, clash)
			}
			b.WriteString(tok.literal)
			continue
		}

		elem, ok := goLayoutElement(tok, b.String())
		if !ok {
			return "", fmt.Errorf("%w: pattern field %q has no Go layout equivalent",
				ErrMalformed, strings.Repeat(string(tok.field), tok.width))
		}
		b.WriteString(elem)
	}

	return b.String(), nil
}

func goLayoutElement(tok patternToken, preceding string) (string, bool) {
	w := tok.width
	switch tok.field {
	case 'y', 'u':
		if w == 2 {
			return "06", true
		}
		return "2006", true
	case 'M', 'L':
		switch w {
		case 1:
			return "1", true
		case 2:
			return "01", true
		case 3:
			return "Jan", true
		case 4:
			return "January", true
		}
	case 'd':
		switch w {
		case 1:
			return "2", true
		case 2:
			return "02", true
		}
	case 'D':
		if w == 3 {
			return "002", true
		}
	case 'E':
		if w <= 3 {
			return "Mon", true
		}
		if w == 4 {
			return "Monday", true
		}
	case 'c', 'e':
		if w == 3 {
			return "Mon", true
		}
		if w == 4 {
			return "Monday", true
		}
	case 'H', 'k':
		if w <= 2 {
			return "15", true
		}
	case 'h', 'K':
		switch w {
		case 1:
			return "3", true
		case 2:
			return "03", true
		}
	case 'm':
		switch w {
		case 1:
			return "4", true
		case 2:
			return "04", true
		}
	case 's':
		switch w {
		case 1:
			return "5", true
		case 2:
			return "05", true
		}
	case 'S':
		if strings.HasSuffix(preceding, ".") || strings.HasSuffix(preceding, ",") {
			return strings.Repeat("0", w), true
		}
	case 'a', 'b':
		if w <= 3 {
			return "PM", true
		}
	case 'z':
		if w <= 4 {
			return "MST", true
		}
	case 'Z':
		switch {
		case w <= 3:
			return "-0700", true
		case w == 5:
			return "Z07:00", true
		}
	case 'x':
		switch w {
		case 1:
			return "-07", true
		case 2, 4:
			return "-0700", true
		case 3, 5:
			return "-07:00", true
		}
	case 'X':
		switch w {
		case 1:
			return "Z07", true
		case 2, 4:
			return "Z0700", true
		case 3, 5:
			return "Z07:00", true
		}
	}
	return "", false
}

// layoutClash returns the first Go layout element hidden in literal text.
func layoutClash(literal string) string {
	for _, word := range []string{"Jan", "Mon", "MST", "PM", "pm", "_2", "-07", "Z07"} {
		if strings.Contains(literal, word) {
			return word
		}
	}
	for i := 0; i < len(literal); i++ {
		if literal[i] >= '0' && literal[i] <= '9' {
			return literal[i : i+1]
		}
	}
	return ""
}

// strftimeFields maps strftime conversions onto LDML fields. LDML has no
// space-padded fields, so %e, %k and %l lose their blank padding: the C
// locale's "%b %e" becomes "MMM d" and renders "Jan 2", not "Jan  2".
var strftimeFields = map[byte]string{
	'a': "EEE",
	'A': "EEEE",
	'b': "MMM",
	'h': "MMM",
	'B': "MMMM",
	'd': "dd",
	'e': "d",
	'D': "MM/dd/yy",
	'F': "yyyy-MM-dd",
	'g': "YY",
	'G': "YYYY",
	'H': "HH",
	'I': "hh",
	'j': "DDD",
	'k': "H",
	'l': "h",
	'm': "MM",
	'M': "mm",
	'p': "a",
	'P': "a",
	'r': "hh:mm:ss a",
	'R': "HH:mm",
	'S': "ss",
	'T': "HH:mm:ss",
	'U': "ww",
	'V': "ww",
	'W': "ww",
	'u': "e",
	'w': "e",
	'y': "yy",
	'Y': "yyyy",
	'C': "yy",
	'z': "xx",
	'Z': "zzz",
}

// unpadded lists conversions whose "-" flag drops the zero padding.
var unpadded = map[byte]string{
	'd': "d",
	'm': "M",
	'H': "H",
	'I': "h",
	'M': "m",
	'S': "s",
	'j': "D",
}

const maxStrftimeDepth = 3

// StrftimeToLDML translates a POSIX strftime format, as stored in glibc
// locale data, into an LDML pattern. expand resolves the composite %c, %x
// and %X conversions, normally to the locale's own D_T_FMT, D_FMT and T_FMT.
func StrftimeToLDML(format string, expand map[byte]string) (string, error) {
	return strftimeToLDML(format, expand, 0)
}

func strftimeToLDML(format string, expand map[byte]string, depth int) (string, error) {
	if depth > maxStrftimeDepth {
		return "", fmt.Errorf("%w: strftime expansion too deep in %q", ErrMalformed, format)
	}

	var (
		out     strings.Builder
		literal strings.Builder
	)
	flush := func() {
		out.WriteString(quoteLiteral(literal.String()))
		literal.Reset()
	}

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			literal.WriteByte(c)
			continue
		}

		i++
		if i >= len(format) {
			return "", fmt.Errorf("%w: dangling %% in %q", ErrMalformed, format)
		}

		dropPadding := false
		for i < len(format) && strings.IndexByte("_-0^#", format[i]) >= 0 {
			if format[i] == '-' || format[i] == '_' {
				dropPadding = true
			}
			i++
		}
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			i++
		}
		if i < len(format) && (format[i] == 'E' || format[i] == 'O') {
			i++
		}
		if i >= len(format) {
			return "", fmt.Errorf("%w: truncated conversion in %q", ErrMalformed, format)
		}

		conv := format[i]
		switch conv {
		case '%':
			literal.WriteByte('%')
			continue
		case 'n':
			literal.WriteByte('\n')
			continue
		case 't':
			literal.WriteByte('\t')
			continue
		case 'c', 'x', 'X':
			nested, ok := expand[conv]
			if !ok || nested == "" {
				return "", fmt.Errorf("%w: no expansion for %%%c in %q", ErrMalformed, conv, format)
			}
			translated, err := strftimeToLDML(nested, expand, depth+1)
			if err != nil {
				return "", err
			}
			flush()
			out.WriteString(translated)
			continue
		}

		field, ok := strftimeFields[conv]
		if dropPadding {
			if short, found := unpadded[conv]; found {
				field, ok = short, true
			}
		}
		if !ok {
			return "", fmt.Errorf("%w: unsupported strftime conversion %%%c in %q", ErrMalformed, conv, format)
		}
		flush()
		out.WriteString(field)
	}
	flush()

	return out.String(), nil
}

// windowsField maps a Win32 format picture run onto an LDML field.
func windowsField(field byte, width int) (string, bool) {
	switch field {
	case 'd':
		switch width {
		case 1:
			return "d", true
		case 2:
			return "dd", true
		case 3:
			return "EEE", true
		default:
			return "EEEE", true
		}
	case 'M':
		if width > 4 {
			width = 4
		}
		return strings.Repeat("M", width), true
	case 'y':
		switch width {
		case 1:
			return "y", true
		case 2:
			return "yy", true
		default:
			return "yyyy", true
		}
	case 'g':
		return "G", true
	case 'h', 'H', 'm', 's':
		if width > 2 {
			width = 2
		}
		return strings.Repeat(string(field), width), true
	case 't':
		return "a", true
	}
	return "", false
}

// WindowsPictureToLDML translates a Win32 NLS date or time format picture
// (LOCALE_SSHORTDATE, LOCALE_STIMEFORMAT, ...) into an LDML pattern.
func WindowsPictureToLDML(picture string) (string, error) {
	tokens, err := tokenizePattern(picture)
	if err != nil {
		return "", err
	}

	out := make([]patternToken, 0, len(tokens))
	for _, tok := range tokens {
		if tok.field == 0 {
			out = append(out, tok)
			continue
		}
		field, ok := windowsField(tok.field, tok.width)
		if !ok {
			// Win32 prints unknown letters verbatim.
			out = append(out, patternToken{literal: strings.Repeat(string(tok.field), tok.width)})
			continue
		}
		out = append(out, patternToken{field: field[0], width: len(field)})
	}

	return renderPattern(out), nil
}
