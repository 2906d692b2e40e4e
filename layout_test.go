package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoLayout(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"yyyy-MM-dd", "2006-01-02"},
		{"dd.MM.yy", "02.01.06"},
		{"M/d/yy", "1/2/06"},
		{"h:mm a", "3:04 PM"},
		{"HH:mm:ss.SSS", "15:04:05.000"},
		{"EEEE, d MMMM y", "Monday, 2 January 2006"},
		{"EEE MMM d HH:mm:ss yyyy", "Mon Jan 2 15:04:05 2006"},
		{"yyyy-MM-dd'T'HH:mm:ssZZZZZ", "2006-01-02T15:04:05Z07:00"},
		{"d' de 'MMMM", "2 de January"},
		{"HH 'o''clock'", "15 o'clock"},
		{"DDD", "002"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := GoLayout(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGoLayoutRendersReferenceTime(t *testing.T) {
	layout, err := GoLayout("dd.MM.yyyy HH:mm")
	require.NoError(t, err)

	ts := time.Date(2024, time.December, 31, 23, 5, 0, 0, time.UTC)
	assert.Equal(t, "31.12.2024 23:05", ts.Format(layout))
}

func TestGoLayoutRejects(t *testing.T) {
	tests := map[string]string{
		"era field":         "G yyyy",
		"unterminated":      "dd 'of",
		"go element in lit": "'Mon' dd",
		"digit in literal":  "d 'at 5'",
		"bare fraction":     "ssSSS",
		"week of year":      "ww",
	}

	for name, pattern := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := GoLayout(pattern)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestStrftimeToLDML(t *testing.T) {
	expand := map[byte]string{
		'x': "%d/%m/%Y",
		'X': "%T",
		'c': "%x %X",
	}

	tests := []struct {
		format string
		want   string
	}{
		{"%d.%m.%Y", "dd.MM.yyyy"},
		{"%H:%M:%S", "HH:mm:ss"},
		{"%m/%d/%y", "MM/dd/yy"},
		{"%I:%M:%S %p", "hh:mm:ss a"},
		{"%a %d %b %Y %r %Z", "EEE dd MMM yyyy hh:mm:ss a zzz"},
		{"%c", "dd/MM/yyyy HH:mm:ss"},
		{"%-d.%-m.%Y", "d.M.yyyy"},
		{"%Ey", "yy"},
		{"%e de %B", "d' de 'MMMM"},
		{"%a %b %e %H:%M:%S %Y", "EEE MMM d HH:mm:ss yyyy"},
		{"100%%", "100%"},
		{"%F", "yyyy-MM-dd"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := StrftimeToLDML(tt.format, expand)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrftimeBlankPaddingIsDropped(t *testing.T) {
	pattern, err := StrftimeToLDML("%a %b %e %H:%M:%S %Y", nil)
	require.NoError(t, err)

	layout, err := GoLayout(pattern)
	require.NoError(t, err)
	assert.Equal(t, "Mon Jan 2 15:04:05 2006", layout)

	day := time.Date(2024, time.January, 2, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, "Tue Jan 2 09:05:07 2024", day.Format(layout))
}

func TestStrftimeToLDMLErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		expand map[byte]string
	}{
		{"unknown conversion", "%Q", nil},
		{"dangling percent", "%d %", nil},
		{"missing expansion", "%x", nil},
		{"self reference", "%c", map[byte]string{'c': "%c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := StrftimeToLDML(tt.format, tt.expand)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestWindowsPictureToLDML(t *testing.T) {
	tests := []struct {
		picture string
		want    string
	}{
		{"dd/MM/yyyy", "dd/MM/yyyy"},
		{"M/d/yyyy", "M/d/yyyy"},
		{"dddd, MMMM d, yyyy", "EEEE, MMMM d, yyyy"},
		{"h:mm:ss tt", "h:mm:ss a"},
		{"HH:mm:ss", "HH:mm:ss"},
		{"d 'de' MMMM 'de' yyyy", "d' de 'MMMM' de 'yyyy"},
		{"yy.MM.dd ddd", "yy.MM.dd EEE"},
	}

	for _, tt := range tests {
		t.Run(tt.picture, func(t *testing.T) {
			got, err := WindowsPictureToLDML(tt.picture)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
