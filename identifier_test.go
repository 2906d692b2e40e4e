package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	tests := map[string]string{
		"en_US.UTF-8":  "en-US",
		"de-de":        "de-DE",
		"zh_hans_cn":   "zh-Hans-CN",
		" fr_FR@euro ": "fr-FR",
		"":             "",
		"C":            "C",
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, Canonical(input))
		})
	}
}

func TestPosixName(t *testing.T) {
	tests := map[string]string{
		"de-DE":       "de_DE",
		"de_DE":       "de_DE",
		"de_DE.UTF-8": "de_DE.UTF-8",
		"sr-Latn-RS":  "sr_RS@latin",
		"en-Latn-US":  "en_US",
		"fr":          "fr",
		"C":           "C",
		"POSIX":       "POSIX",
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, posixName(input))
		})
	}
}

func TestIsNeutral(t *testing.T) {
	for _, id := range []string{"", " ", "C", "POSIX", "C.UTF-8"} {
		assert.True(t, IsNeutral(id), "%q", id)
	}
	for _, id := range []string{"en", "en_US", "c", "de-DE"} {
		assert.False(t, IsNeutral(id), "%q", id)
	}
}
