package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// stripPOSIXSuffixes drops the ".codeset" and "@modifier" parts of a POSIX
// locale name: "de_DE.UTF-8@euro" -> "de_DE".
func stripPOSIXSuffixes(id string) string {
	if idx := strings.IndexByte(id, '@'); idx >= 0 {
		id = id[:idx]
	}
	if idx := strings.IndexByte(id, '.'); idx >= 0 {
		id = id[:idx]
	}
	return id
}

// IsNeutral reports whether id names no real culture: the empty identifier
// and the POSIX "C"/"POSIX" locales.
func IsNeutral(id string) bool {
	switch stripPOSIXSuffixes(strings.TrimSpace(id)) {
	case "", "C", "POSIX":
		return true
	default:
		return false
	}
}

// Canonical turns POSIX and BCP-47 spellings of an identifier into a
// canonical BCP-47 tag: "en_US.UTF-8" -> "en-US", "zh_hans_cn" -> "zh-Hans-CN".
// Identifiers the language parser rejects come back cleaned but otherwise
// untouched, since backends may still know them.
func Canonical(id string) string {
	cleaned := strings.ReplaceAll(stripPOSIXSuffixes(strings.TrimSpace(id)), "_", "-")
	if cleaned == "" {
		return ""
	}

	tag, err := language.Parse(cleaned)
	if err != nil {
		return cleaned
	}
	return tag.String()
}

// posixName spells id the way glibc names locales: "de-DE" -> "de_DE".
// Names that already carry a codeset or modifier are left alone.
func posixName(id string) string {
	id = strings.TrimSpace(id)
	if strings.ContainsAny(id, ".@") || IsNeutral(id) {
		return id
	}

	tag, err := language.Parse(strings.ReplaceAll(id, "_", "-"))
	if err != nil {
		return strings.ReplaceAll(id, "-", "_")
	}

	base, _ := tag.Base()
	name := base.String()
	if region, conf := tag.Region(); conf == language.Exact {
		name += "_" + region.String()
	}
	// glibc spells the Latin variants of Cyrillic-default locales as a modifier.
	if script, conf := tag.Script(); conf == language.Exact && script.String() == "Latn" {
		if likely, _ := language.Make(base.String()).Script(); likely.String() != "Latn" {
			name += "@latin"
		}
	}
	return name
}
