package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// FallbackResolver lists the identifiers to try, in order, after an exact
// lookup of locale misses.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// ParentFallbackResolver walks the CLDR parent chain of a tag, stopping
// before the root: "de-AT" -> ["de"], "zh-Hant-HK" -> ["zh-Hant"].
type ParentFallbackResolver struct{}

func (ParentFallbackResolver) Resolve(locale string) []string {
	canonical := Canonical(locale)
	if canonical == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)
	add := func(id string) bool {
		if _, dup := seen[id]; dup || id == "" || id == "und" {
			return false
		}
		seen[id] = struct{}{}
		chain = append(chain, id)
		return true
	}

	if tag, err := language.Parse(canonical); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			if !add(parent.String()) {
				break
			}
		}
		return chain
	}

	// Tags the parser rejects still lose subtags from the right.
	for current := canonical; ; {
		idx := strings.LastIndexByte(current, '-')
		if idx <= 0 {
			break
		}
		current = current[:idx]
		add(current)
	}
	return chain
}

// StaticFallbackResolver resolves from an explicit table.
type StaticFallbackResolver struct {
	chains map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set replaces the chain of locale. Identifiers are canonicalized.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	if s == nil || strings.TrimSpace(locale) == "" {
		return
	}
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}

	chain := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		if c := Canonical(fallback); c != "" {
			chain = append(chain, c)
		}
	}
	s.chains[Canonical(locale)] = chain
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil || len(s.chains) == 0 {
		return nil
	}
	chain := s.chains[Canonical(locale)]
	if len(chain) == 0 {
		return nil
	}
	out := make([]string, len(chain))
	copy(out, chain)
	return out
}
