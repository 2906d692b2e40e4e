package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParentFallbackResolver(t *testing.T) {
	r := ParentFallbackResolver{}

	assert.Equal(t, []string{"de"}, r.Resolve("de_AT"))
	assert.Equal(t, []string{"fr"}, r.Resolve("fr-CA"))
	assert.Equal(t, []string{"toolonglanguage-AA", "toolonglanguage"}, r.Resolve("toolonglanguage_AA_BB"))
	assert.Empty(t, r.Resolve("de"))
	assert.Empty(t, r.Resolve(""))
}

func TestStaticFallbackResolver(t *testing.T) {
	r := NewStaticFallbackResolver()
	r.Set("pt_BR", "pt-PT", "", "es")

	assert.Equal(t, []string{"pt-PT", "es"}, r.Resolve("pt-BR"))
	assert.Nil(t, r.Resolve("fr"))

	chain := r.Resolve("pt-BR")
	chain[0] = "xx"
	assert.Equal(t, []string{"pt-PT", "es"}, r.Resolve("pt-BR"))

	var zero StaticFallbackResolver
	zero.Set("en-GB", "en")
	assert.Equal(t, []string{"en"}, zero.Resolve("en_GB"))
}
