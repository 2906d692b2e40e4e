package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemFactoryRejectsUnknownLocaleOnEveryBackend(t *testing.T) {
	f := NewSystemFactory()
	assert.NotEmpty(t, f.Backend())

	var nilFactory *SystemFactory
	assert.Equal(t, f.Backend(), nilFactory.Backend())

	_, err := f.NumericInfo("xx_XX")
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = f.TimeInfo("xx_XX")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestSystemFactoryWithInvariantTail(t *testing.T) {
	chain, err := NewCompositeFactory([]Factory{NewSystemFactory(), NewInvariantFactory()})
	require.NoError(t, err)

	for _, id := range []string{"xx_XX", "qq-QQ"} {
		n, err := chain.NumericInfo(id)
		require.NoError(t, err, id)
		assert.True(t, n.Equal(InvariantNumeric()), id)

		tm, err := chain.TimeInfo(id)
		require.NoError(t, err, id)
		assert.Equal(t, InvariantTime(), tm, id)
	}
}
