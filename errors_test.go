package locale

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatchesSentinel(t *testing.T) {
	cause := errors.New("ENOENT")
	err := newError(opNumeric, "xx_XX", KindUnsupported, cause)

	assert.ErrorIs(t, err, ErrUnsupported)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrOSFailure)
	assert.NotErrorIs(t, err, ErrMalformed)
	assert.Equal(t, `locale: numeric "xx_XX": unsupported: ENOENT`, err.Error())

	var lerr *Error
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &lerr))
	assert.Equal(t, KindUnsupported, lerr.Kind)
}

func TestErrorCurrentLocale(t *testing.T) {
	err := newError(opTime, Current, KindOSFailure, nil)
	assert.Equal(t, `locale: time "<current>": os failure`, err.Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(nil))
	assert.Equal(t, KindMalformed, KindOf(fmt.Errorf("%w: bad", ErrMalformed)))
	assert.Equal(t, KindUnsupported, KindOf(fmt.Errorf("x: %w", ErrUnsupported)))
	assert.Equal(t, KindOSFailure, KindOf(errors.New("boom")))
	assert.Equal(t, KindOSFailure, KindOf(newError("", "", KindOSFailure, nil)))
}

func TestWithQuery(t *testing.T) {
	base := newError("", "de_DE", KindUnsupported, nil)

	stamped := withQuery(opNumeric, "de-DE", base)
	var lerr *Error
	assert.True(t, errors.As(stamped, &lerr))
	assert.Equal(t, opNumeric, lerr.Op)
	assert.Equal(t, "de-DE", lerr.Locale)
	assert.Equal(t, KindUnsupported, lerr.Kind)

	same := newError(opTime, "fr", KindMalformed, nil)
	assert.Same(t, same, withQuery(opTime, "fr", same))

	plain := withQuery(opTime, "fr", fmt.Errorf("%w: empty decimal", ErrMalformed))
	assert.ErrorIs(t, plain, ErrMalformed)
	assert.Equal(t, KindMalformed, KindOf(plain))

	assert.NoError(t, withQuery(opTime, "fr", nil))
}
