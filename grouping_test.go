package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCGrouping(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want []int
	}{
		{"C locale", nil, nil},
		{"thousands", []byte{3}, []int{3}},
		{"thousands repeated explicitly", []byte{3, 3}, []int{3}},
		{"indian repeated explicitly", []byte{3, 2, 2}, []int{3, 2}},
		{"repeated then zero", []byte{3, 3, 0}, []int{3}},
		{"repeated before stop", []byte{3, 3, 127}, []int{3, 3, GroupingStop}},
		{"indian", []byte{3, 2}, []int{3, 2}},
		{"zero terminated", []byte{3, 0, 5}, []int{3}},
		{"stop after first", []byte{3, 127}, []int{3, GroupingStop}},
		{"unsigned char max", []byte{3, 255}, []int{3, GroupingStop}},
		{"no grouping marker", []byte{127}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeCGrouping(tt.raw))
		})
	}
}

func TestDecodeWindowsGrouping(t *testing.T) {
	tests := []struct {
		raw  string
		want []int
	}{
		{"", nil},
		{"0", nil},
		{"3;0", []int{3}},
		{"3;2;0", []int{3, 2}},
		{"3;3;0", []int{3}},
		{"3", []int{3, GroupingStop}},
		{"3;2", []int{3, 2, GroupingStop}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := DecodeWindowsGrouping(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"x", "3;-1", "3;0;2"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := DecodeWindowsGrouping(bad)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestDecodedGroupingIsValid(t *testing.T) {
	for _, raw := range [][]byte{{3}, {3, 2}, {3, 127}, {4, 0}} {
		_, err := NewNumeric(".", ",", DecodeCGrouping(raw))
		assert.NoError(t, err, "%v", raw)
	}
}

func TestGroupingHasOneCanonicalForm(t *testing.T) {
	explicit, err := NewNumeric(",", ".", DecodeCGrouping([]byte{3, 3}))
	require.NoError(t, err)
	short, err := NewNumeric(",", ".", []int{3})
	require.NoError(t, err)

	assert.True(t, explicit.Equal(short))
	assert.Equal(t, []int{3}, explicit.Grouping())

	indian, err := NewNumeric(".", ",", []int{3, 2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, indian.Grouping())

	stopped, err := NewNumeric(".", ",", []int{3, 3, GroupingStop})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, GroupingStop}, stopped.Grouping())
}

func TestPrimarySecondaryGrouping(t *testing.T) {
	assert.Nil(t, primarySecondaryGrouping(0, 0))
	assert.Equal(t, []int{3}, primarySecondaryGrouping(3, 0))
	assert.Equal(t, []int{3}, primarySecondaryGrouping(3, 3))
	assert.Equal(t, []int{3, 2}, primarySecondaryGrouping(3, 2))
}
