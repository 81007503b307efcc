package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProximityWindow(t *testing.T) {
	assert.Equal(t, 3, ProximityWindow(1000, 300))
	assert.Equal(t, 1, ProximityWindow(300, 300))
	assert.Equal(t, 1, ProximityWindow(0, 300))
	assert.Equal(t, 1, ProximityWindow(1000, 0))
	assert.Equal(t, 6, ProximityWindow(1920, 180))
}

func TestInProximity(t *testing.T) {
	assert.True(t, InProximity(0, 3, 10, false, 3))
	assert.False(t, InProximity(0, 4, 10, false, 3))
	assert.False(t, InProximity(0, 9, 10, false, 1))
	assert.True(t, InProximity(0, 9, 10, true, 1))
	assert.True(t, InProximity(9, 0, 10, true, 1))
	assert.False(t, InProximity(0, 5, 10, true, 3))
}

func TestShouldResolve(t *testing.T) {
	cases := []struct {
		mode       Loading
		seen, near bool
		want       bool
	}{
		{LoadingEager, false, false, true},
		{LoadingLazy, false, true, false},
		{LoadingLazy, true, false, true},
		{LoadingAuto, false, false, false},
		{LoadingAuto, false, true, true},
		{LoadingAuto, true, false, true},
	}
	for _, tc := range cases {
		got := ShouldResolve(tc.mode, tc.seen, tc.near)
		assert.Equal(t, tc.want, got, "%s seen=%v near=%v", tc.mode, tc.seen, tc.near)
	}
}

func TestParseLoading(t *testing.T) {
	for in, want := range map[string]Loading{
		"":       LoadingAuto,
		"auto":   LoadingAuto,
		" Eager": LoadingEager,
		"LAZY":   LoadingLazy,
	} {
		got, err := ParseLoading(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, want, mustParse(t, got.String()))
	}

	_, err := ParseLoading("sometimes")
	assert.ErrorIs(t, err, ErrInvalidLoading)
	assert.Contains(t, err.Error(), "sometimes")
}

func mustParse(t *testing.T, s string) Loading {
	t.Helper()
	l, err := ParseLoading(s)
	require.NoError(t, err)
	return l
}
