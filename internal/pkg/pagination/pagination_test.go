package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewComputesMetadata(t *testing.T) {
	p := New(2, 10, 25)

	require.Equal(t, 2, p.CurrentPage)
	require.Equal(t, 3, p.TotalPages)
	require.Equal(t, int64(25), p.TotalItems)
	require.True(t, p.HasNextPage)
	require.True(t, p.HasPrevPage)
	require.Equal(t, 10, p.GetOffset())
	require.Equal(t, 10, p.GetLimit())
}

func TestNewClampsInvalidInput(t *testing.T) {
	p := New(0, -5, 0)

	require.Equal(t, 1, p.CurrentPage)
	require.Equal(t, 1, p.TotalPages)
	require.Equal(t, 10, p.Limit)
	require.False(t, p.HasNextPage)
	require.False(t, p.HasPrevPage)
	require.Equal(t, 0, p.Offset)
}

func TestNewLastPageHasNoNext(t *testing.T) {
	p := New(3, 10, 25)

	require.False(t, p.HasNextPage)
	require.True(t, p.HasPrevPage)
}

func TestFromRequest(t *testing.T) {
	req := FromRequest("3", "20")
	require.Equal(t, 3, req.Page)
	require.Equal(t, 20, req.Limit)

	// Garbage and out-of-range values fall back to defaults
	req = FromRequest("abc", "1000")
	require.Equal(t, 1, req.Page)
	require.Equal(t, 100, req.Limit)
}
