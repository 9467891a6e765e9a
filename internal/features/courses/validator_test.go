package courses

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidLevel(t *testing.T) {
	require.True(t, IsValidLevel(LevelBeginner))
	require.True(t, IsValidLevel(LevelIntermediate))
	require.True(t, IsValidLevel(LevelAdvanced))
	require.False(t, IsValidLevel("expert"))
	require.False(t, IsValidLevel(""))
}

func TestIsValidStatus(t *testing.T) {
	require.True(t, IsValidStatus(StatusDraft))
	require.True(t, IsValidStatus(StatusPublished))
	require.True(t, IsValidStatus(StatusUnpublished))
	require.False(t, IsValidStatus("archived"))
}

func TestSortField(t *testing.T) {
	require.Equal(t, "price", SortField("price"))
	require.Equal(t, "enrollmentCount", SortField("enrollmentCount"))

	// Unknown keys fall back instead of reaching the database
	require.Equal(t, "createdAt", SortField("password"))
	require.Equal(t, "createdAt", SortField(""))
}

func TestSortDirection(t *testing.T) {
	require.Equal(t, 1, SortDirection("asc"))
	require.Equal(t, -1, SortDirection("desc"))
	require.Equal(t, -1, SortDirection(""))
}

func TestValidateCreate(t *testing.T) {
	price := 49.99
	valid := CreateCourseRequest{
		Title:       "Intro to Distributed Systems",
		Description: "Consensus, replication and failure",
		Category:    "engineering",
		Level:       LevelBeginner,
		Price:       &price,
	}
	require.NoError(t, ValidateCreate(&valid))

	badLevel := valid
	badLevel.Level = "impossible"
	require.Error(t, ValidateCreate(&badLevel))
}

func TestValidateUpdate(t *testing.T) {
	require.NoError(t, ValidateUpdate(&UpdateCourseRequest{}))
	require.NoError(t, ValidateUpdate(&UpdateCourseRequest{Level: LevelAdvanced}))
	require.Error(t, ValidateUpdate(&UpdateCourseRequest{Level: "impossible"}))
}
