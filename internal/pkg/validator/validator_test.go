package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("a@b.com"))
	require.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	require.False(t, IsValidEmail(""))
	require.False(t, IsValidEmail("not-an-email"))
	require.False(t, IsValidEmail("missing@tld"))
}

func TestIsStrongPassword(t *testing.T) {
	require.True(t, IsStrongPassword("Abcdefg1"))
	require.False(t, IsStrongPassword("short1A"))
	require.False(t, IsStrongPassword("alllowercase1"))
	require.False(t, IsStrongPassword("ALLUPPERCASE1"))
	require.False(t, IsStrongPassword("NoNumbersHere"))
}

func TestIsValidURL(t *testing.T) {
	require.True(t, IsValidURL("https://cdn.example.com/videos/intro.mp4"))
	require.True(t, IsValidURL("http://example.com"))
	require.False(t, IsValidURL("ftp://example.com/file"))
	require.False(t, IsValidURL("example"))
}

func TestIsValidName(t *testing.T) {
	require.True(t, IsValidName("Ada Lovelace"))
	require.True(t, IsValidName("O'Brien-Smith Jr."))
	require.False(t, IsValidName("A"))
	require.False(t, IsValidName("1337"))
}
