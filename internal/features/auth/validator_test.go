package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "a@b.com", NormalizeEmail("  A@B.Com "))
	require.Equal(t, "ada@example.com", NormalizeEmail("ADA@EXAMPLE.COM"))
}

func TestValidateRegister(t *testing.T) {
	valid := RegisterRequest{
		Email:    "ada@example.com",
		Password: "Sup3rSecret",
		Name:     "Ada Lovelace",
	}
	require.NoError(t, ValidateRegister(&valid))

	badEmail := valid
	badEmail.Email = "not-an-email"
	require.Error(t, ValidateRegister(&badEmail))

	weakPassword := valid
	weakPassword.Password = "password"
	require.Error(t, ValidateRegister(&weakPassword))

	badName := valid
	badName.Name = "4"
	require.Error(t, ValidateRegister(&badName))
}

func TestValidateChangePassword(t *testing.T) {
	require.NoError(t, ValidateChangePassword(&ChangePasswordRequest{
		CurrentPassword: "OldSecret1",
		NewPassword:     "NewSecret2",
	}))

	require.Error(t, ValidateChangePassword(&ChangePasswordRequest{
		CurrentPassword: "OldSecret1",
		NewPassword:     "weak",
	}))

	require.Error(t, ValidateChangePassword(&ChangePasswordRequest{
		CurrentPassword: "SameSecret1",
		NewPassword:     "SameSecret1",
	}))
}

func TestValidateProfilePicture(t *testing.T) {
	require.NoError(t, ValidateProfilePicture(""))
	require.NoError(t, ValidateProfilePicture("https://cdn.example.com/p.png"))
	require.Error(t, ValidateProfilePicture("not a url"))
}
