package credential

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{
			name:     "valid password",
			password: "Aa123456!",
			wantErr:  "",
		},
		{
			name:     "valid with every special char",
			password: "Aa1!@#$%^&",
			wantErr:  "",
		},
		{
			name:     "seven characters",
			password: "Aa1!bcd",
			wantErr:  "Password must be 8 characters or longer",
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  "Password must be 8 characters or longer",
		},
		{
			name:     "seventy three characters",
			password: "Aa1!" + strings.Repeat("x", 69),
			wantErr:  "Password must be 72 characters or less",
		},
		{
			name:     "leading space",
			password: " Aa123456!",
			wantErr:  "Password must not start or end with empty spaces",
		},
		{
			name:     "trailing space",
			password: "Aa123456! ",
			wantErr:  "Password must not start or end with empty spaces",
		},
		{
			name:     "missing lowercase",
			password: "AA123456!",
			wantErr:  "Password must contain at least one lowercase letter, one uppercase letter, one number, and one special character",
		},
		{
			name:     "missing uppercase",
			password: "aa123456!",
			wantErr:  "Password must contain at least one lowercase letter, one uppercase letter, one number, and one special character",
		},
		{
			name:     "missing digit",
			password: "Aabcdefg!",
			wantErr:  "Password must contain at least one lowercase letter, one uppercase letter, one number, and one special character",
		},
		{
			name:     "missing special character",
			password: "Aa1234567",
			wantErr:  "Password must contain at least one lowercase letter, one uppercase letter, one number, and one special character",
		},
		{
			name:     "special char outside the allowed set",
			password: "Aa123456*",
			wantErr:  "Password must contain at least one lowercase letter, one uppercase letter, one number, and one special character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())

			var policyErr *PolicyError
			assert.ErrorAs(t, err, &policyErr)
		})
	}
}

func TestValidatePasswordPrecedence(t *testing.T) {
	// Short AND leading space: the length rule runs first.
	err := ValidatePassword(" Aa1!")
	require.Error(t, err)
	assert.Equal(t, "Password must be 8 characters or longer", err.Error())

	// Long AND trailing space: the upper length bound runs before spacing.
	err = ValidatePassword(strings.Repeat("a", 73) + " ")
	require.Error(t, err)
	assert.Equal(t, "Password must be 72 characters or less", err.Error())

	// Spaces inside bounds beat complexity.
	err = ValidatePassword(" aaaaaaaa")
	require.Error(t, err)
	assert.Equal(t, "Password must not start or end with empty spaces", err.Error())
}
