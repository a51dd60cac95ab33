package validation_test

import (
	"catconnect/pkg/serrors"
	"catconnect/pkg/validation"
	"testing"

	"github.com/stretchr/testify/require"
)

type registerInput struct {
	Email        string `json:"email"        validate:"required,email"`
	Password     string `json:"password"     validate:"required,min=8,max=72"`
	Municipality string `json:"municipality" validate:"omitempty,municipality"`
	Age          int    `json:"age"          validate:"omitempty,gte=18"`
	Internal     string `json:"-"            validate:"omitempty,max=1"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      registerInput
		wantErr string
	}{
		{
			name: "valid",
			in:   registerInput{Email: "juan@example.com", Password: "maogmang-aldaw", Municipality: "virac"},
		},
		{
			name:    "missing fields",
			in:      registerInput{},
			wantErr: "email is required; password is required",
		},
		{
			name:    "short password",
			in:      registerInput{Email: "juan@example.com", Password: "short"},
			wantErr: "password must be at least 8 characters",
		},
		{
			name:    "unknown municipality",
			in:      registerInput{Email: "juan@example.com", Password: "maogmang-aldaw", Municipality: "Legazpi"},
			wantErr: "municipality must be a municipality of Catanduanes",
		},
		{
			name:    "numeric bound",
			in:      registerInput{Email: "juan@example.com", Password: "maogmang-aldaw", Age: 12},
			wantErr: "age must be at least 18",
		},
		{
			name:    "bad email",
			in:      registerInput{Email: "juan", Password: "maogmang-aldaw"},
			wantErr: "email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(&tt.in)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, serrors.ErrBadRequest)
			var serr *serrors.Error
			require.ErrorAs(t, err, &serr)
			require.Equal(t, tt.wantErr, serr.Message())
		})
	}
}

func TestGet_singleton(t *testing.T) {
	require.Same(t, validation.Get(), validation.Get())
}
