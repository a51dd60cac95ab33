package marketplace_test

import (
	"catconnect/internal/marketplace"
	"catconnect/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "  Juan.Dela.Cruz@Example.COM ", want: "juan.dela.cruz@example.com"},
		{in: "ana@virac.gov.ph", want: "ana@virac.gov.ph"},
		{in: "Ana <ana@example.com>", wantErr: true},
		{in: "not-an-email", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := marketplace.NormalizeEmail(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, serrors.ErrBadRequest)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09171234567", want: "+639171234567"},
		{in: "0917-123-4567", want: "+639171234567"},
		{in: "+63 917 123 4567", want: "+639171234567"},
		{in: "639171234567", want: "+639171234567"},
		{in: "9171234567", want: "+639171234567"},
		{in: "(0917) 123 4567", want: "+639171234567"},
		{in: "0527411234", wantErr: true},
		{in: "0917123456", wantErr: true},
		{in: "0917 123 4567 ext 2", wantErr: true},
		{in: "63+9171234567", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := marketplace.NormalizePhone(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, serrors.ErrBadRequest)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
