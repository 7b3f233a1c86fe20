package walletapi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvisioningError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		giveErr *ProvisioningError
		want    string
	}{
		{
			name:    "service rejection",
			giveErr: &ProvisioningError{StatusCode: 422, Body: `{"error":"unknown token"}`},
			want:    `wallet provisioning rejected with status 422: {"error":"unknown token"}`,
		},
		{
			name:    "transport failure",
			giveErr: &ProvisioningError{Err: errors.New("connection refused")},
			want:    "wallet provisioning failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.giveErr.Error())
		})
	}
}

func TestProvisioningError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &ProvisioningError{Err: cause}

	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestSubmissionError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		giveErr *SubmissionError
		want    string
	}{
		{
			name:    "service rejection",
			giveErr: &SubmissionError{StatusCode: 503, Body: "sponsorship budget exhausted"},
			want:    "transaction submission rejected with status 503: sponsorship budget exhausted",
		},
		{
			name:    "local failure",
			giveErr: &SubmissionError{Err: fmt.Errorf("%w: got %q", ErrChainNotSupported, "dogecoin")},
			want:    `transaction submission failed: chain is not supported by the wallet: got "dogecoin"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.giveErr.Error())
		})
	}
}

func TestSubmissionError_Unwrap(t *testing.T) {
	t.Parallel()

	err := &SubmissionError{Err: fmt.Errorf("%w: got %q", ErrChainNotSupported, "dogecoin")}

	require.ErrorIs(t, err, ErrChainNotSupported)
}
