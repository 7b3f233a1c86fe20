package walletapi

import (
	"errors"
	"fmt"
)

// ErrChainNotSupported is returned, wrapped in a SubmissionError, when a
// transaction targets a chain outside the wallet's supported set. The check
// happens locally and no request is made.
var ErrChainNotSupported = errors.New("chain is not supported by the wallet")

// ProvisioningError is returned when wallet provisioning fails. For
// rejections StatusCode and Body carry the service response verbatim; for
// transport-level failures StatusCode is zero and Err holds the cause.
type ProvisioningError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ProvisioningError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wallet provisioning failed: %s", e.Err)
	}

	return fmt.Sprintf("wallet provisioning rejected with status %d: %s", e.StatusCode, e.Body)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}

// SubmissionError is returned when a transaction submission fails. For
// rejections StatusCode and Body carry the service response verbatim; for
// failures that never reached the service (transport errors, unsupported
// chains) StatusCode is zero and Err holds the cause.
type SubmissionError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transaction submission failed: %s", e.Err)
	}

	return fmt.Sprintf("transaction submission rejected with status %d: %s", e.StatusCode, e.Body)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
