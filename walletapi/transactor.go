package walletapi

import (
	"context"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"

	"github.com/omnidao/crosschain-governance/chain"
)

// Transactor is the interface for interacting with the Smart Wallet API.
// Client implements it against the live service; the memory subpackage
// provides an in-memory double and the provider subpackage a dry-run
// implementation.
type Transactor interface {
	// ProvisionWallet creates a smart wallet scoped to the given token
	// symbol and governed chains. Both arguments must be non-empty.
	// Provisioning is not idempotent: a repeat call may create a second
	// identity. Failures are reported as *ProvisioningError.
	ProvisionWallet(ctx context.Context, tokenSymbol string, chains chain.Networks) (WalletIdentity, error)

	// SubmitTransaction submits calldata to a contract on the given network
	// as a gas-sponsored transaction from the wallet. The network must be a
	// member of the identity's supported chains; violations fail locally
	// with a *SubmissionError wrapping ErrChainNotSupported, without a
	// request being made. All other failures are reported as
	// *SubmissionError carrying the service response.
	SubmitTransaction(ctx context.Context, identity WalletIdentity, network chain.Network, to common.Address, calldata []byte) (*TransactionResult, error)
}

// TransactionResult is the acknowledgment for an accepted transaction
// submission.
type TransactionResult struct {
	// StatusCode is the HTTP status the service answered with.
	StatusCode int

	// Ack is the raw acknowledgment payload. Its shape is owned by the
	// service and is kept opaque here.
	Ack json.RawMessage
}
