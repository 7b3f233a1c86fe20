package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/omnidao/crosschain-governance/chain"
	"github.com/omnidao/crosschain-governance/governor"
	"github.com/omnidao/crosschain-governance/pkg/logger"
	"github.com/omnidao/crosschain-governance/walletapi"
)

const (
	// dryRunAddressPrefix marks fabricated wallet addresses so they can
	// never be mistaken for provisioned ones.
	dryRunAddressPrefix = "dryRunWallet_NOT_PROVISIONED_for_"

	// dryRunAckID marks acknowledgments for transactions that were never
	// submitted.
	dryRunAckID = "dryrun_NOT_SUBMITTED"
)

// DryRunTransactor is a walletapi.Transactor that never reaches the wallet
// service. Operations apply the same local checks as the live client, log
// what would be sent, and answer with marker values.
type DryRunTransactor struct {
	lggr logger.Logger
}

var _ walletapi.Transactor = (*DryRunTransactor)(nil)

// NewDryRunTransactor creates a new DryRunTransactor.
func NewDryRunTransactor(lggr logger.Logger) *DryRunTransactor {
	return &DryRunTransactor{
		lggr: lggr,
	}
}

// ProvisionWallet simulates wallet provisioning without calling the service.
// It returns an identity with a marker address indicating no wallet was
// actually created.
func (d *DryRunTransactor) ProvisionWallet(
	_ context.Context, tokenSymbol string, chains chain.Networks,
) (walletapi.WalletIdentity, error) {
	if tokenSymbol == "" {
		return walletapi.WalletIdentity{}, errors.New("token symbol is required")
	}

	if len(chains) == 0 {
		return walletapi.WalletIdentity{}, errors.New("at least one chain is required")
	}

	d.lggr.Infow("DryRunTransactor.ProvisionWallet",
		"tokenSymbol", tokenSymbol,
		"chains", chains.IDs(),
	)

	return walletapi.WalletIdentity{
		TokenSymbol:     tokenSymbol,
		SupportedChains: slices.Clone(chains),
		Address:         dryRunAddressPrefix + tokenSymbol,
	}, nil
}

// SubmitTransaction simulates a transaction submission without calling the
// service. The chain membership rule still applies; the calldata is decoded
// as a governance vote where possible so the log shows the vote that would
// have been cast.
func (d *DryRunTransactor) SubmitTransaction(
	_ context.Context,
	identity walletapi.WalletIdentity,
	network chain.Network,
	to common.Address,
	calldata []byte,
) (*walletapi.TransactionResult, error) {
	if !identity.SupportsChain(network) {
		return nil, &walletapi.SubmissionError{
			Err: fmt.Errorf("%w: wallet %s supports %v, got %q",
				walletapi.ErrChainNotSupported, identity.Address, identity.SupportedChains.IDs(), network.ID),
		}
	}

	if vote, err := governor.DecodeCastVote(calldata); err == nil {
		d.lggr.Infow("DryRunTransactor.SubmitTransaction",
			"wallet", identity.Address,
			"chain", network.ID,
			"to", to.Hex(),
			"method", vote.Method,
			"proposalId", vote.ProposalID.String(),
			"choice", vote.Choice.String(),
			"reason", vote.Reason,
		)
	} else {
		d.lggr.Infow("DryRunTransactor.SubmitTransaction",
			"wallet", identity.Address,
			"chain", network.ID,
			"to", to.Hex(),
			"calldata", hexutil.Encode(calldata),
		)
	}

	ack, err := json.Marshal(map[string]string{"id": dryRunAckID, "status": "dry_run"})
	if err != nil {
		return nil, &walletapi.SubmissionError{Err: fmt.Errorf("failed to marshal ack: %w", err)}
	}

	return &walletapi.TransactionResult{
		StatusCode: http.StatusOK,
		Ack:        ack,
	}, nil
}
