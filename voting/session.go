package voting

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/omnidao/crosschain-governance/chain"
	"github.com/omnidao/crosschain-governance/datastore"
	"github.com/omnidao/crosschain-governance/governor"
	"github.com/omnidao/crosschain-governance/operations"
	"github.com/omnidao/crosschain-governance/pkg/logger"
	"github.com/omnidao/crosschain-governance/walletapi"
)

// ErrNotProvisioned is returned by CastVote before Start has provisioned the
// session wallet.
var ErrNotProvisioned = errors.New("session has no provisioned wallet")

// Config holds the session parameters.
type Config struct {
	// TokenSymbol is the governance token the wallet is provisioned for.
	TokenSymbol string

	// Networks is the set of chains governance spans. The provisioned
	// wallet supports exactly this set.
	Networks chain.Networks
}

// validate checks that the config describes a workable session.
func (c Config) validate() error {
	if c.TokenSymbol == "" {
		return errors.New("token symbol is required")
	}

	if len(c.Networks) == 0 {
		return errors.New("at least one network is required")
	}

	return nil
}

// VoteRequest describes one vote to cast.
type VoteRequest struct {
	// ProposalID identifies the proposal on the governor contract.
	ProposalID *big.Int

	// Choice is the support value for the vote.
	Choice governor.VoteChoice

	// NetworkID selects the chain to vote on, e.g. "ethereum". It must be
	// one of the session's networks.
	NetworkID string

	// Reason optionally attaches a justification. When set, the vote is
	// encoded with castVoteWithReason instead of castVote.
	Reason string
}

// Session drives the governance voting workflow: provision the wallet once,
// then cast votes through it. A Session is safe for concurrent use; a mutex
// serializes the workflow transitions.
type Session struct {
	lggr       logger.Logger
	transactor walletapi.Transactor
	governors  datastore.GovernorRefStore
	cfg        Config
	reporter   *operations.MemoryReporter

	mu       sync.Mutex
	state    State
	identity walletapi.WalletIdentity
}

// NewSession creates a session in StateUnprovisioned. Nothing is sent to the
// wallet service until Start.
func NewSession(
	lggr logger.Logger,
	tx walletapi.Transactor,
	governors datastore.GovernorRefStore,
	cfg Config,
) (*Session, error) {
	if lggr == nil {
		return nil, errors.New("logger is required")
	}

	if tx == nil {
		return nil, errors.New("transactor is required")
	}

	if governors == nil {
		return nil, errors.New("governor ref store is required")
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid session config: %w", err)
	}

	return &Session{
		lggr:       lggr,
		transactor: tx,
		governors:  governors,
		cfg:        cfg,
		reporter:   operations.NewMemoryReporter(),
		state:      StateUnprovisioned,
	}, nil
}

// Start provisions the session wallet and transitions the session to
// StateProvisioned. A provisioning failure leaves the session in
// StateUnprovisioned and propagates unchanged; no submission is ever
// constructed from a failed provisioning. Calling Start on an already
// provisioned session is a no-op: identities are provisioned at most once
// per session.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUnprovisioned {
		s.lggr.Debugw("Session already provisioned",
			"state", s.state.String(),
			"wallet", s.identity.Address,
		)

		return nil
	}

	report, err := operations.ExecuteOperation(s.bundle(ctx), provisionWalletOp, s.transactor,
		ProvisionWalletInput{
			TokenSymbol: s.cfg.TokenSymbol,
			Chains:      s.cfg.Networks,
		},
	)
	if err != nil {
		return err
	}

	s.identity = report.Output
	s.state = StateProvisioned

	s.lggr.Infow("Session provisioned",
		"wallet", s.identity.Address,
		"tokenSymbol", s.cfg.TokenSymbol,
		"chains", s.cfg.Networks.IDs(),
	)

	return nil
}

// CastVote encodes the vote, resolves the governor contract for the target
// network and submits the transaction through the session wallet.
//
// Failures before anything leaves the process (unsupported network, encoding
// failure, missing governor ref) leave the session state untouched. Once the
// submission is attempted the session transitions to StateVoteSubmitted on
// either outcome and stays usable for subsequent votes; submission errors
// propagate unchanged.
func (s *Session) CastVote(ctx context.Context, req VoteRequest) (*walletapi.TransactionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateUnprovisioned {
		return nil, ErrNotProvisioned
	}

	network, ok := s.identity.SupportedChains.ByID(req.NetworkID)
	if !ok {
		return nil, &walletapi.SubmissionError{
			Err: fmt.Errorf("%w: wallet %s supports %v, got %q",
				walletapi.ErrChainNotSupported, s.identity.Address, s.identity.SupportedChains.IDs(), req.NetworkID),
		}
	}

	calldata, err := encodeVote(req)
	if err != nil {
		return nil, err
	}

	ref, err := s.governors.GetByChainSelector(network.Selector)
	if err != nil {
		return nil, fmt.Errorf("no governor for network %q: %w", network.ID, err)
	}

	report, err := operations.ExecuteOperation(s.bundle(ctx), castVoteOp, s.transactor,
		CastVoteInput{
			Identity: s.identity,
			Network:  network,
			To:       common.HexToAddress(ref.Address),
			Calldata: calldata,
		},
	)

	// The attempt reached the external service, so the session moves on
	// regardless of the outcome.
	s.state = StateVoteSubmitted

	if err != nil {
		return nil, err
	}

	s.lggr.Infow("Vote submitted",
		"proposalId", req.ProposalID.String(),
		"choice", req.Choice.String(),
		"chain", network.ID,
		"governor", ref.Address,
	)

	return report.Output, nil
}

// State returns the session's current workflow state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Identity returns the provisioned wallet identity. The boolean is false
// until Start has succeeded.
func (s *Session) Identity() (walletapi.WalletIdentity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateUnprovisioned {
		return walletapi.WalletIdentity{}, false
	}

	return s.identity, true
}

// Reports returns one report per external-call attempt, in execution order.
func (s *Session) Reports() []operations.Report[any, any] {
	reports, err := s.reporter.GetReports()
	if err != nil {
		return nil // the memory reporter never fails
	}

	return reports
}

// bundle builds the per-call operations environment around ctx.
func (s *Session) bundle(ctx context.Context) operations.Bundle {
	return operations.NewBundle(func() context.Context { return ctx }, s.lggr, s.reporter)
}

// encodeVote picks the encoding based on whether a reason accompanies the
// vote.
func encodeVote(req VoteRequest) ([]byte, error) {
	if req.Reason != "" {
		return governor.EncodeCastVoteWithReason(req.ProposalID, req.Choice, req.Reason)
	}

	return governor.EncodeCastVote(req.ProposalID, req.Choice)
}
