package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/omnidao/crosschain-governance/chain"
	"github.com/omnidao/crosschain-governance/walletapi"
)

var _ walletapi.Transactor = (*Service)(nil)

// SubmittedTransaction records a transaction accepted by the in-memory
// service.
type SubmittedTransaction struct {
	WalletAddress string
	Chain         string
	To            string
	Data          []byte
	Value         string
	AckID         string
}

// injectedFailure is a staged service-side rejection.
type injectedFailure struct {
	status int
	body   string
}

// Service is an in-memory implementation of the Smart Wallet API client. It
// stores wallets and accepted submissions in memory without reaching any
// backend. This implementation is thread-safe and can be used concurrently
// from multiple goroutines.
type Service struct {
	mu sync.RWMutex // protects all fields below

	wallets     map[string]walletapi.WalletIdentity
	submissions []SubmittedTransaction

	provisionFailure *injectedFailure
	submitFailure    *injectedFailure
}

// NewService creates a new in-memory wallet service.
func NewService() *Service {
	return &Service{
		wallets: make(map[string]walletapi.WalletIdentity),
	}
}

// ProvisionWallet creates a wallet identity with a fabricated address and
// stores it in memory. Like the live service, repeat calls create distinct
// identities.
func (s *Service) ProvisionWallet(
	_ context.Context, tokenSymbol string, chains chain.Networks,
) (walletapi.WalletIdentity, error) {
	if tokenSymbol == "" {
		return walletapi.WalletIdentity{}, errors.New("token symbol is required")
	}

	if len(chains) == 0 {
		return walletapi.WalletIdentity{}, errors.New("at least one chain is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if f := s.provisionFailure; f != nil {
		return walletapi.WalletIdentity{}, &walletapi.ProvisioningError{
			StatusCode: f.status,
			Body:       f.body,
		}
	}

	identity := walletapi.WalletIdentity{
		TokenSymbol:     tokenSymbol,
		SupportedChains: slices.Clone(chains),
		Address:         newWalletAddress(),
	}

	s.wallets[identity.Address] = identity

	return identity, nil
}

// transactionAck is the acknowledgment payload shape for accepted
// submissions.
type transactionAck struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// SubmitTransaction records the transaction and returns an acknowledgment.
// The chain membership check mirrors the live client: violations fail
// locally without the submission being recorded.
func (s *Service) SubmitTransaction(
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

	s.mu.Lock()
	defer s.mu.Unlock()

	if f := s.submitFailure; f != nil {
		return nil, &walletapi.SubmissionError{
			StatusCode: f.status,
			Body:       f.body,
		}
	}

	if _, ok := s.wallets[identity.Address]; !ok {
		return nil, &walletapi.SubmissionError{
			StatusCode: http.StatusNotFound,
			Body:       fmt.Sprintf("wallet %s not found", identity.Address),
		}
	}

	sub := SubmittedTransaction{
		WalletAddress: identity.Address,
		Chain:         network.ID,
		To:            to.Hex(),
		Data:          slices.Clone(calldata),
		Value:         "0",
		AckID:         newAckID(),
	}

	s.submissions = append(s.submissions, sub)

	ack, err := json.Marshal(transactionAck{ID: sub.AckID, Status: "submitted"})
	if err != nil {
		return nil, &walletapi.SubmissionError{Err: fmt.Errorf("failed to marshal ack: %w", err)}
	}

	return &walletapi.TransactionResult{
		StatusCode: http.StatusOK,
		Ack:        ack,
	}, nil
}

// Submissions returns a copy of every transaction accepted so far, in
// submission order.
func (s *Service) Submissions() []SubmittedTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.submissions)
}

// FailProvisioning stages a service-side rejection for subsequent
// ProvisionWallet calls until cleared.
func (s *Service) FailProvisioning(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.provisionFailure = &injectedFailure{status: status, body: body}
}

// ClearProvisioningFailure removes a staged provisioning rejection.
func (s *Service) ClearProvisioningFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.provisionFailure = nil
}

// FailSubmission stages a service-side rejection for subsequent
// SubmitTransaction calls until cleared.
func (s *Service) FailSubmission(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitFailure = &injectedFailure{status: status, body: body}
}

// ClearSubmissionFailure removes a staged submission rejection.
func (s *Service) ClearSubmissionFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitFailure = nil
}
