// Package governor encodes governance votes as the calldata the on-chain
// governor contract expects. Encoding is pure: the package never talks to a
// network, it only prepares payloads for the transaction submission client
// to carry.
package governor

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// governorABI is the vote-casting slice of the governor contract interface.
// Votes are encoded against it off-chain and executed by the wallet service;
// the contract is never called directly from here.
const governorABI = `[
	{"type":"function","name":"castVote","stateMutability":"nonpayable","inputs":[{"name":"proposalId","type":"uint256"},{"name":"support","type":"uint8"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"castVoteWithReason","stateMutability":"nonpayable","inputs":[{"name":"proposalId","type":"uint256"},{"name":"support","type":"uint8"},{"name":"reason","type":"string"}],"outputs":[{"name":"","type":"uint256"}]}
]`

var votingABI = mustParseABI(governorABI)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Errorf("failed to parse governor ABI: %w", err))
	}

	return parsed
}

// EncodingError indicates that vote calldata could not be constructed or
// recovered. It is terminal for the operation that raised it; nothing is
// retried and no external call is made.
type EncodingError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("encode vote: %s: %v", e.Reason, e.Err)
	}

	return fmt.Sprintf("encode vote: %s", e.Reason)
}

// Unwrap returns the underlying cause, if any.
func (e *EncodingError) Unwrap() error {
	return e.Err
}

// EncodeCastVote returns the calldata for castVote(proposalId, support).
// It is deterministic: identical inputs always produce byte-identical
// output. Invalid inputs fail with an EncodingError.
func EncodeCastVote(proposalID *big.Int, choice VoteChoice) ([]byte, error) {
	if err := validateVote(proposalID, choice); err != nil {
		return nil, err
	}

	data, err := votingABI.Pack("castVote", proposalID, uint8(choice))
	if err != nil {
		return nil, &EncodingError{Reason: "abi packing failed", Err: err}
	}

	return data, nil
}

// EncodeCastVoteWithReason returns the calldata for
// castVoteWithReason(proposalId, support, reason). The reason string is
// carried verbatim; an empty reason is allowed by the contract but callers
// wanting no reason should prefer EncodeCastVote.
func EncodeCastVoteWithReason(proposalID *big.Int, choice VoteChoice, reason string) ([]byte, error) {
	if err := validateVote(proposalID, choice); err != nil {
		return nil, err
	}

	data, err := votingABI.Pack("castVoteWithReason", proposalID, uint8(choice), reason)
	if err != nil {
		return nil, &EncodingError{Reason: "abi packing failed", Err: err}
	}

	return data, nil
}

// DecodedVote is a vote call recovered from calldata.
type DecodedVote struct {
	Method     string
	ProposalID *big.Int
	Choice     VoteChoice
	Reason     string
}

// DecodeCastVote recovers the vote from calldata produced by EncodeCastVote
// or EncodeCastVoteWithReason. The method is resolved by its 4-byte
// selector.
func DecodeCastVote(data []byte) (*DecodedVote, error) {
	if len(data) < 4 {
		return nil, &EncodingError{Reason: "calldata too short for a method selector"}
	}

	method, err := votingABI.MethodById(data[:4])
	if err != nil {
		return nil, &EncodingError{Reason: "unknown method selector", Err: err}
	}

	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, &EncodingError{Reason: "abi unpacking failed", Err: err}
	}

	proposalID, ok := args[0].(*big.Int)
	if !ok {
		return nil, &EncodingError{Reason: fmt.Sprintf("unexpected proposal id type %T", args[0])}
	}
	support, ok := args[1].(uint8)
	if !ok {
		return nil, &EncodingError{Reason: fmt.Sprintf("unexpected support type %T", args[1])}
	}

	decoded := &DecodedVote{
		Method:     method.Name,
		ProposalID: proposalID,
		Choice:     VoteChoice(support),
	}
	if err := decoded.Choice.Validate(); err != nil {
		return nil, &EncodingError{Reason: "decoded support value out of range", Err: err}
	}

	if method.Name == "castVoteWithReason" {
		reason, ok := args[2].(string)
		if !ok {
			return nil, &EncodingError{Reason: fmt.Sprintf("unexpected reason type %T", args[2])}
		}
		decoded.Reason = reason
	}

	return decoded, nil
}

// validateVote rejects inputs the ABI packer would otherwise truncate
// silently. A proposal id wider than 256 bits or negative would wrap around
// during packing and target a different proposal on-chain.
func validateVote(proposalID *big.Int, choice VoteChoice) error {
	if proposalID == nil {
		return &EncodingError{Reason: "proposal id is required", Err: errors.New("nil proposal id")}
	}
	if proposalID.Sign() < 0 {
		return &EncodingError{Reason: fmt.Sprintf("proposal id must not be negative: %s", proposalID)}
	}
	if proposalID.BitLen() > 256 {
		return &EncodingError{Reason: fmt.Sprintf("proposal id exceeds 256 bits: %s", proposalID)}
	}
	if err := choice.Validate(); err != nil {
		return &EncodingError{Reason: "unsupported vote choice", Err: err}
	}

	return nil
}
