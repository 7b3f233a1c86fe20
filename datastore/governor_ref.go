package datastore

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/ethereum/go-ethereum/common"
)

var ErrGovernorRefNotFound = errors.New("no governor ref record can be found for the provided key")
var ErrGovernorRefExists = errors.New("a governor ref record with the supplied key already exists")

// GovernorRef implements the UniqueRecord interface
var _ UniqueRecord[GovernorRefKey, GovernorRef] = GovernorRef{}

// GovernorRef records where a governor contract is deployed. Votes for a
// chain are submitted against the address registered here.
type GovernorRef struct {
	// ChainSelector refers to the chain where the governor is deployed.
	ChainSelector uint64 `json:"chainSelector"`
	// Address is the governor contract address on the chain.
	Address string `json:"address"`
	// Version is the semantic version of the deployed governor.
	Version *semver.Version `json:"version"`
	// Qualifier differentiates multiple governors deployed on the same chain.
	Qualifier string `json:"qualifier"`
}

// Clone creates a copy of the GovernorRef.
func (r GovernorRef) Clone() GovernorRef {
	var version *semver.Version
	if r.Version != nil {
		v := *r.Version
		version = &v
	}

	return GovernorRef{
		ChainSelector: r.ChainSelector,
		Address:       r.Address,
		Version:       version,
		Qualifier:     r.Qualifier,
	}
}

// Key returns the GovernorRefKey for the GovernorRef.
// It is used to uniquely identify the governor ref in the datastore.
func (r GovernorRef) Key() GovernorRefKey {
	return NewGovernorRefKey(r.ChainSelector, r.Qualifier)
}

// Validate checks that the record identifies a callable contract: a known
// chain and a well-formed hex address.
func (r GovernorRef) Validate() error {
	if r.ChainSelector == 0 {
		return errors.New("chain selector is required")
	}

	if !common.IsHexAddress(r.Address) {
		return fmt.Errorf("invalid governor address: %q", r.Address)
	}

	return nil
}
