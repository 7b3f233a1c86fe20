package datastore

import (
	"fmt"
)

// GovernorRefKey is an interface that represents a key for GovernorRef records.
// It is used to uniquely identify a record in the GovernorRefStore.
type GovernorRefKey interface {
	Comparable[GovernorRefKey]
	fmt.Stringer

	// ChainSelector returns the chain-selector of the chain where the governor is deployed.
	ChainSelector() uint64
	// Qualifier returns the optional qualifier for the governor.
	// This differentiates multiple governors deployed on the same chain.
	Qualifier() string
}

// governorRefKey implements the GovernorRefKey interface.
var _ GovernorRefKey = governorRefKey{}

// governorRefKey is a struct that implements the GovernorRefKey interface.
// It is used to uniquely identify a record in the GovernorRefStore.
type governorRefKey struct {
	chainSelector uint64
	qualifier     string
}

// ChainSelector returns the chain-selector of the chain where the governor is deployed.
func (k governorRefKey) ChainSelector() uint64 { return k.chainSelector }

// Qualifier returns the optional qualifier for the governor.
func (k governorRefKey) Qualifier() string { return k.qualifier }

// Equals returns true if the two GovernorRefKey instances are equal, false otherwise.
func (k governorRefKey) Equals(other GovernorRefKey) bool {
	return k.chainSelector == other.ChainSelector() &&
		k.qualifier == other.Qualifier()
}

// String returns a string representation of the GovernorRefKey.
func (k governorRefKey) String() string {
	return fmt.Sprintf("%d/%s", k.chainSelector, k.qualifier)
}

// NewGovernorRefKey creates a new GovernorRefKey instance.
func NewGovernorRefKey(chainSelector uint64, qualifier string) GovernorRefKey {
	return governorRefKey{
		chainSelector: chainSelector,
		qualifier:     qualifier,
	}
}
