package chain

import (
	"errors"
	"fmt"
	"slices"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// ErrNotSupported is returned when a chain identifier does not match any of
// the governed networks.
var ErrNotSupported = errors.New("chain is not supported")

// Network identifies one of the governed blockchains. ID is the wire
// identifier used in Smart Wallet API payloads, Selector is the canonical
// chain-selectors value for the same network.
type Network struct {
	ID       string
	Selector uint64
}

// Family returns the chain family of the network.
func (n Network) Family() string {
	family, err := chainsel.GetSelectorFamily(n.Selector)
	if err != nil {
		return ""
	}

	return family
}

// ChainID returns the chain ID as a string based on the chain selector.
func (n Network) ChainID() (string, error) {
	return chainsel.GetChainIDFromSelector(n.Selector)
}

// String returns the wire identifier and selector "<id> (<selector>)".
func (n Network) String() string {
	return fmt.Sprintf("%s (%d)", n.ID, n.Selector)
}

// Networks is an ordered collection of networks.
type Networks []Network

// Contains reports whether the collection includes the given network. Two
// networks are the same when their selectors match.
func (ns Networks) Contains(network Network) bool {
	return slices.ContainsFunc(ns, func(n Network) bool {
		return n.Selector == network.Selector
	})
}

// IDs returns the wire identifiers of all networks, preserving order.
func (ns Networks) IDs() []string {
	ids := make([]string, 0, len(ns))
	for _, n := range ns {
		ids = append(ids, n.ID)
	}

	return ids
}

// ByID returns the network with the given wire identifier.
func (ns Networks) ByID(id string) (Network, bool) {
	for _, n := range ns {
		if n.ID == id {
			return n, true
		}
	}

	return Network{}, false
}

// supported holds the governed networks in their canonical order. The token
// is deployed on these six EVM mainnets and on no others.
var supported = Networks{
	{ID: "ethereum", Selector: chainsel.ETHEREUM_MAINNET.Selector},
	{ID: "polygon", Selector: chainsel.POLYGON_MAINNET.Selector},
	{ID: "avalanche", Selector: chainsel.AVALANCHE_MAINNET.Selector},
	{ID: "bnb", Selector: chainsel.BINANCE_SMART_CHAIN_MAINNET.Selector},
	{ID: "optimism", Selector: chainsel.ETHEREUM_MAINNET_OPTIMISM_1.Selector},
	{ID: "arbitrum", Selector: chainsel.ETHEREUM_MAINNET_ARBITRUM_1.Selector},
}

// All returns the governed networks in a stable order. The returned slice is
// a copy and may be modified freely.
func All() Networks {
	return slices.Clone(supported)
}

// FromID resolves a wire identifier to a network. It performs no network
// call. Unknown identifiers fail with ErrNotSupported.
func FromID(id string) (Network, error) {
	n, ok := supported.ByID(id)
	if !ok {
		return Network{}, fmt.Errorf("%w: %q", ErrNotSupported, id)
	}

	return n, nil
}

// MustFromID resolves a wire identifier to a network, panicking on unknown
// identifiers. Intended for tests and fixtures.
func MustFromID(id string) Network {
	n, err := FromID(id)
	if err != nil {
		panic(err)
	}

	return n
}

// FromIDs resolves a list of wire identifiers, preserving order. The first
// unknown identifier fails the whole resolution.
func FromIDs(ids ...string) (Networks, error) {
	ns := make(Networks, 0, len(ids))
	for _, id := range ids {
		n, err := FromID(id)
		if err != nil {
			return nil, err
		}
		ns = append(ns, n)
	}

	return ns, nil
}
