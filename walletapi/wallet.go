package walletapi

import (
	"github.com/omnidao/crosschain-governance/chain"
)

// WalletIdentity is the provisioned smart-wallet identity returned by the
// Smart Wallet API. It binds the wallet address to the token symbol it
// governs with and the set of chains the service will accept transactions
// for on its behalf.
type WalletIdentity struct {
	// TokenSymbol is the governance token the wallet was provisioned for.
	TokenSymbol string `json:"tokenSymbol"`

	// SupportedChains is the set of networks the wallet may transact on.
	// Submissions for any other network are rejected locally.
	SupportedChains chain.Networks `json:"supportedChains"`

	// Address is the hex-encoded smart-wallet address.
	Address string `json:"address"`
}

// SupportsChain reports whether the identity may transact on the given
// network.
func (w WalletIdentity) SupportsChain(network chain.Network) bool {
	return w.SupportedChains.Contains(network)
}
