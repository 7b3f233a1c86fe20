package voting

import (
	"github.com/Masterminds/semver/v3"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/omnidao/crosschain-governance/chain"
	"github.com/omnidao/crosschain-governance/operations"
	"github.com/omnidao/crosschain-governance/walletapi"
)

// ProvisionWalletInput is the input to the wallet provisioning operation.
type ProvisionWalletInput struct {
	TokenSymbol string         `json:"tokenSymbol"`
	Chains      chain.Networks `json:"chains"`
}

// CastVoteInput is the input to the vote submission operation. Calldata is
// already ABI-encoded; the operation performs exactly one side effect, the
// submission itself.
type CastVoteInput struct {
	Identity walletapi.WalletIdentity `json:"identity"`
	Network  chain.Network            `json:"network"`
	To       common.Address           `json:"to"`
	Calldata hexutil.Bytes            `json:"calldata"`
}

// provisionWalletOp provisions the session wallet. Retry stays disabled: a
// repeat call could create a second identity.
var provisionWalletOp = operations.NewOperation(
	"wallet-provision",
	semver.MustParse("1.0.0"),
	"Provisions a smart wallet for a token symbol across its governed chains",
	func(b operations.Bundle, tx walletapi.Transactor, input ProvisionWalletInput) (walletapi.WalletIdentity, error) {
		return tx.ProvisionWallet(b.GetContext(), input.TokenSymbol, input.Chains)
	},
)

// castVoteOp submits an encoded governance vote as a gas-sponsored
// transaction. Retry stays disabled: failures surface to the caller
// untouched.
var castVoteOp = operations.NewOperation(
	"governance-cast-vote",
	semver.MustParse("1.0.0"),
	"Submits an encoded governance vote as a gas-sponsored transaction",
	func(b operations.Bundle, tx walletapi.Transactor, input CastVoteInput) (*walletapi.TransactionResult, error) {
		return tx.SubmitTransaction(b.GetContext(), input.Identity, input.Network, input.To, input.Calldata)
	},
)
