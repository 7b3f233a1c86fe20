package memory

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/segmentio/ksuid"
)

// newAckID generates a new acknowledgment ID.
func newAckID() string {
	return newID("tx")
}

// newID generates a new ID with a given prefix. This uses ksuid to generate
// a unique ID; each ID is prefixed with a string identifying the type of
// entity it belongs to.
func newID(prefix string) string {
	return prefix + "_" + ksuid.New().String()
}

// newWalletAddress derives a unique, well-formed wallet address by hashing a
// fresh ksuid. The address has no on-chain meaning.
func newWalletAddress() string {
	return common.BytesToAddress(crypto.Keccak256([]byte(ksuid.New().String()))).Hex()
}
