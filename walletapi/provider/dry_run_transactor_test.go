package provider

import (
	"encoding/json"
	"math/big"
	"net/http"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/omnidao/crosschain-governance/chain"
	"github.com/omnidao/crosschain-governance/governor"
	"github.com/omnidao/crosschain-governance/pkg/logger"
	"github.com/omnidao/crosschain-governance/walletapi"
)

func TestDryRunTransactor_ProvisionWallet(t *testing.T) {
	t.Parallel()

	transactor := NewDryRunTransactor(logger.Test(t))

	networks, err := chain.FromIDs("ethereum", "arbitrum")
	require.NoError(t, err)

	identity, err := transactor.ProvisionWallet(t.Context(), "DAO", networks)
	require.NoError(t, err)

	assert.Equal(t, "DAO", identity.TokenSymbol)
	assert.Equal(t, networks, identity.SupportedChains)
	assert.Equal(t, "dryRunWallet_NOT_PROVISIONED_for_DAO", identity.Address)
}

func TestDryRunTransactor_ProvisionWallet_InputValidation(t *testing.T) {
	t.Parallel()

	transactor := NewDryRunTransactor(logger.Test(t))

	_, err := transactor.ProvisionWallet(t.Context(), "", chain.All())
	require.ErrorContains(t, err, "token symbol is required")

	_, err = transactor.ProvisionWallet(t.Context(), "DAO", nil)
	require.ErrorContains(t, err, "at least one chain is required")
}

func TestDryRunTransactor_SubmitTransaction(t *testing.T) {
	t.Parallel()

	lggr, observed := logger.TestObserved(t, zapcore.InfoLevel)
	transactor := NewDryRunTransactor(lggr)

	identity, err := transactor.ProvisionWallet(t.Context(), "DAO", chain.All())
	require.NoError(t, err)

	calldata, err := governor.EncodeCastVoteWithReason(big.NewInt(42), governor.VoteFor, "LGTM")
	require.NoError(t, err)

	to := common.HexToAddress("0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f")

	result, err := transactor.SubmitTransaction(
		t.Context(), identity, chain.MustFromID("polygon"), to, calldata,
	)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, result.StatusCode)

	var ack map[string]string
	require.NoError(t, json.Unmarshal(result.Ack, &ack))
	assert.Equal(t, "dryrun_NOT_SUBMITTED", ack["id"])
	assert.Equal(t, "dry_run", ack["status"])

	// The decoded vote shows up in the log instead of a submission.
	logs := observed.FilterMessage("DryRunTransactor.SubmitTransaction").All()
	require.Len(t, logs, 1)

	fields := logs[0].ContextMap()
	assert.Equal(t, "polygon", fields["chain"])
	assert.Equal(t, "castVoteWithReason", fields["method"])
	assert.Equal(t, "42", fields["proposalId"])
	assert.Equal(t, "for", fields["choice"])
	assert.Equal(t, "LGTM", fields["reason"])
}

func TestDryRunTransactor_SubmitTransaction_OpaqueCalldata(t *testing.T) {
	t.Parallel()

	lggr, observed := logger.TestObserved(t, zapcore.InfoLevel)
	transactor := NewDryRunTransactor(lggr)

	identity, err := transactor.ProvisionWallet(t.Context(), "DAO", chain.All())
	require.NoError(t, err)

	to := common.HexToAddress("0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f")

	// Not a vote: the raw calldata is logged instead of a decoded call.
	_, err = transactor.SubmitTransaction(
		t.Context(), identity, chain.MustFromID("ethereum"), to, []byte{0xde, 0xad, 0xbe, 0xef},
	)
	require.NoError(t, err)

	logs := observed.FilterMessage("DryRunTransactor.SubmitTransaction").All()
	require.Len(t, logs, 1)

	fields := logs[0].ContextMap()
	assert.Equal(t, "0xdeadbeef", fields["calldata"])
	assert.NotContains(t, fields, "proposalId")
}

func TestDryRunTransactor_SubmitTransaction_ChainNotSupported(t *testing.T) {
	t.Parallel()

	transactor := NewDryRunTransactor(logger.Test(t))

	networks, err := chain.FromIDs("ethereum")
	require.NoError(t, err)

	identity, err := transactor.ProvisionWallet(t.Context(), "DAO", networks)
	require.NoError(t, err)

	to := common.HexToAddress("0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f")

	_, err = transactor.SubmitTransaction(
		t.Context(), identity, chain.MustFromID("avalanche"), to, []byte{0x01},
	)
	require.ErrorIs(t, err, walletapi.ErrChainNotSupported)

	var subErr *walletapi.SubmissionError
	require.ErrorAs(t, err, &subErr)
}
