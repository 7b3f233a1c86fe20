package memory

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnidao/crosschain-governance/chain"
	"github.com/omnidao/crosschain-governance/walletapi"
)

var (
	testTo       = common.HexToAddress("0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f")
	testCalldata = []byte{0x56, 0x78, 0x13, 0x88, 0x2a}
)

func TestService_ProvisionWallet(t *testing.T) {
	t.Parallel()

	svc := NewService()

	networks, err := chain.FromIDs("ethereum", "avalanche")
	require.NoError(t, err)

	identity, err := svc.ProvisionWallet(t.Context(), "DAO", networks)
	require.NoError(t, err)

	assert.Equal(t, "DAO", identity.TokenSymbol)
	assert.Equal(t, networks, identity.SupportedChains)
	assert.True(t, common.IsHexAddress(identity.Address))

	// Provisioning is not idempotent: a second call yields a new identity.
	second, err := svc.ProvisionWallet(t.Context(), "DAO", networks)
	require.NoError(t, err)
	assert.NotEqual(t, identity.Address, second.Address)
}

func TestService_ProvisionWallet_InputValidation(t *testing.T) {
	t.Parallel()

	svc := NewService()

	_, err := svc.ProvisionWallet(t.Context(), "", chain.All())
	require.ErrorContains(t, err, "token symbol is required")

	_, err = svc.ProvisionWallet(t.Context(), "DAO", nil)
	require.ErrorContains(t, err, "at least one chain is required")
}

func TestService_ProvisionWallet_FailureInjection(t *testing.T) {
	t.Parallel()

	svc := NewService()
	svc.FailProvisioning(http.StatusForbidden, "tenant is suspended")

	_, err := svc.ProvisionWallet(t.Context(), "DAO", chain.All())

	var provErr *walletapi.ProvisioningError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusForbidden, provErr.StatusCode)
	assert.Equal(t, "tenant is suspended", provErr.Body)

	// Clearing the staged failure restores normal behavior.
	svc.ClearProvisioningFailure()

	_, err = svc.ProvisionWallet(t.Context(), "DAO", chain.All())
	require.NoError(t, err)
}

func TestService_SubmitTransaction(t *testing.T) {
	t.Parallel()

	svc := NewService()

	identity, err := svc.ProvisionWallet(t.Context(), "DAO", chain.All())
	require.NoError(t, err)

	result, err := svc.SubmitTransaction(
		t.Context(), identity, chain.MustFromID("optimism"), testTo, testCalldata,
	)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, result.StatusCode)

	var ack transactionAck
	require.NoError(t, json.Unmarshal(result.Ack, &ack))
	assert.True(t, strings.HasPrefix(ack.ID, "tx_"))
	assert.Equal(t, "submitted", ack.Status)

	subs := svc.Submissions()
	require.Len(t, subs, 1)
	assert.Equal(t, identity.Address, subs[0].WalletAddress)
	assert.Equal(t, "optimism", subs[0].Chain)
	assert.Equal(t, testTo.Hex(), subs[0].To)
	assert.Equal(t, testCalldata, subs[0].Data)
	assert.Equal(t, "0", subs[0].Value)
	assert.Equal(t, ack.ID, subs[0].AckID)
}

func TestService_SubmitTransaction_ChainNotSupported(t *testing.T) {
	t.Parallel()

	svc := NewService()

	networks, err := chain.FromIDs("ethereum")
	require.NoError(t, err)

	identity, err := svc.ProvisionWallet(t.Context(), "DAO", networks)
	require.NoError(t, err)

	_, err = svc.SubmitTransaction(
		t.Context(), identity, chain.MustFromID("bnb"), testTo, testCalldata,
	)
	require.ErrorIs(t, err, walletapi.ErrChainNotSupported)

	assert.Empty(t, svc.Submissions())
}

func TestService_SubmitTransaction_UnknownWallet(t *testing.T) {
	t.Parallel()

	svc := NewService()

	identity := walletapi.WalletIdentity{
		TokenSymbol:     "DAO",
		SupportedChains: chain.All(),
		Address:         "0x000000000000000000000000000000000000dEaD",
	}

	_, err := svc.SubmitTransaction(
		t.Context(), identity, chain.MustFromID("ethereum"), testTo, testCalldata,
	)

	var subErr *walletapi.SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, http.StatusNotFound, subErr.StatusCode)
}

func TestService_SubmitTransaction_FailureInjection(t *testing.T) {
	t.Parallel()

	svc := NewService()

	identity, err := svc.ProvisionWallet(t.Context(), "DAO", chain.All())
	require.NoError(t, err)

	svc.FailSubmission(http.StatusServiceUnavailable, "sponsorship budget exhausted")

	_, err = svc.SubmitTransaction(
		t.Context(), identity, chain.MustFromID("ethereum"), testTo, testCalldata,
	)

	var subErr *walletapi.SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, http.StatusServiceUnavailable, subErr.StatusCode)
	assert.Equal(t, "sponsorship budget exhausted", subErr.Body)
	assert.Empty(t, svc.Submissions(), "rejected submissions must not be recorded")

	// A later submission succeeds once the failure is cleared.
	svc.ClearSubmissionFailure()

	_, err = svc.SubmitTransaction(
		t.Context(), identity, chain.MustFromID("ethereum"), testTo, testCalldata,
	)
	require.NoError(t, err)
	assert.Len(t, svc.Submissions(), 1)
}

func TestService_Submissions_ReturnsCopy(t *testing.T) {
	t.Parallel()

	svc := NewService()

	identity, err := svc.ProvisionWallet(t.Context(), "DAO", chain.All())
	require.NoError(t, err)

	_, err = svc.SubmitTransaction(
		t.Context(), identity, chain.MustFromID("ethereum"), testTo, testCalldata,
	)
	require.NoError(t, err)

	subs := svc.Submissions()
	subs[0].Chain = "mutated"

	assert.Equal(t, "ethereum", svc.Submissions()[0].Chain)
}
