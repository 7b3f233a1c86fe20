package walletapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/omnidao/crosschain-governance/chain"
	"github.com/omnidao/crosschain-governance/pkg/logger"
)

const (
	// walletsPath is the endpoint for wallet provisioning.
	walletsPath = "/v1/wallets"
	// transactionsPath is the endpoint for transaction submission.
	transactionsPath = "/v1/transactions"

	// idempotencyKeyHeader carries a fresh key per submission so the
	// service can deduplicate deliveries without the request body changing
	// shape.
	idempotencyKeyHeader = "X-Idempotency-Key"

	// defaultHTTPTimeout bounds requests when no HTTP client is injected.
	defaultHTTPTimeout = 30 * time.Second
)

// ClientConfig holds the configuration for constructing a Client.
type ClientConfig struct {
	// BaseURL is the root URL of the Smart Wallet API.
	BaseURL string

	// TokenSource supplies the bearer credential attached to every
	// request. The credential is opaque to the client.
	TokenSource oauth2.TokenSource

	// HTTPClient optionally overrides the HTTP client used for requests.
	// When nil, a client with a 30 second timeout is used.
	HTTPClient *http.Client

	// Logger optionally records request activity. When nil, logging is
	// disabled.
	Logger logger.Logger
}

// validate checks that the required configuration fields are set.
func (c ClientConfig) validate() error {
	if c.BaseURL == "" {
		return errors.New("base URL is required")
	}

	if c.TokenSource == nil {
		return errors.New("token source is required")
	}

	return nil
}

// Client is the HTTP implementation of Transactor against the live Smart
// Wallet API. It never retries: every failure is terminal for the operation
// that raised it.
type Client struct {
	baseURL     string
	tokenSource oauth2.TokenSource
	httpClient  *http.Client
	lggr        logger.Logger
}

var _ Transactor = (*Client)(nil)

// NewClient constructs a Client from the given configuration.
func NewClient(cfg ClientConfig) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	lggr := cfg.Logger
	if lggr == nil {
		lggr = logger.Nop()
	}

	return &Client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		tokenSource: cfg.TokenSource,
		httpClient:  httpClient,
		lggr:        lggr,
	}, nil
}

// provisionWalletRequest is the wire shape for wallet provisioning.
type provisionWalletRequest struct {
	TokenSymbol string   `json:"tokenSymbol"`
	Chains      []string `json:"chains"`
}

// provisionWalletResponse is the wire shape of a successful provisioning
// response.
type provisionWalletResponse struct {
	WalletAddress string `json:"walletAddress"`
}

// submitTransactionRequest is the wire shape for transaction submission.
// Value is always "0": governance votes never move funds.
type submitTransactionRequest struct {
	WalletAddress string `json:"walletAddress"`
	Chain         string `json:"chain"`
	To            string `json:"to"`
	Data          string `json:"data"`
	Value         string `json:"value"`
}

// ProvisionWallet creates a smart wallet scoped to the token symbol and the
// given chains. Provisioning is not idempotent: calling it twice may create
// two distinct identities.
func (c *Client) ProvisionWallet(
	ctx context.Context, tokenSymbol string, chains chain.Networks,
) (WalletIdentity, error) {
	if tokenSymbol == "" {
		return WalletIdentity{}, errors.New("token symbol is required")
	}

	if len(chains) == 0 {
		return WalletIdentity{}, errors.New("at least one chain is required")
	}

	c.lggr.Debugw("Provisioning wallet",
		"tokenSymbol", tokenSymbol,
		"chains", chains.IDs(),
	)

	status, body, err := c.post(ctx, walletsPath, provisionWalletRequest{
		TokenSymbol: tokenSymbol,
		Chains:      chains.IDs(),
	}, nil)
	if err != nil {
		return WalletIdentity{}, &ProvisioningError{Err: err}
	}

	if !isSuccess(status) {
		return WalletIdentity{}, &ProvisioningError{StatusCode: status, Body: string(body)}
	}

	var resp provisionWalletResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return WalletIdentity{}, &ProvisioningError{
			StatusCode: status,
			Body:       string(body),
			Err:        fmt.Errorf("failed to decode provisioning response: %w", err),
		}
	}

	if !common.IsHexAddress(resp.WalletAddress) {
		return WalletIdentity{}, &ProvisioningError{
			StatusCode: status,
			Body:       string(body),
			Err:        fmt.Errorf("provisioning response contains an invalid wallet address %q", resp.WalletAddress),
		}
	}

	identity := WalletIdentity{
		TokenSymbol:     tokenSymbol,
		SupportedChains: slices.Clone(chains),
		Address:         resp.WalletAddress,
	}

	c.lggr.Infow("Wallet provisioned",
		"address", identity.Address,
		"tokenSymbol", tokenSymbol,
	)

	return identity, nil
}

// SubmitTransaction submits calldata to the contract at to on the given
// network as a gas-sponsored transaction from the wallet. The membership
// check runs before anything leaves the process.
func (c *Client) SubmitTransaction(
	ctx context.Context,
	identity WalletIdentity,
	network chain.Network,
	to common.Address,
	calldata []byte,
) (*TransactionResult, error) {
	if !identity.SupportsChain(network) {
		return nil, &SubmissionError{
			Err: fmt.Errorf("%w: wallet %s supports %v, got %q",
				ErrChainNotSupported, identity.Address, identity.SupportedChains.IDs(), network.ID),
		}
	}

	c.lggr.Debugw("Submitting transaction",
		"wallet", identity.Address,
		"chain", network.ID,
		"to", to.Hex(),
		"calldataBytes", len(calldata),
	)

	headers := map[string]string{idempotencyKeyHeader: uuid.NewString()}

	status, body, err := c.post(ctx, transactionsPath, submitTransactionRequest{
		WalletAddress: identity.Address,
		Chain:         network.ID,
		To:            to.Hex(),
		Data:          hexutil.Encode(calldata),
		Value:         "0",
	}, headers)
	if err != nil {
		return nil, &SubmissionError{Err: err}
	}

	if !isSuccess(status) {
		return nil, &SubmissionError{StatusCode: status, Body: string(body)}
	}

	c.lggr.Infow("Transaction accepted",
		"wallet", identity.Address,
		"chain", network.ID,
		"status", status,
	)

	return &TransactionResult{
		StatusCode: status,
		Ack:        json.RawMessage(body),
	}, nil
}

// post sends a JSON payload to the endpoint at path and returns the
// response status and body. A non-nil error means the request never
// completed (the status is meaningless in that case).
func (c *Client) post(
	ctx context.Context, path string, payload any, headers map[string]string,
) (int, []byte, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request URL: %w", err)
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	token, err := c.tokenSource.Token()
	if err != nil {
		return 0, nil, fmt.Errorf("failed to obtain access token: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

// isSuccess reports whether status is a 2xx status code.
func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
