package provider

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/omnidao/crosschain-governance/pkg/logger"
	"github.com/omnidao/crosschain-governance/walletapi"
)

// ClientProviderConfig holds the configuration to initialize the
// ClientProvider.
type ClientProviderConfig struct {
	// Required: The base URL of the Smart Wallet API.
	BaseURL string
	// Required: The bearer credential attached to every request. The
	// credential is opaque and never validated locally.
	BearerToken string
	// Optional: Dry-run mode. When enabled, the provider hands out a
	// DryRunTransactor that logs write operations without executing them.
	DryRun bool
	// Optional: Logger for client activity. Required when dry-run mode is
	// enabled.
	Logger logger.Logger
}

// validate checks if the ClientProviderConfig is valid.
func (c ClientProviderConfig) validate() error {
	if c.BaseURL == "" {
		return errors.New("base URL is required")
	}

	if c.BearerToken == "" {
		return errors.New("bearer token is required")
	}

	if c.DryRun && c.Logger == nil {
		return errors.New("logger is required when dry run mode is enabled")
	}

	return nil
}

// ClientProvider provisions walletapi.Transactor instances backed by the
// Smart Wallet API over HTTP.
type ClientProvider struct {
	config ClientProviderConfig
	client walletapi.Transactor
}

// NewClientProvider creates a new ClientProvider with the given
// configuration.
func NewClientProvider(config ClientProviderConfig) *ClientProvider {
	return &ClientProvider{
		config: config,
	}
}

// Initialize sets up the wallet API client from the provider configuration.
// It returns the initialized walletapi.Transactor or an error if
// initialization fails. Repeat calls return the already-initialized client.
func (p *ClientProvider) Initialize(_ context.Context) (walletapi.Transactor, error) {
	if p.client != nil {
		return p.client, nil // Already initialized
	}

	if err := p.config.validate(); err != nil {
		return nil, fmt.Errorf("failed to validate provider config: %w", err)
	}

	if p.config.DryRun {
		p.client = NewDryRunTransactor(p.config.Logger)

		return p.client, nil
	}

	client, err := walletapi.NewClient(walletapi.ClientConfig{
		BaseURL:     p.config.BaseURL,
		TokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: p.config.BearerToken}),
		Logger:      p.config.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet API client: %w", err)
	}

	p.client = client

	return p.client, nil
}

// Name returns the name of the ClientProvider.
func (*ClientProvider) Name() string {
	return "Smart Wallet API Client Provider"
}

// Transactor returns the client instance managed by this provider. You must
// call Initialize before using this method to ensure the client is properly
// set up.
func (p *ClientProvider) Transactor() walletapi.Transactor {
	return p.client
}
