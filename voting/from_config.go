package voting

import (
	"context"
	"errors"
	"fmt"

	"github.com/omnidao/crosschain-governance/chain"
	"github.com/omnidao/crosschain-governance/config"
	"github.com/omnidao/crosschain-governance/datastore"
	"github.com/omnidao/crosschain-governance/pkg/logger"
	"github.com/omnidao/crosschain-governance/walletapi/provider"
)

// NewSessionFromConfig assembles a ready-to-start session from static
// configuration: the wallet API client (live or dry-run per the config), the
// governor address registry loaded from the configured manifests, and the
// session parameters.
func NewSessionFromConfig(ctx context.Context, lggr logger.Logger, cfg *config.Config) (*Session, error) {
	if lggr == nil {
		return nil, errors.New("logger is required")
	}

	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	transactor, err := provider.NewClientProvider(provider.ClientProviderConfig{
		BaseURL:     cfg.WalletAPI.BaseURL,
		BearerToken: cfg.WalletAPI.Auth.BearerToken,
		DryRun:      cfg.WalletAPI.DryRun,
		Logger:      lggr,
	}).Initialize(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize wallet API client: %w", err)
	}

	manifest, err := datastore.Load(cfg.Governance.ManifestPaths...)
	if err != nil {
		return nil, err
	}

	governors, err := manifest.Store()
	if err != nil {
		return nil, err
	}

	networks, err := chain.FromIDs(cfg.Governance.Networks...)
	if err != nil {
		return nil, fmt.Errorf("governance.networks: %w", err)
	}

	return NewSession(lggr, transactor, governors, Config{
		TokenSymbol: cfg.Governance.TokenSymbol,
		Networks:    networks,
	})
}
