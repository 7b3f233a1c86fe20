// Package config loads the voting client configuration from YAML files and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/spf13/viper"

	"github.com/omnidao/crosschain-governance/chain"
)

// WalletAPIAuthConfig is the configuration for authenticating to the Smart
// Wallet API.
//
// WARNING: This data type contains sensitive fields and should not be logged
// or set in file configuration.
type WalletAPIAuthConfig struct {
	BearerToken string `mapstructure:"bearer_token" yaml:"bearer_token"` // Secret: The bearer credential sent with every request
}

// WalletAPIConfig is the configuration for connecting to the Smart Wallet
// API.
type WalletAPIConfig struct {
	BaseURL string              `mapstructure:"base_url" yaml:"base_url"` // The base URL of the Smart Wallet API
	DryRun  bool                `mapstructure:"dry_run" yaml:"dry_run"`   // When true, write operations are logged instead of sent
	Auth    WalletAPIAuthConfig `mapstructure:"auth" yaml:"auth"`         // Secret: The authentication configuration
}

// GovernanceConfig is the configuration for the governance workflow.
type GovernanceConfig struct {
	TokenSymbol   string   `mapstructure:"token_symbol" yaml:"token_symbol"`     // The governance token the wallet is provisioned for
	Networks      []string `mapstructure:"networks" yaml:"networks"`             // Wire identifiers of the governed chains, e.g. "ethereum"
	ManifestPaths []string `mapstructure:"manifest_paths" yaml:"manifest_paths"` // Paths to governor manifest YAML files
}

// Config wraps the entire configuration for the voting client.
type Config struct {
	WalletAPI  WalletAPIConfig  `mapstructure:"wallet_api" yaml:"wallet_api"`
	Governance GovernanceConfig `mapstructure:"governance" yaml:"governance"`
}

// Validate checks that the configuration is complete enough to assemble a
// voting session.
func (c *Config) Validate() error {
	if c.WalletAPI.BaseURL == "" {
		return errors.New("wallet_api.base_url is required")
	}

	if c.WalletAPI.Auth.BearerToken == "" {
		return errors.New("wallet_api.auth.bearer_token is required")
	}

	if c.Governance.TokenSymbol == "" {
		return errors.New("governance.token_symbol is required")
	}

	if len(c.Governance.Networks) == 0 {
		return errors.New("governance.networks must list at least one network")
	}

	if _, err := chain.FromIDs(c.Governance.Networks...); err != nil {
		return fmt.Errorf("governance.networks: %w", err)
	}

	return nil
}

// Load loads the config from the file path, falling back to env vars if the
// file does not exist. If the file exists, any env vars that are set will
// override the values loaded from the file.
func Load(filePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filePath)

	// Bind environment variables
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	// If the config file exists, we continue to read it, otherwise we
	// fallback to using environment variables
	if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// LoadEnv loads the config from the environment variables.
func LoadEnv() (*Config, error) {
	v := viper.New()

	// Bind environment variables
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// LoadFile loads the config from a file.
func LoadFile(filePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// envBindings defines how environment variables map to configuration keys
// used by Viper. Each entry maps a config key (as used in the struct, e.g.
// "wallet_api.base_url") to the environment variable that can provide its
// value.
var envBindings = map[string][]string{
	"wallet_api.base_url":          {"WALLET_API_BASE_URL"},
	"wallet_api.dry_run":           {"WALLET_API_DRY_RUN"},
	"wallet_api.auth.bearer_token": {"WALLET_API_AUTH_BEARER_TOKEN"},
	"governance.token_symbol":      {"GOVERNANCE_TOKEN_SYMBOL"},
	"governance.networks":          {"GOVERNANCE_NETWORKS"},
	"governance.manifest_paths":    {"GOVERNANCE_MANIFEST_PATHS"},
}

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		// Prepend the config key to the start of the arguments
		inputs := slices.Insert(envs, 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
