package datastore

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/omnidao/crosschain-governance/chain"
)

// defaultGovernorVersion is assumed for manifest entries that omit a version.
var defaultGovernorVersion = semver.MustParse("1.0.0")

// GovernorManifestEntry is one governor deployment in the YAML manifest.
// Chain is a wire identifier resolvable with chain.FromID.
type GovernorManifestEntry struct {
	Chain     string `yaml:"chain"`
	Address   string `yaml:"address"`
	Qualifier string `yaml:"qualifier"`
	Version   string `yaml:"version"`
}

// ref resolves the entry into a GovernorRef, validating the chain identifier,
// the version and the address.
func (e GovernorManifestEntry) ref() (GovernorRef, error) {
	network, err := chain.FromID(e.Chain)
	if err != nil {
		return GovernorRef{}, err
	}

	version := defaultGovernorVersion
	if e.Version != "" {
		version, err = semver.NewVersion(e.Version)
		if err != nil {
			return GovernorRef{}, fmt.Errorf("invalid governor version %q: %w", e.Version, err)
		}
	}

	ref := GovernorRef{
		ChainSelector: network.Selector,
		Address:       e.Address,
		Version:       version,
		Qualifier:     e.Qualifier,
	}
	if err := ref.Validate(); err != nil {
		return GovernorRef{}, err
	}

	return ref, nil
}

// Manifest is the YAML representation of the governor address registry.
type Manifest struct {
	// A YAML array of governor deployments.
	Governors []GovernorManifestEntry `yaml:"governors"`
}

// Validate ensures every manifest entry resolves to a valid GovernorRef.
func (m *Manifest) Validate() error {
	for _, entry := range m.Governors {
		if _, err := entry.ref(); err != nil {
			return fmt.Errorf("governor %s/%s: %w", entry.Chain, entry.Qualifier, err)
		}
	}

	return nil
}

// merge merges another manifest into the current one. Entries with the same
// chain and qualifier are overwritten, preserving first-appearance order.
func (m *Manifest) merge(other *Manifest) {
	for _, entry := range other.Governors {
		idx := -1
		for i, existing := range m.Governors {
			if existing.Chain == entry.Chain && existing.Qualifier == entry.Qualifier {
				idx = i
				break
			}
		}

		if idx == -1 {
			m.Governors = append(m.Governors, entry)
		} else {
			m.Governors[idx] = entry
		}
	}
}

// Store materializes the manifest into an in-memory governor ref store.
func (m *Manifest) Store() (MutableGovernorRefStore, error) {
	store := NewMemoryGovernorRefStore()
	for _, entry := range m.Governors {
		ref, err := entry.ref()
		if err != nil {
			return nil, fmt.Errorf("governor %s/%s: %w", entry.Chain, entry.Qualifier, err)
		}

		if err := store.Add(ref); err != nil {
			return nil, fmt.Errorf("governor %s/%s: %w", entry.Chain, entry.Qualifier, err)
		}
	}

	return store, nil
}

// Load loads governor manifests from the specified file paths and merges them
// into a single Manifest. Later files override entries with the same chain
// and qualifier.
func Load(filePaths ...string) (*Manifest, error) {
	manifest := &Manifest{}

	for _, fp := range filePaths {
		data, err := os.ReadFile(fp)
		if err != nil {
			return nil, fmt.Errorf("failed to read governor manifest: %w", err)
		}

		var fileManifest Manifest
		if err := yaml.Unmarshal(data, &fileManifest); err != nil {
			return nil, fmt.Errorf("failed to unmarshal governor manifest YAML: %w", err)
		}

		manifest.merge(&fileManifest)
	}

	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate governor manifest: %w", err)
	}

	return manifest, nil
}
