package datastore

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	refEthereum = GovernorRef{
		ChainSelector: 1,
		Address:       "0x1111111111111111111111111111111111111111",
		Version:       semver.MustParse("1.0.0"),
		Qualifier:     "treasury",
	}

	refPolygon = GovernorRef{
		ChainSelector: 2,
		Address:       "0x2222222222222222222222222222222222222222",
		Version:       semver.MustParse("1.0.0"),
		Qualifier:     "treasury",
	}

	refEthereumGrants = GovernorRef{
		ChainSelector: 1,
		Address:       "0x3333333333333333333333333333333333333333",
		Version:       semver.MustParse("2.0.0"),
		Qualifier:     "grants",
	}
)

func TestMemoryGovernorRefStore_indexOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		givenState    []GovernorRef
		giveKey       GovernorRefKey
		expectedIndex int
	}{
		{
			name:          "success: returns index of record",
			givenState:    []GovernorRef{refEthereum, refPolygon},
			giveKey:       refPolygon.Key(),
			expectedIndex: 1,
		},
		{
			name:          "success: returns -1 if record not found",
			givenState:    []GovernorRef{refEthereum},
			giveKey:       refPolygon.Key(),
			expectedIndex: -1,
		},
		{
			name:          "success: qualifier differentiates records on the same chain",
			givenState:    []GovernorRef{refEthereum, refEthereumGrants},
			giveKey:       refEthereumGrants.Key(),
			expectedIndex: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := MemoryGovernorRefStore{Records: tt.givenState}
			idx := store.indexOf(tt.giveKey)
			assert.Equal(t, tt.expectedIndex, idx)
		})
	}
}

func TestMemoryGovernorRefStore_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		givenState    []GovernorRef
		giveKey       GovernorRefKey
		expectedRef   GovernorRef
		expectedError error
	}{
		{
			name:        "success: returns record",
			givenState:  []GovernorRef{refEthereum, refPolygon},
			giveKey:     refEthereum.Key(),
			expectedRef: refEthereum,
		},
		{
			name:          "error: record not found",
			givenState:    []GovernorRef{refEthereum},
			giveKey:       refPolygon.Key(),
			expectedError: ErrGovernorRefNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := MemoryGovernorRefStore{Records: tt.givenState}
			got, err := store.Get(tt.giveKey)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedRef, got)
			}
		})
	}
}

func TestMemoryGovernorRefStore_Get_ReturnsClone(t *testing.T) {
	t.Parallel()

	store := NewMemoryGovernorRefStore()
	require.NoError(t, store.Add(refEthereum))

	got, err := store.Get(refEthereum.Key())
	require.NoError(t, err)

	// mutating the returned record must not affect the stored one
	*got.Version = *semver.MustParse("9.9.9")

	stored, err := store.Get(refEthereum.Key())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", stored.Version.String())
}

func TestMemoryGovernorRefStore_GetByChainSelector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		givenState   []GovernorRef
		giveSelector uint64
		expectedRef  GovernorRef
		wantErr      string
	}{
		{
			name:         "success: sole governor on the chain",
			givenState:   []GovernorRef{refEthereum, refPolygon},
			giveSelector: 2,
			expectedRef:  refPolygon,
		},
		{
			name:         "error: no governor on the chain",
			givenState:   []GovernorRef{refEthereum},
			giveSelector: 99,
			wantErr:      ErrGovernorRefNotFound.Error(),
		},
		{
			name:         "error: ambiguous without a qualifier",
			givenState:   []GovernorRef{refEthereum, refEthereumGrants},
			giveSelector: 1,
			wantErr:      "qualify the lookup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := MemoryGovernorRefStore{Records: tt.givenState}
			got, err := store.GetByChainSelector(tt.giveSelector)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedRef, got)
			}
		})
	}
}

func TestMemoryGovernorRefStore_Fetch(t *testing.T) {
	t.Parallel()

	store := MemoryGovernorRefStore{Records: []GovernorRef{refEthereum, refPolygon}}

	records, err := store.Fetch()
	require.NoError(t, err)
	assert.Equal(t, []GovernorRef{refEthereum, refPolygon}, records)

	// empty store fetches an empty slice
	empty := NewMemoryGovernorRefStore()
	records, err = empty.Fetch()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMemoryGovernorRefStore_Add(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		givenState    []GovernorRef
		giveRecord    GovernorRef
		expectedState []GovernorRef
		expectedError error
	}{
		{
			name:          "success: adds new record",
			givenState:    []GovernorRef{},
			giveRecord:    refEthereum,
			expectedState: []GovernorRef{refEthereum},
		},
		{
			name:          "success: same chain, different qualifier",
			givenState:    []GovernorRef{refEthereum},
			giveRecord:    refEthereumGrants,
			expectedState: []GovernorRef{refEthereum, refEthereumGrants},
		},
		{
			name:          "error: already existing record",
			givenState:    []GovernorRef{refEthereum},
			giveRecord:    refEthereum,
			expectedError: ErrGovernorRefExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := MemoryGovernorRefStore{Records: tt.givenState}
			err := store.Add(tt.giveRecord)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedState, store.Records)
			}
		})
	}
}

func TestMemoryGovernorRefStore_Upsert(t *testing.T) {
	t.Parallel()

	updated := GovernorRef{
		ChainSelector: 1,
		Address:       "0x4444444444444444444444444444444444444444",
		Version:       semver.MustParse("1.1.0"),
		Qualifier:     "treasury",
	}

	tests := []struct {
		name          string
		givenState    []GovernorRef
		giveRecord    GovernorRef
		expectedState []GovernorRef
	}{
		{
			name:          "success: adds new record",
			givenState:    []GovernorRef{},
			giveRecord:    refEthereum,
			expectedState: []GovernorRef{refEthereum},
		},
		{
			name:          "success: updates existing record",
			givenState:    []GovernorRef{refEthereum},
			giveRecord:    updated,
			expectedState: []GovernorRef{updated},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := MemoryGovernorRefStore{Records: tt.givenState}
			err := store.Upsert(tt.giveRecord)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedState, store.Records)
		})
	}
}

func TestMemoryGovernorRefStore_Update(t *testing.T) {
	t.Parallel()

	updated := GovernorRef{
		ChainSelector: 1,
		Address:       "0x4444444444444444444444444444444444444444",
		Version:       semver.MustParse("1.1.0"),
		Qualifier:     "treasury",
	}

	tests := []struct {
		name          string
		givenState    []GovernorRef
		giveRecord    GovernorRef
		expectedState []GovernorRef
		expectedError error
	}{
		{
			name:          "success: updates existing record",
			givenState:    []GovernorRef{refEthereum},
			giveRecord:    updated,
			expectedState: []GovernorRef{updated},
		},
		{
			name:          "error: record not found",
			givenState:    []GovernorRef{},
			giveRecord:    updated,
			expectedError: ErrGovernorRefNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := MemoryGovernorRefStore{Records: tt.givenState}
			err := store.Update(tt.giveRecord)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedState, store.Records)
			}
		})
	}
}

func TestMemoryGovernorRefStore_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		givenState    []GovernorRef
		giveKey       GovernorRefKey
		expectedState []GovernorRef
		expectedError error
	}{
		{
			name:          "success: deletes record",
			givenState:    []GovernorRef{refEthereum, refPolygon},
			giveKey:       refEthereum.Key(),
			expectedState: []GovernorRef{refPolygon},
		},
		{
			name:          "error: record not found",
			givenState:    []GovernorRef{refPolygon},
			giveKey:       refEthereum.Key(),
			expectedError: ErrGovernorRefNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := MemoryGovernorRefStore{Records: tt.givenState}
			err := store.Delete(tt.giveKey)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedState, store.Records)
			}
		})
	}
}
