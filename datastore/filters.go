package datastore

import (
	"github.com/Masterminds/semver/v3"
)

// The following functions are a default set of filters that can be used with the Filter method of the
// GovernorRefStore interface. These filters are composable and can be combined to create more complex filters.
// For example, to find a specific governor deployment:
//	```
//		records := store.Filter(
//			GovernorRefByChainSelector(5009297550715157269),
//			GovernorRefByQualifier("treasury"),
//		)
//	```

// All the filters below are used to filter GovernorRef records in the GovernorRefStore.
// They all implement the FilterFunc type.
var _ FilterFunc[GovernorRefKey, GovernorRef] = GovernorRefByChainSelector(0)
var _ FilterFunc[GovernorRefKey, GovernorRef] = GovernorRefByQualifier("")
var _ FilterFunc[GovernorRefKey, GovernorRef] = GovernorRefByVersion(nil)

// governorRefFilter returns a filter that includes records for which the predicate returns true.
// This is a generalized filter function that can be used to create custom filters.
func governorRefFilter(predicate func(record GovernorRef) bool) FilterFunc[GovernorRefKey, GovernorRef] {
	return func(records []GovernorRef) []GovernorRef {
		filtered := make([]GovernorRef, 0, len(records))
		for _, record := range records {
			if predicate(record) {
				filtered = append(filtered, record)
			}
		}

		return filtered
	}
}

// GovernorRefByAddress returns a filter that only includes records with the provided address.
func GovernorRefByAddress(address string) FilterFunc[GovernorRefKey, GovernorRef] {
	return governorRefFilter(func(record GovernorRef) bool {
		return record.Address == address
	})
}

// GovernorRefByChainSelector returns a filter that only includes records with the provided chain.
func GovernorRefByChainSelector(chainSelector uint64) FilterFunc[GovernorRefKey, GovernorRef] {
	return governorRefFilter(func(record GovernorRef) bool {
		return record.ChainSelector == chainSelector
	})
}

// GovernorRefByQualifier returns a filter that only includes records with the provided qualifier.
func GovernorRefByQualifier(qualifier string) FilterFunc[GovernorRefKey, GovernorRef] {
	return governorRefFilter(func(record GovernorRef) bool {
		return record.Qualifier == qualifier
	})
}

// GovernorRefByVersion returns a filter that only includes records with the provided version.
func GovernorRefByVersion(version *semver.Version) FilterFunc[GovernorRefKey, GovernorRef] {
	return governorRefFilter(func(record GovernorRef) bool {
		return record.Version.Equal(version)
	})
}
