package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a dataset name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// RefID computes the ID stored for an event reference. An empty reference maps to 0,
// which the container index reserves for "no event".
func RefID(name string) uint64 {
	if name == "" {
		return 0
	}

	return xxhash.Sum64String(name)
}
