package ports

import "context"

// Optional cache in front of a StateResolver. Zip-to-state mappings change on
// the order of years, so cached entries are served without expiry checks.
type ResolutionCache interface {
	// Get returns the cached resolution for a zip, reporting whether it was present.
	Get(ctx context.Context, zip string) (Resolution, bool, error)
	// Put stores a resolution for a zip, overwriting any previous entry.
	Put(ctx context.Context, zip string, res Resolution) error
}
