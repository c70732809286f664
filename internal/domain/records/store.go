package records

import "context"

// Store is the persistence port: an opaque named blob holding the serialized
// record collections. Every mutation overwrites the blob wholesale; there are
// no partial writes and no versioning.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
