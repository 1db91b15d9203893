package object

import (
	"context"
	"io"
)

// ObjectStore is the contract for persisting and retrieving binary objects
// under caller-chosen keys.
type ObjectStore interface {
	Save(ctx context.Context, key string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
