package cart

import "context"

// StorageKey is the well-known key the cart lives under.
const StorageKey = "cart"

// BlobStore is the persistence port: read/write of a keyed blob.
// Load returns (nil, nil) when nothing is stored under key.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// Key scopes the cart to a shopper. The anonymous scope uses the bare key.
func Key(shopperID string) string {
	if shopperID == "" {
		return StorageKey
	}
	return shopperID + "/" + StorageKey
}
