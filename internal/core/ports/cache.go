package ports

import "context"

// ListCache caches full listing responses under fixed keys. Implementations
// must treat a miss as (false, nil), reserving errors for transport failures.
type ListCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}
