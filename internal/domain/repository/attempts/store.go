package attempts

import (
	"context"
	"time"

	"saukstas/internal/domain/model"
)

// Store keeps login failure counters per key. Load returns a zero value
// for keys without a record.
type Store interface {
	Load(ctx context.Context, key string) (model.LoginAttempts, error)
	// Update applies fn to the current record and stores the result with ttl
	// as one atomic step, so concurrent failures are never lost.
	Update(ctx context.Context, key string, ttl time.Duration,
		fn func(model.LoginAttempts) model.LoginAttempts) (model.LoginAttempts, error)
	Clear(ctx context.Context, key string) error
}
