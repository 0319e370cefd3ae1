package contact

import (
	"context"
)

// Repository is the storage contract for contact cards. Every method is
// scoped by owner email; Update and Delete report how many rows matched so
// the service can observe silent no-ops without treating them as errors.
type Repository interface {
	List(ctx context.Context, ownerEmail string) ([]Contact, error)
	Create(ctx context.Context, ownerEmail string) (int, error)
	Update(ctx context.Context, ownerEmail string, id int, fields Fields) (int64, error)
	Delete(ctx context.Context, ownerEmail string, id int) (int64, error)
}
