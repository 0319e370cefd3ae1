package contact

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

// Servicer defines the business operations on contact cards. Every call
// takes the verified owner email; the service never touches rows belonging
// to anyone else.
type Servicer interface {
	List(ctx context.Context, ownerEmail string) ([]Contact, error)
	Create(ctx context.Context, ownerEmail string) (int, error)
	Update(ctx context.Context, ownerEmail string, id int, fields Fields) error
	Delete(ctx context.Context, ownerEmail string, id int) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "contact_service"),
	}
}

// List returns all cards owned by the caller, ordered by id ascending.
// An owner with no cards gets an empty slice, not an error.
func (s *Service) List(ctx context.Context, ownerEmail string) ([]Contact, error) {
	if ownerEmail == "" {
		return nil, ErrNoIdentity
	}

	contacts, err := s.repo.List(ctx, ownerEmail)
	if err != nil {
		s.log.Error("failed to list contacts", "owner", ownerEmail, "error", err)
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return contacts, nil
}

// Create inserts an empty card owned by the caller and returns its id.
// Creation and population are two separate operations: content arrives
// through a later Update, never here.
func (s *Service) Create(ctx context.Context, ownerEmail string) (int, error) {
	if ownerEmail == "" {
		return 0, ErrNoIdentity
	}

	id, err := s.repo.Create(ctx, ownerEmail)
	if err != nil {
		s.log.Error("failed to create contact", "owner", ownerEmail, "error", err)
		return 0, fmt.Errorf("create contact: %w", err)
	}

	s.log.Info("contact created", "contact_id", id, "owner", ownerEmail)
	return id, nil
}

// Update overwrites all content fields of the card matching (id, owner).
// A card that does not exist, or belongs to another owner, matches zero
// rows; that outcome is indistinguishable from success by contract.
func (s *Service) Update(ctx context.Context, ownerEmail string, id int, fields Fields) error {
	if ownerEmail == "" {
		return ErrNoIdentity
	}

	affected, err := s.repo.Update(ctx, ownerEmail, id, fields)
	if err != nil {
		s.log.Error("failed to update contact", "contact_id", id, "owner", ownerEmail, "error", err)
		return fmt.Errorf("update contact: %w", err)
	}

	if affected == 0 {
		s.log.Debug("update matched no rows", "contact_id", id, "owner", ownerEmail)
		return nil
	}

	s.log.Info("contact updated", "contact_id", id, "owner", ownerEmail)
	return nil
}

// Delete removes the card matching (id, owner). Deleting a missing or
// not-owned id is a silent no-op, which also makes Delete idempotent.
func (s *Service) Delete(ctx context.Context, ownerEmail string, id int) error {
	if ownerEmail == "" {
		return ErrNoIdentity
	}

	affected, err := s.repo.Delete(ctx, ownerEmail, id)
	if err != nil {
		s.log.Error("failed to delete contact", "contact_id", id, "owner", ownerEmail, "error", err)
		return fmt.Errorf("delete contact: %w", err)
	}

	if affected == 0 {
		s.log.Debug("delete matched no rows", "contact_id", id, "owner", ownerEmail)
		return nil
	}

	s.log.Info("contact deleted", "contact_id", id, "owner", ownerEmail)
	return nil
}
