package postgres

import (
	"context"
	"fmt"

	"cardbox/internal/domain/contact"

	"golang.org/x/exp/slog"
)

// ContactRepository persists contact cards in the contact_cards table.
// Every statement carries the owner predicate; there is no code path that
// reads or writes a row without it.
type ContactRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewContactRepository(db *Storage, log *slog.Logger) *ContactRepository {
	return &ContactRepository{
		db:  db,
		log: log.With("component", "contact_repository"),
	}
}

func (r *ContactRepository) List(ctx context.Context, ownerEmail string) ([]contact.Contact, error) {
	const query = `
		SELECT id, user_email, contact_name, contact_affiliation,
		       contact_description, contact_image
		FROM contact_cards
		WHERE user_email = $1
		ORDER BY id ASC`

	rows, err := r.db.Pool().Query(ctx, query, ownerEmail)
	if err != nil {
		r.log.Error("failed to list contacts", "owner", ownerEmail, "error", err)
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]contact.Contact, 0)
	for rows.Next() {
		var c contact.Contact
		err := rows.Scan(&c.ID, &c.OwnerEmail, &c.Name, &c.Affiliation, &c.Description, &c.Image)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

// Create inserts a row with only the owner set. All content columns default
// to empty in the schema; the caller populates them with a later update.
func (r *ContactRepository) Create(ctx context.Context, ownerEmail string) (int, error) {
	const query = `
		INSERT INTO contact_cards (user_email)
		VALUES ($1)
		RETURNING id`

	var id int
	err := r.db.Pool().QueryRow(ctx, query, ownerEmail).Scan(&id)
	if err != nil {
		r.log.Error("failed to create contact", "owner", ownerEmail, "error", err)
		return 0, fmt.Errorf("create contact: %w", err)
	}

	return id, nil
}

// Update overwrites all four content columns of the row matching
// (id, owner). Zero matched rows is reported, never treated as an error.
func (r *ContactRepository) Update(ctx context.Context, ownerEmail string, id int, fields contact.Fields) (int64, error) {
	const query = `
		UPDATE contact_cards
		SET contact_name = $1, contact_affiliation = $2,
		    contact_description = $3, contact_image = $4
		WHERE id = $5 AND user_email = $6`

	result, err := r.db.Pool().Exec(ctx, query,
		fields.Name, fields.Affiliation, fields.Description, fields.Image,
		id, ownerEmail,
	)
	if err != nil {
		r.log.Error("failed to update contact", "contact_id", id, "owner", ownerEmail, "error", err)
		return 0, fmt.Errorf("update contact: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *ContactRepository) Delete(ctx context.Context, ownerEmail string, id int) (int64, error) {
	const query = `DELETE FROM contact_cards WHERE id = $1 AND user_email = $2`

	result, err := r.db.Pool().Exec(ctx, query, id, ownerEmail)
	if err != nil {
		r.log.Error("failed to delete contact", "contact_id", id, "owner", ownerEmail, "error", err)
		return 0, fmt.Errorf("delete contact: %w", err)
	}

	return result.RowsAffected(), nil
}
