package contact

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-list",
		Method:      http.MethodGet,
		Path:        "/contacts",
		Summary:     "List the caller's contact cards",
		Description: "Returns all cards owned by the authenticated user, ordered by id ascending.",
		Tags:        []string{"contacts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-create",
		Method:      http.MethodPost,
		Path:        "/contacts",
		Summary:     "Create an empty contact card",
		Description: "Inserts a card with only the owner set and returns its id. Content is populated with a follow-up update.",
		Tags:        []string{"contacts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID:   "contacts-update",
		Method:        http.MethodPut,
		Path:          "/contacts",
		Summary:       "Update a contact card (full replace)",
		Description:   "Overwrites name, company, desc and img of the card matching (id, owner). Absent fields clear the stored values.",
		Tags:          []string{"contacts"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "contacts-delete",
		Method:        http.MethodDelete,
		Path:          "/contacts",
		Summary:       "Delete a contact card",
		Description:   "Removes the card matching (id, owner). Deleting a missing or not-owned id is a no-op.",
		Tags:          []string{"contacts"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}
