package contact

import (
	"context"
	"strconv"

	"cardbox/internal/app/server/api/http/middleware/auth"
	"cardbox/internal/domain/contact"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    contact.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service contact.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	email, ok := auth.GetEmail(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	contacts, err := h.service.List(ctx, email)
	if err != nil {
		return nil, err
	}

	views := make([]contactView, len(contacts))
	for i, c := range contacts {
		views[i] = contactView{
			ID:      c.ID,
			Name:    c.Name,
			Company: c.Affiliation,
			Desc:    c.Description,
			Img:     c.Image,
		}
	}

	return &listOutput{Body: views}, nil
}

func (h *Handler) create(ctx context.Context, _ *struct{}) (*createOutput, error) {
	email, ok := auth.GetEmail(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	id, err := h.service.Create(ctx, email)
	if err != nil {
		return nil, err
	}

	return &createOutput{
		ContentType: "text/plain",
		Body:        []byte(strconv.Itoa(id)),
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	email, ok := auth.GetEmail(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	fields := contact.Fields{
		Name:        input.Body.Name,
		Affiliation: input.Body.Company,
		Description: input.Body.Desc,
		Image:       input.Body.Img,
	}

	if err := h.service.Update(ctx, email, input.Body.ID, fields); err != nil {
		return nil, err
	}

	return &updateOutput{}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	email, ok := auth.GetEmail(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, email, input.ID); err != nil {
		return nil, err
	}

	return &deleteOutput{}, nil
}
