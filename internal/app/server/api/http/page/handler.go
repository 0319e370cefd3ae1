// Package page serves the index page. Real page rendering belongs to the
// frontend; this endpoint only hands it the contacts URL to talk to.
package page

import (
	"bytes"
	"context"
	"html/template"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const indexTemplate = `<!DOCTYPE html>
<html>
<head><title>Contact Cards</title></head>
<body data-contacts-url="{{.ContactsURL}}">
<div id="app"></div>
</body>
</html>
`

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
	index      []byte
}

type indexOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares) (*Handler, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct{ ContactsURL string }{ContactsURL: "/contacts"})
	if err != nil {
		return nil, err
	}

	return &Handler{
		log:        log,
		middleware: middleware,
		index:      buf.Bytes(),
	}, nil
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.indexOp(), h.indexPage)
}

func (h *Handler) indexOp() huma.Operation {
	return huma.Operation{
		OperationID: "index-page",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Index page",
		Description: "Serves the page shell that references the contacts endpoint URL.",
		Tags:        []string{"pages"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) indexPage(_ context.Context, _ *struct{}) (*indexOutput, error) {
	return &indexOutput{
		ContentType: "text/html; charset=utf-8",
		Body:        h.index,
	}, nil
}
