package contact

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"cardbox/internal/app/server/api/http/middleware/auth"
	"cardbox/internal/domain/contact"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, ownerEmail string) ([]contact.Contact, error) {
	args := m.Called(ctx, ownerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contact.Contact), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, ownerEmail string) (int, error) {
	args := m.Called(ctx, ownerEmail)
	return args.Int(0), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, ownerEmail string, id int, fields contact.Fields) error {
	args := m.Called(ctx, ownerEmail, id, fields)
	return args.Error(0)
}

func (m *MockService) Delete(ctx context.Context, ownerEmail string, id int) error {
	args := m.Called(ctx, ownerEmail, id)
	return args.Error(0)
}

const owner = "alice@example.com"

func authCtx() context.Context {
	return auth.WithEmail(context.Background(), owner)
}

func TestHandler_list(t *testing.T) {
	t.Run("maps storage fields to wire names", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		svc.On("List", mock.Anything, owner).Return([]contact.Contact{
			{ID: 1, OwnerEmail: owner, Name: "Bob", Affiliation: "Acme", Description: "friend", Image: "url1"},
			{ID: 2, OwnerEmail: owner, Name: "Carol"},
		}, nil)

		out, err := h.list(authCtx(), nil)

		assert.NoError(t, err)
		assert.Equal(t, []contactView{
			{ID: 1, Name: "Bob", Company: "Acme", Desc: "friend", Img: "url1"},
			{ID: 2, Name: "Carol"},
		}, out.Body)
	})

	t.Run("no contacts yields empty array", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		svc.On("List", mock.Anything, owner).Return([]contact.Contact{}, nil)

		out, err := h.list(authCtx(), nil)

		assert.NoError(t, err)
		assert.NotNil(t, out.Body)
		assert.Len(t, out.Body, 0)
	})

	t.Run("missing identity", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		out, err := h.list(context.Background(), nil)

		assert.Nil(t, out)
		assert.Error(t, err)
		svc.AssertNotCalled(t, "List")
	})
}

func TestHandler_create(t *testing.T) {
	t.Run("returns the new id as plain text", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		svc.On("Create", mock.Anything, owner).Return(42, nil)

		out, err := h.create(authCtx(), nil)

		assert.NoError(t, err)
		assert.Equal(t, "text/plain", out.ContentType)
		assert.Equal(t, []byte("42"), out.Body)
	})

	t.Run("missing identity", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		out, err := h.create(context.Background(), nil)

		assert.Nil(t, out)
		assert.Error(t, err)
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("service failure propagates", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		svc.On("Create", mock.Anything, owner).Return(0, errors.New("storage down"))

		out, err := h.create(authCtx(), nil)

		assert.Nil(t, out)
		assert.Error(t, err)
	})
}

func TestHandler_update(t *testing.T) {
	t.Run("full payload is written as-is", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		input := &updateInput{}
		input.Body.ID = 1
		input.Body.Name = "Bob"
		input.Body.Company = "Acme"
		input.Body.Desc = "friend"
		input.Body.Img = "url1"

		svc.On("Update", mock.Anything, owner, 1, contact.Fields{
			Name: "Bob", Affiliation: "Acme", Description: "friend", Image: "url1",
		}).Return(nil)

		out, err := h.update(authCtx(), input)

		assert.NoError(t, err)
		assert.NotNil(t, out)
		svc.AssertExpectations(t)
	})

	t.Run("absent fields overwrite with empty values", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		input := &updateInput{}
		input.Body.ID = 1
		input.Body.Name = "Alice"

		svc.On("Update", mock.Anything, owner, 1, contact.Fields{Name: "Alice"}).Return(nil)

		_, err := h.update(authCtx(), input)

		assert.NoError(t, err)
		svc.AssertExpectations(t)
	})

	t.Run("missing identity", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		input := &updateInput{}
		input.Body.ID = 1

		out, err := h.update(context.Background(), input)

		assert.Nil(t, out)
		assert.Error(t, err)
		svc.AssertNotCalled(t, "Update")
	})
}

func TestHandler_delete(t *testing.T) {
	t.Run("deletes by query id", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		svc.On("Delete", mock.Anything, owner, 5).Return(nil)

		out, err := h.delete(authCtx(), &deleteInput{ID: 5})

		assert.NoError(t, err)
		assert.NotNil(t, out)
		svc.AssertExpectations(t)
	})

	t.Run("second delete of the same id still succeeds", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		// the service reports zero rows affected as success
		svc.On("Delete", mock.Anything, owner, 5).Return(nil).Twice()

		_, err := h.delete(authCtx(), &deleteInput{ID: 5})
		assert.NoError(t, err)

		_, err = h.delete(authCtx(), &deleteInput{ID: 5})
		assert.NoError(t, err)
	})

	t.Run("missing identity", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		out, err := h.delete(context.Background(), &deleteInput{ID: 5})

		assert.Nil(t, out)
		assert.Error(t, err)
		svc.AssertNotCalled(t, "Delete")
	})
}

// These go through the registered routes, so request validation runs before
// the handler, the same way it does in production.
func TestHandler_MalformedID(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, nil, nil)

	_, api := humatest.New(t)
	h.SetupRoutes(api)

	t.Run("non-integer id on update", func(t *testing.T) {
		resp := api.Put("/contacts", map[string]any{"id": "abc", "name": "Bob"})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("missing id on update", func(t *testing.T) {
		resp := api.Put("/contacts", map[string]any{"name": "Bob"})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("non-integer id on delete", func(t *testing.T) {
		resp := api.Delete("/contacts?id=abc")

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("missing id on delete", func(t *testing.T) {
		resp := api.Delete("/contacts")

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	// rejected requests never reach storage
	svc.AssertNotCalled(t, "Update")
	svc.AssertNotCalled(t, "Delete")
}
