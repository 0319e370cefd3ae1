package client

import (
	"context"
	"fmt"

	"cardbox/internal/app/client/config"

	"golang.org/x/exp/slog"
)

// App ties the HTTP client and the local cache together for the CLI.
type App struct {
	cfg   *config.Config
	log   *slog.Logger
	api   *httpClient
	cache *Cache
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	cache, err := NewCache(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}

	return &App{
		cfg:   cfg,
		log:   log,
		api:   newHTTPClient(cfg, log),
		cache: cache,
	}, nil
}

func (a *App) Close() error {
	return a.cache.Close()
}

// Login stores the bearer token obtained from the identity provider. The
// token is exercised against an authenticated endpoint first, so a bad token
// is rejected instead of saved.
func (a *App) Login(ctx context.Context, token string) error {
	a.api.SetToken(token)

	if err := a.api.HealthCheck(ctx); err != nil {
		return err
	}

	if _, err := a.api.ListContacts(ctx); err != nil {
		return err
	}

	if err := a.cfg.SaveToken(token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	return nil
}

// ListContacts fetches the list from the server and refreshes the cache.
// With cached=true, or when the server is unreachable, it serves the last
// cached snapshot instead.
func (a *App) ListContacts(ctx context.Context, cached bool) ([]Contact, error) {
	if cached {
		return a.cache.Load()
	}

	contacts, err := a.api.ListContacts(ctx)
	if err != nil {
		a.log.Debug("server fetch failed, falling back to cache", "error", err)
		cachedContacts, cacheErr := a.cache.Load()
		if cacheErr != nil || len(cachedContacts) == 0 {
			return nil, err
		}
		return cachedContacts, nil
	}

	if err := a.cache.Replace(contacts); err != nil {
		a.log.Debug("failed to refresh cache", "error", err)
	}

	return contacts, nil
}

// AddContact creates an empty card and, when any content is given, follows
// up with the populate step. The two calls mirror the server's two-phase
// create contract.
func (a *App) AddContact(ctx context.Context, fields Contact) (int, error) {
	id, err := a.api.CreateContact(ctx)
	if err != nil {
		return 0, err
	}

	if fields.Name != "" || fields.Company != "" || fields.Desc != "" || fields.Img != "" {
		fields.ID = id
		if err := a.api.EditContact(ctx, fields); err != nil {
			return id, fmt.Errorf("card %d created but not populated: %w", id, err)
		}
	}

	return id, nil
}

// EditContact performs a full-replace update: fields left empty clear the
// stored values.
func (a *App) EditContact(ctx context.Context, c Contact) error {
	return a.api.EditContact(ctx, c)
}

// RemoveContact deletes one card by id.
func (a *App) RemoveContact(ctx context.Context, id int) error {
	return a.api.DeleteContact(ctx, id)
}
