// ABOUTME: Admin-scoped request passthroughs on the session manager
// ABOUTME: Fails fast without a token and forces logout on 401/403

package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/client"
)

const adminBasePath = "/admin/"

// AdminGet decodes GET /admin/<endpoint> into out
func (m *Manager) AdminGet(ctx context.Context, endpoint string, out any) error {
	return m.adminDo(ctx, http.MethodGet, endpoint, nil, out)
}

// AdminPost sends in to POST /admin/<endpoint>
func (m *Manager) AdminPost(ctx context.Context, endpoint string, in, out any) error {
	return m.adminDo(ctx, http.MethodPost, endpoint, in, out)
}

// AdminPut sends in to PUT /admin/<endpoint>
func (m *Manager) AdminPut(ctx context.Context, endpoint string, in, out any) error {
	return m.adminDo(ctx, http.MethodPut, endpoint, in, out)
}

// AdminDelete issues DELETE /admin/<endpoint>
func (m *Manager) AdminDelete(ctx context.Context, endpoint string) error {
	return m.adminDo(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (m *Manager) adminDo(ctx context.Context, method, endpoint string, in, out any) error {
	if !m.IsAuthenticated() {
		return client.ErrNotAuthenticated
	}

	path := adminBasePath + strings.TrimLeft(endpoint, "/")
	err := m.client.Do(ctx, method, path, in, out)
	if err == nil {
		return nil
	}
	if client.IsAuthFailure(err) {
		slog.Warn("Admin request rejected, logging out", "method", method, "path", path, "error", err)
		m.Logout()
	}
	return fmt.Errorf("%s %s: %w", method, path, err)
}
