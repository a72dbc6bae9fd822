package service

import (
	"github.com/readreview/book-stack/internal/adapter"
	"github.com/readreview/book-stack/internal/logger"
)

// ClientServices aggregates the client-side business services consumed by
// the terminal UI.
type ClientServices struct {
	AuthService    ClientAuthService
	CatalogService ClientCatalogService
}

// NewClientServices wires the client services on top of a single
// [adapter.ServerAdapter], which also holds the session token shared by both
// services.
func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, logger),
		CatalogService: NewClientCatalogService(serverAdapter, logger),
	}
}
