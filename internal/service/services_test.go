package service

import (
	"testing"

	"github.com/readreview/book-stack/internal/config"
	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewServices takes the config by value while GetStructuredConfig hands out
// a pointer, so this mirrors the dereference the server entry point does.
func TestNewServices(t *testing.T) {
	cfg := &config.StructuredConfig{App: config.App{TokenSignKey: "test-key"}}

	services := NewServices(&store.Storages{}, *cfg, logger.Nop())
	require.NotNil(t, services)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.BookService)
	assert.NotNil(t, services.ReviewService)
	assert.NotNil(t, services.UserService)
}
