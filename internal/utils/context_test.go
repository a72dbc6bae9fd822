package utils

import (
	"context"
	"testing"

	"github.com/readreview/book-stack/models"
	"github.com/stretchr/testify/assert"
)

// TestGetAuthUserFromContext_Present verifies retrieval of a stored identity.
func TestGetAuthUserFromContext_Present(t *testing.T) {
	want := models.AuthUser{UserID: 7, Email: "a@b.com", Username: "abc"}
	ctx := context.WithValue(context.Background(), AuthUserCtxKey, want)

	got, ok := GetAuthUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

// TestGetAuthUserFromContext_Missing verifies the ok flag when no identity
// was attached.
func TestGetAuthUserFromContext_Missing(t *testing.T) {
	_, ok := GetAuthUserFromContext(context.Background())
	assert.False(t, ok)
}

// TestGetAuthUserFromContext_WrongType verifies the ok flag when the stored
// value has an unexpected type.
func TestGetAuthUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AuthUserCtxKey, int64(42))

	_, ok := GetAuthUserFromContext(ctx)
	assert.False(t, ok)
}
