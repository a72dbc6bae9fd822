package utils

import (
	"testing"
	"time"

	"github.com/readreview/book-stack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "book-stack-test"
	testSignKey = "test-sign-key"
)

var testAuthUser = models.AuthUser{
	UserID:   42,
	Email:    "thomas@dev.com",
	Username: "thomas",
}

// TestGenerateJWTToken_Success verifies that a token is generated with all
// identity claims populated.
func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testAuthUser, time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, "thomas@dev.com", token.Claims.Email)
	assert.Equal(t, "thomas", token.Claims.Username)
	assert.Equal(t, "42", token.Claims.Subject)
}

// TestGenerateJWTToken_InvalidParams verifies that empty issuer, zero
// duration, and empty sign key are each rejected.
func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken("", testAuthUser, time.Hour, testSignKey)
	assert.Error(t, err)

	_, err = GenerateJWTToken(testIssuer, testAuthUser, 0, testSignKey)
	assert.Error(t, err)

	_, err = GenerateJWTToken(testIssuer, testAuthUser, time.Hour, "")
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_RoundTrip verifies that a freshly issued
// token validates and yields the original identity claims.
func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testAuthUser, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "thomas@dev.com", parsed.Claims.Email)
	assert.Equal(t, "thomas", parsed.Claims.Username)
}

// TestValidateAndParseJWTToken_WrongKey verifies that a token signed with a
// different key is rejected.
func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testAuthUser, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "another-key", testIssuer)
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_WrongIssuer verifies that the issuer claim is
// enforced during validation.
func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testAuthUser, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, "other-issuer")
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_Expired verifies that an expired token fails
// validation.
func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testAuthUser, time.Nanosecond, testSignKey)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

// TestParseBearerToken verifies bearer header parsing for valid and
// malformed inputs.
func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("Bearer")
	assert.Error(t, err)

	_, err = ParseBearerToken("")
	assert.Error(t, err)
}

// TestParseIdentityFromJWT verifies that identity claims are recovered
// without signature verification.
func TestParseIdentityFromJWT(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testAuthUser, time.Hour, testSignKey)
	require.NoError(t, err)

	identity, err := ParseIdentityFromJWT(issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, testAuthUser, identity)
}
