package auth

import (
	"testing"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokens_IssueAndVerify(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	userID := uuid.New()

	token, err := tokens.Issue(userID, false)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := tokens.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokens_VerifyExpired(t *testing.T) {
	tokens := NewTokens("test-secret", -time.Minute)

	token, err := tokens.Issue(uuid.New(), false)
	assert.NoError(t, err)

	got, err := tokens.Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, uuid.Nil, got)
}

func TestTokens_VerifyWrongSecret(t *testing.T) {
	issuer := NewTokens("secret-one", time.Hour)
	verifier := NewTokens("secret-two", time.Hour)

	token, err := issuer.Issue(uuid.New(), true)
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokens_VerifyGarbage(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	for _, raw := range []string{"", "not-a-token", "aa.bb.cc"} {
		_, err := tokens.Verify(raw)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	}
}
