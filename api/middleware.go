package api

import (
	"net/http"
	"strings"

	"github.com/Domenick1991/skybooking/internal/auth"
	"github.com/Domenick1991/skybooking/internal/service/users"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const identityKey = "identity"

// Identity is the authenticated caller. IsAdmin comes from the stored user
// record, not from the token, so revoked privileges take effect on the next
// request.
type Identity struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// RequireAuth verifies the bearer credential and re-derives privilege from
// storage. Every rejection is a uniform 401.
func RequireAuth(tokens *auth.Tokens, userSvc users.UserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c)
			return
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortUnauthorized(c)
			return
		}

		user, err := userSvc.GetByID(c.Request.Context(), userID)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(identityKey, Identity{UserID: user.ID, IsAdmin: user.IsAdmin})
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}

func callerIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
