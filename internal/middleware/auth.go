package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const userKey = "user"

type TokenParser interface {
	Parse(token string) (string, error)
}

type UserLoader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth resolves the caller from the Authorization header and stores the
// freshly loaded user in the request context. The header may hold the bare
// token or a "Bearer <token>" value.
func Auth(tokens TokenParser, users UserLoader, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortNotAuthorized(c)
			return
		}

		userID, err := tokens.Parse(token)
		if err != nil {
			log.Debug("token rejected", logger.String("error", err.Error()))
			abortNotAuthorized(c)
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			log.Warn("authenticated user not loaded",
				logger.String("user_id", userID),
				logger.String("error", err.Error()),
			)
			abortNotAuthorized(c)
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

func SetCurrentUser(c *ginext.Context, user *domain.User) {
	c.Set(userKey, user)
}

// CurrentUser returns the user stored by Auth.
func CurrentUser(c *ginext.Context) (*domain.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok && user != nil
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

func abortNotAuthorized(c *ginext.Context) {
	c.AbortWithStatusJSON(http.StatusOK, ginext.H{
		"success": false,
		"message": domain.ErrNotAuthorized.Error(),
	})
}
