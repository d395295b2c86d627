package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/openpoen/backend/internal/httperror"
	"github.com/openpoen/backend/internal/models"
	"github.com/rs/zerolog/log"
)

const userKey = "poen-user"

// Middleware authenticates the request with the bearer token in the
// Authorization header and stores the user in the context. Requests without
// a valid token for an active user are aborted with 401.
func Middleware(tokens Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(ErrUnauthenticated))
			return
		}

		id, err := tokens.ParseUserToken(token)
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("Bearer token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(err))
			return
		}

		var user models.User
		err = models.DB.First(&user, id).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(ErrUnauthenticated))
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperror.New(err))
			return
		}

		if !user.Active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(ErrUserInactive))
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// User returns the user authenticated by Middleware.
func User(c *gin.Context) models.User {
	user, _ := c.Get(userKey)
	u, _ := user.(models.User)
	return u
}
