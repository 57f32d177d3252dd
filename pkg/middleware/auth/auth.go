package auth

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/tripal/tripal-blast/pkg/repo/model"
)

var USERKEY = "AUTH_USER_KEY"

type userContextKey struct{}

// WithUser returns a context acting as user.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetCurrentUser returns the acting user of ctx, or nil when nobody is logged in.
func GetCurrentUser(ctx context.Context) *model.User {
	if gCtx, ok := ctx.(*gin.Context); ok {
		if user, exists := gCtx.Get(USERKEY); exists {
			if u, ok := user.(*model.User); ok {
				return u
			}
		}
		if gCtx.Request == nil {
			return nil
		}
		ctx = gCtx.Request.Context()
	}
	u, _ := ctx.Value(userContextKey{}).(*model.User)
	return u
}
