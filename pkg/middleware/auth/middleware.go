package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tripal/tripal-blast/internal/config"
	"github.com/tripal/tripal-blast/pkg/common"
	"github.com/tripal/tripal-blast/pkg/common/code"
	"github.com/tripal/tripal-blast/pkg/middleware/logger"
	"github.com/tripal/tripal-blast/pkg/repo"
	"github.com/tripal/tripal-blast/pkg/repo/model"
	"github.com/tripal/tripal-blast/pkg/utils"
)

type AuthType string

const AuthTypeBearer AuthType = "Bearer"

type AuthFunc func(ctx *gin.Context, token string) *model.User

func AuthWeb(users repo.UserRepo) gin.HandlerFunc {
	return Auth(map[AuthType]AuthFunc{
		AuthTypeBearer: getBearerUser(users, config.Global().Auth.JWTSecret),
	})
}

func Auth(authFuncMap map[AuthType]AuthFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		cookie, _ := ctx.Cookie("access_token")
		authHeader := utils.Or(cookie, ctx.Query("access_token"), ctx.GetHeader("Authorization"))
		if authHeader == "" {
			abort(ctx, code.UnLogin)
			return
		}
		tokens := strings.SplitN(authHeader, " ", 2)
		if len(tokens) != 2 {
			abort(ctx, code.LoginFormatErr)
			return
		}
		var user *model.User
		if f, ok := authFuncMap[AuthType(tokens[0])]; ok {
			user = f(ctx, tokens[1])
		}
		if user == nil {
			abort(ctx, code.InvalidToken)
			return
		}
		ctx.Set(USERKEY, user)
		ctx.Request = ctx.Request.WithContext(WithUser(ctx.Request.Context(), user))
		ctx.Next()
	}
}

func abort(ctx *gin.Context, c code.ErrCode) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, &common.Resp{
		Code:  c,
		Error: &common.Error{Msg: c.String()},
	})
}

func getBearerUser(users repo.UserRepo, secret string) AuthFunc {
	return func(ctx *gin.Context, token string) *model.User {
		claims, err := utils.ParseJWT(token, secret)
		if err != nil {
			logger.Errorf(ctx, "getBearerUser parse jwt token err: %v", err)
			return nil
		}
		user, err := users.GetUserByID(ctx, claims.UID)
		if err != nil {
			logger.Errorf(ctx, "getBearerUser load user %d err: %+v", claims.UID, err)
			return nil
		}
		if !user.Status {
			return nil
		}
		return user
	}
}
