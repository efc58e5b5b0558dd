package middleware

import (
	"context"
	"net/http"
	"net/url"

	"blog-server/internal/consts"
	"blog-server/internal/model"
	"blog-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// SessionResolver 将会话 Cookie 解析为当前用户；令牌无效、已吊销或用户不存在时返回 false
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*model.User, *utils.SessionClaims, bool)
}

// SessionAuth 解析会话 Cookie 并把当前用户写入上下文，从不拦截请求
func SessionAuth(cookieName string, resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, claims, ok := resolver.ResolveSession(c.Request.Context(), token)
		if ok {
			c.Set(consts.ContextUserKey, user)
			c.Set(consts.ContextSessionKey, claims)
		}
		c.Next()
	}
}

// LoginRequired 未登录时重定向到登录页，并通过 next 参数带上原始路径
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			target := consts.LoginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired 需在 LoginRequired 之后使用，非管理员返回 403
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin() {
			c.String(http.StatusForbidden, "403 Forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(consts.ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok && user != nil
}

func CurrentSession(c *gin.Context) (*utils.SessionClaims, bool) {
	value, exists := c.Get(consts.ContextSessionKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*utils.SessionClaims)
	return claims, ok && claims != nil
}
