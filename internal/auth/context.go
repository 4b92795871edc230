package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

type tokenKey struct{}

// GetToken returns the bearer token captured by the middleware or empty string.
func GetToken(c *gin.Context) string {
	if v, ok := c.Get("accessToken"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// WithToken stores the caller's bearer token so outbound API calls can forward it.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token stored by WithToken, if any.
func TokenFromContext(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey{}).(string)
	return s
}

// RequestContext returns the request's context carrying the caller's token.
func RequestContext(c *gin.Context) context.Context {
	return WithToken(c.Request.Context(), GetToken(c))
}
