package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID   ctxKey = "user_id"
	CtxKeyScopes   ctxKey = "scopes"
	CtxKeyEmail    ctxKey = "email"
	CtxKeyNickname ctxKey = "nickname"
	CtxKeyClaims   ctxKey = "claims" // if you want full jwtx.Claims
)

// UserIDFromContext returns the authenticated user id, or "" when the
// request never went through AuthnMiddleware.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// EmailFromContext returns the authenticated email claim, if any.
func EmailFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyEmail).(string); ok {
		return v
	}
	return ""
}

// NicknameFromContext returns the nickname claim, if any.
func NicknameFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyNickname).(string); ok {
		return v
	}
	return ""
}

func scopesFromCtx(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyScopes).([]string); ok {
		return v
	}
	return nil
}
