package http

import (
	"net/http"

	"github.com/commonhall/commonhall/internal/community/service"
	"github.com/commonhall/commonhall/pkg/httpx"
	"github.com/commonhall/commonhall/pkg/residentsdk"
	"github.com/commonhall/commonhall/pkg/slogx"
)

// EnsureProfileMiddleware creates the caller's membership profile on first
// sight. Signup itself belongs to the identity provider; this is the point
// where a new resident's row appears here. Runs after AuthnMiddleware so the
// verified claims are already in the context.
func EnsureProfileMiddleware(ps *service.ProfileService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			userID := httpx.UserIDFromContext(ctx)
			if userID == "" {
				residentsdk.ErrServerError.WriteError(w)
				return
			}
			email := httpx.EmailFromContext(ctx)
			nickname := httpx.NicknameFromContext(ctx)

			if _, err := ps.EnsureProfile(ctx, userID, email, nickname); err != nil {
				log.Error("failed to ensure profile", "error", err, "user_id", userID)
				residentsdk.ErrUpstreamError.WriteError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
