package http

import (
	"net/http"

	"github.com/commonhall/commonhall/internal/community/service"
	"github.com/commonhall/commonhall/pkg/httpx"
	"github.com/commonhall/commonhall/pkg/residentsdk"
	"github.com/commonhall/commonhall/pkg/slogx"
)

// LikesHandler handles the like toggle.
type LikesHandler struct {
	InteractionService *service.InteractionService
}

// HandleToggle handles POST /v1/posts/{id}/like
//
//	@Summary		Toggle Like
//	@Description	Flips the caller's like on a post and returns the resulting state and counter. Toggling twice returns to the original state.
//	@Tags			Likes
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string							true	"Post ID (ULID)"
//	@Success		200	{object}	residentsdk.ToggleLikeResponse	"Like state after the toggle"
//	@Failure		401	{object}	residentsdk.APIError			"error, error_description"
//	@Failure		403	{object}	residentsdk.APIError			"not_verified or wrong_building"
//	@Failure		404	{object}	residentsdk.APIError			"error, error_description"
//	@Failure		500	{object}	residentsdk.APIError			"error, error_description"
//	@Router			/v1/posts/{id}/like [post].
func (h *LikesHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)
	postID := r.PathValue("id")

	liked, likes, err := h.InteractionService.ToggleLike(ctx, userID, postID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, residentsdk.ToggleLikeResponse{
		Liked:      liked,
		LikesCount: likes,
	})
}
