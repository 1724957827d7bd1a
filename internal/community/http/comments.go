package http

import (
	"encoding/json"
	"net/http"

	"github.com/commonhall/commonhall/internal/community/service"
	"github.com/commonhall/commonhall/pkg/httpx"
	"github.com/commonhall/commonhall/pkg/residentsdk"
	"github.com/commonhall/commonhall/pkg/slogx"
)

// CommentsHandler handles comments under a post.
type CommentsHandler struct {
	InteractionService *service.InteractionService
}

// HandleList handles GET /v1/posts/{id}/comments
//
//	@Summary		List Comments
//	@Description	Returns a post's comments oldest first with author nickname/floor projections. Gated like the post itself.
//	@Tags			Comments
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string							true	"Post ID (ULID)"
//	@Success		200	{object}	residentsdk.ListCommentsResponse	"The comment thread"
//	@Failure		401	{object}	residentsdk.APIError				"error, error_description"
//	@Failure		403	{object}	residentsdk.APIError				"not_verified or wrong_building"
//	@Failure		404	{object}	residentsdk.APIError				"error, error_description"
//	@Failure		500	{object}	residentsdk.APIError				"error, error_description"
//	@Router			/v1/posts/{id}/comments [get].
func (h *CommentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)
	postID := r.PathValue("id")

	comments, err := h.InteractionService.ListComments(ctx, userID, postID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	infos := make([]residentsdk.CommentInfo, len(comments))
	for i, c := range comments {
		infos[i] = toCommentInfo(c)
	}

	httpx.WriteJSON(w, http.StatusOK, residentsdk.ListCommentsResponse{Comments: infos})
}

// HandleCreate handles POST /v1/posts/{id}/comments
//
//	@Summary		Add Comment
//	@Description	Appends a comment to a post. The post's comment counter moves in the same transaction as the comment row.
//	@Tags			Comments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Post ID (ULID)"
//	@Param			request	body		residentsdk.CreateCommentRequest	true	"Comment body"
//	@Success		201		{object}	residentsdk.CommentInfo				"The created comment"
//	@Failure		400		{object}	residentsdk.APIError				"error, error_description"
//	@Failure		401		{object}	residentsdk.APIError				"error, error_description"
//	@Failure		403		{object}	residentsdk.APIError				"not_verified or wrong_building"
//	@Failure		404		{object}	residentsdk.APIError				"error, error_description"
//	@Failure		500		{object}	residentsdk.APIError				"error, error_description"
//	@Router			/v1/posts/{id}/comments [post].
func (h *CommentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)
	postID := r.PathValue("id")

	var req residentsdk.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	c, err := h.InteractionService.AddComment(ctx, userID, postID, req.Content)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCommentInfo(c))
}
