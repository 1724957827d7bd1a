package http

import (
	"encoding/json"
	"net/http"

	"github.com/commonhall/commonhall/internal/community/domain"
	"github.com/commonhall/commonhall/internal/community/service"
	"github.com/commonhall/commonhall/pkg/httpx"
	"github.com/commonhall/commonhall/pkg/residentsdk"
	"github.com/commonhall/commonhall/pkg/slogx"
)

// PostsHandler handles the board post endpoints. Every operation is scoped to
// the caller's verified building; the building never comes from the request.
type PostsHandler struct {
	PostService        *service.PostService
	InteractionService *service.InteractionService
}

// HandleCreate handles POST /v1/posts
//
//	@Summary		Create Post
//	@Description	Publishes a post on one of the caller's building boards (notice, share, or free). Requires an approved residency.
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		residentsdk.CreatePostRequest	true	"Post body"
//	@Success		201		{object}	residentsdk.PostInfo			"The created post"
//	@Failure		400		{object}	residentsdk.APIError			"error, error_description"
//	@Failure		401		{object}	residentsdk.APIError			"error, error_description"
//	@Failure		403		{object}	residentsdk.APIError			"not_verified"
//	@Failure		500		{object}	residentsdk.APIError			"error, error_description"
//	@Router			/v1/posts [post].
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)

	var req residentsdk.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	p, err := h.PostService.CreatePost(ctx, userID, domain.BoardType(req.BoardType), req.Title, req.Content)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toPostInfo(p, false))
}

// HandleList handles GET /v1/posts
//
//	@Summary		List Posts
//	@Description	Returns the caller's building board, newest first. The optional board query parameter filters to one board.
//	@Tags			Posts
//	@Produce		json
//	@Security		BearerAuth
//	@Param			board	query		string							false	"Board filter: notice | share | free"
//	@Success		200		{object}	residentsdk.ListPostsResponse	"The board listing"
//	@Failure		400		{object}	residentsdk.APIError			"error, error_description"
//	@Failure		401		{object}	residentsdk.APIError			"error, error_description"
//	@Failure		403		{object}	residentsdk.APIError			"not_verified"
//	@Failure		500		{object}	residentsdk.APIError			"error, error_description"
//	@Router			/v1/posts [get].
func (h *PostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)
	board := domain.BoardType(r.URL.Query().Get("board"))

	posts, err := h.PostService.ListPosts(ctx, userID, board)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	infos := make([]residentsdk.PostInfo, len(posts))
	for i, p := range posts {
		infos[i] = toPostInfo(p, false)
	}

	httpx.WriteJSON(w, http.StatusOK, residentsdk.ListPostsResponse{Posts: infos})
}

// HandleGet handles GET /v1/posts/{id}
//
//	@Summary		Get Post
//	@Description	Returns one post with its counters and whether the caller has liked it. Posts from other buildings are denied with wrong_building.
//	@Tags			Posts
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"Post ID (ULID)"
//	@Success		200	{object}	residentsdk.PostInfo	"The post"
//	@Failure		401	{object}	residentsdk.APIError	"error, error_description"
//	@Failure		403	{object}	residentsdk.APIError	"not_verified or wrong_building"
//	@Failure		404	{object}	residentsdk.APIError	"error, error_description"
//	@Failure		500	{object}	residentsdk.APIError	"error, error_description"
//	@Router			/v1/posts/{id} [get].
func (h *PostsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)
	postID := r.PathValue("id")

	p, err := h.PostService.GetPost(ctx, userID, postID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	liked, err := h.InteractionService.HasLiked(ctx, userID, postID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPostInfo(p, liked))
}
