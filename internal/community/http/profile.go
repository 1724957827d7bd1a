package http

import (
	"encoding/json"
	"net/http"

	"github.com/commonhall/commonhall/internal/community/service"
	"github.com/commonhall/commonhall/pkg/httpx"
	"github.com/commonhall/commonhall/pkg/residentsdk"
	"github.com/commonhall/commonhall/pkg/slogx"
)

// ProfileHandler handles the caller's own membership profile.
type ProfileHandler struct {
	ProfileService *service.ProfileService
}

// HandleGet handles GET /v1/profile
//
//	@Summary		Get Profile
//	@Description	Returns the caller's membership profile including residency fields.
//	@Tags			Profile
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	residentsdk.ProfileResponse	"The caller's profile"
//	@Failure		401	{object}	residentsdk.APIError		"error, error_description"
//	@Failure		500	{object}	residentsdk.APIError		"error, error_description"
//	@Router			/v1/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)

	p, err := h.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(p))
}

// HandleUpdate handles PATCH /v1/profile
//
//	@Summary		Update Profile
//	@Description	Changes the caller's nickname. Residency fields are only ever changed by the verification workflow.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		residentsdk.UpdateProfileRequest	true	"Profile changes"
//	@Success		200		{object}	residentsdk.ProfileResponse			"The updated profile"
//	@Failure		400		{object}	residentsdk.APIError				"error, error_description"
//	@Failure		401		{object}	residentsdk.APIError				"error, error_description"
//	@Failure		500		{object}	residentsdk.APIError				"error, error_description"
//	@Router			/v1/profile [patch].
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)

	var req residentsdk.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	p, err := h.ProfileService.UpdateNickname(ctx, userID, req.Nickname)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(p))
}
