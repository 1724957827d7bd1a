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

// VerificationHandler handles the residency verification workflow endpoints.
type VerificationHandler struct {
	VerificationService *service.VerificationService
}

// HandleSubmit handles POST /v1/verification/requests
//
//	@Summary		Submit Verification Request
//	@Description	Files a residency claim against a building and floor with a supporting document reference. Only one pending request per user; resubmission is allowed after a rejection.
//	@Tags			Verification
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		residentsdk.SubmitVerificationRequest	true	"Residency claim"
//	@Success		201		{object}	residentsdk.VerificationRequestInfo		"The created request (already approved under the auto policy)"
//	@Failure		400		{object}	residentsdk.APIError					"error, error_description"
//	@Failure		401		{object}	residentsdk.APIError					"error, error_description"
//	@Failure		404		{object}	residentsdk.APIError					"error, error_description"
//	@Failure		409		{object}	residentsdk.APIError					"error, error_description"
//	@Failure		500		{object}	residentsdk.APIError					"error, error_description"
//	@Router			/v1/verification/requests [post].
func (h *VerificationHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)

	var req residentsdk.SubmitVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	vr, err := h.VerificationService.Submit(ctx, userID, req.BuildingID, req.Floor, req.DocumentURL)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toRequestInfo(vr))
}

// HandleStatus handles GET /v1/verification/status
//
//	@Summary		Get Verification Status
//	@Description	Returns the caller's residency state: verified building/floor plus the open request, if any. Clients render pending/approved banners from this.
//	@Tags			Verification
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	residentsdk.VerificationStatusResponse	"Residency state"
//	@Failure		401	{object}	residentsdk.APIError					"error, error_description"
//	@Failure		500	{object}	residentsdk.APIError					"error, error_description"
//	@Router			/v1/verification/status [get].
func (h *VerificationHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)

	profile, pending, err := h.VerificationService.Status(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	resp := residentsdk.VerificationStatusResponse{
		Verified: profile.Verified,
		Floor:    profile.Floor,
	}
	if profile.BuildingID != nil {
		resp.BuildingID = *profile.BuildingID
	}
	if pending != nil {
		info := toRequestInfo(*pending)
		resp.PendingRequest = &info
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleListPending handles GET /v1/verification/requests
//
//	@Summary		List Pending Verification Requests
//	@Description	Returns the administrator review queue, oldest first.
//	@Tags			Verification
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string										true	"Bearer token with community:admin scope"
//	@Success		200				{object}	residentsdk.ListVerificationRequestsResponse	"Pending requests"
//	@Failure		401				{object}	residentsdk.APIError							"error, error_description"
//	@Failure		403				{object}	residentsdk.APIError							"error, error_description"
//	@Failure		500				{object}	residentsdk.APIError							"error, error_description"
//	@Router			/v1/verification/requests [get].
func (h *VerificationHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	requests, err := h.VerificationService.ListPending(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	infos := make([]residentsdk.VerificationRequestInfo, len(requests))
	for i, vr := range requests {
		infos[i] = toRequestInfo(vr)
	}

	httpx.WriteJSON(w, http.StatusOK, residentsdk.ListVerificationRequestsResponse{Requests: infos})
}

// HandleReview handles POST /v1/verification/requests/{id}/review
//
//	@Summary		Review Verification Request
//	@Description	Applies an administrator decision to a pending request. Approval atomically marks the resident verified for the claimed building and floor. The first decision stands; reviewing an already-decided request is a conflict.
//	@Tags			Verification
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string									true	"Bearer token with community:admin scope"
//	@Param			id				path		string									true	"Verification request ID (ULID)"
//	@Param			request			body		residentsdk.ReviewVerificationRequest	true	"Decision"
//	@Success		200				{object}	residentsdk.VerificationRequestInfo		"The reviewed request"
//	@Failure		400				{object}	residentsdk.APIError					"error, error_description"
//	@Failure		401				{object}	residentsdk.APIError					"error, error_description"
//	@Failure		403				{object}	residentsdk.APIError					"error, error_description"
//	@Failure		404				{object}	residentsdk.APIError					"error, error_description"
//	@Failure		409				{object}	residentsdk.APIError					"error, error_description"
//	@Failure		500				{object}	residentsdk.APIError					"error, error_description"
//	@Router			/v1/verification/requests/{id}/review [post].
func (h *VerificationHandler) HandleReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	requestID := r.PathValue("id")

	var req residentsdk.ReviewVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	vr, err := h.VerificationService.Review(ctx, requestID, domain.ReviewDecision(req.Decision))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRequestInfo(vr))
}
