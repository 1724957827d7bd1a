package http

import (
	"encoding/json"
	"net/http"

	"github.com/commonhall/commonhall/internal/community/service"
	"github.com/commonhall/commonhall/pkg/httpx"
	"github.com/commonhall/commonhall/pkg/residentsdk"
	"github.com/commonhall/commonhall/pkg/slogx"
)

// BuildingsHandler handles the building directory endpoints.
type BuildingsHandler struct {
	BuildingService *service.BuildingService
}

// HandleList handles GET /v1/buildings
//
//	@Summary		List Buildings
//	@Description	Returns the building directory ordered by name. Available to any authenticated resident, verified or not, since choosing a building is the first step of verification.
//	@Tags			Buildings
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	residentsdk.ListBuildingsResponse	"Building directory"
//	@Failure		401	{object}	residentsdk.APIError				"error, error_description"
//	@Failure		500	{object}	residentsdk.APIError				"error, error_description"
//	@Router			/v1/buildings [get].
func (h *BuildingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	buildings, err := h.BuildingService.ListBuildings(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	infos := make([]residentsdk.BuildingInfo, len(buildings))
	for i, b := range buildings {
		infos[i] = toBuildingInfo(b)
	}

	httpx.WriteJSON(w, http.StatusOK, residentsdk.ListBuildingsResponse{Buildings: infos})
}

// HandleCreate handles POST /v1/buildings
//
//	@Summary		Register Building
//	@Description	Registers a new building in the directory. Name and address are trimmed; a case-insensitive duplicate of an existing (name, address) pair is rejected.
//	@Tags			Buildings
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		residentsdk.CreateBuildingRequest	true	"Building registration"
//	@Success		201		{object}	residentsdk.BuildingInfo			"The registered building"
//	@Failure		400		{object}	residentsdk.APIError				"error, error_description"
//	@Failure		401		{object}	residentsdk.APIError				"error, error_description"
//	@Failure		409		{object}	residentsdk.APIError				"error, error_description"
//	@Failure		500		{object}	residentsdk.APIError				"error, error_description"
//	@Router			/v1/buildings [post].
func (h *BuildingsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req residentsdk.CreateBuildingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	b, err := h.BuildingService.CreateBuilding(ctx, req.Name, req.Address)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toBuildingInfo(b))
}
