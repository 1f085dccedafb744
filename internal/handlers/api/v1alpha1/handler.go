// Package v1alpha1 exposes the warband service over HTTP/JSON
package v1alpha1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KirkDiggler/warband-api/internal/clients/catalog"
	"github.com/KirkDiggler/warband-api/internal/engine"
	"github.com/KirkDiggler/warband-api/internal/entities/weirdos"
	"github.com/KirkDiggler/warband-api/internal/errors"
	warbandsvc "github.com/KirkDiggler/warband-api/internal/services/warband"
)

// Handler serves the v1alpha1 JSON API.
type Handler struct {
	warbandService warbandsvc.Service
	catalog        catalog.Client
}

// HandlerConfig holds the dependencies for the handler
type HandlerConfig struct {
	WarbandService warbandsvc.Service
	Catalog        catalog.Client
}

// Validate ensures all required dependencies are provided
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.WarbandService == nil {
		vb.RequiredField("WarbandService")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

// NewHandler creates a new API handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		warbandService: cfg.WarbandService,
		catalog:        cfg.Catalog,
	}, nil
}

// Register mounts every route under /api/v1alpha1.
func (h *Handler) Register(r *mux.Router) {
	api := r.PathPrefix("/api/v1alpha1").Subrouter()

	api.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	api.HandleFunc("/warbands", h.createWarband).Methods(http.MethodPost)
	api.HandleFunc("/warbands", h.listWarbands).Methods(http.MethodGet)
	api.HandleFunc("/warbands/{id}", h.getWarband).Methods(http.MethodGet)
	api.HandleFunc("/warbands/{id}", h.updateWarband).Methods(http.MethodPut)
	api.HandleFunc("/warbands/{id}", h.deleteWarband).Methods(http.MethodDelete)
	api.HandleFunc("/warbands/{id}/validation", h.validateWarband).Methods(http.MethodGet)
	api.HandleFunc("/warbands/{id}/cost", h.warbandCost).Methods(http.MethodGet)

	api.HandleFunc("/validate", h.validateSnapshot).Methods(http.MethodPost)
	api.HandleFunc("/weirdo-cost", h.weirdoCost).Methods(http.MethodPost)

	api.HandleFunc("/catalog/weapons", h.listWeapons).Methods(http.MethodGet)
	api.HandleFunc("/catalog/equipment", h.listEquipment).Methods(http.MethodGet)
	api.HandleFunc("/catalog/abilities", h.listAbilities).Methods(http.MethodGet)
	api.HandleFunc("/catalog/traits", h.listTraits).Methods(http.MethodGet)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// createWarbandRequest is the POST /warbands payload.
type createWarbandRequest struct {
	Name       string           `json:"name"`
	PointLimit int32            `json:"point_limit"`
	Ability    weirdos.Ability  `json:"ability,omitempty"`
	Weirdos    []weirdos.Weirdo `json:"weirdos,omitempty"`
}

// warbandResponse pairs a warband with its validation state.
type warbandResponse struct {
	Warband    *weirdos.Warband            `json:"warband"`
	Validation *warbandsvc.ValidationState `json:"validation,omitempty"`
}

func (h *Handler) createWarband(w http.ResponseWriter, r *http.Request) {
	var req createWarbandRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.warbandService.CreateWarband(r.Context(), &warbandsvc.CreateWarbandInput{
		Name:       req.Name,
		PointLimit: req.PointLimit,
		Ability:    req.Ability,
		Weirdos:    req.Weirdos,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, warbandResponse{
		Warband:    out.Warband,
		Validation: out.Validation,
	})
}

func (h *Handler) listWarbands(w http.ResponseWriter, r *http.Request) {
	out, err := h.warbandService.ListWarbands(r.Context(), &warbandsvc.ListWarbandsInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"warbands": out.Warbands})
}

func (h *Handler) getWarband(w http.ResponseWriter, r *http.Request) {
	out, err := h.warbandService.GetWarband(r.Context(), &warbandsvc.GetWarbandInput{
		WarbandID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, warbandResponse{
		Warband:    out.Warband,
		Validation: out.Validation,
	})
}

func (h *Handler) updateWarband(w http.ResponseWriter, r *http.Request) {
	var wb weirdos.Warband
	if !decodeJSON(w, r, &wb) {
		return
	}
	// The path is authoritative for identity.
	wb.ID = mux.Vars(r)["id"]

	out, err := h.warbandService.UpdateWarband(r.Context(), &warbandsvc.UpdateWarbandInput{
		Warband: &wb,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, warbandResponse{
		Warband:    out.Warband,
		Validation: out.Validation,
	})
}

func (h *Handler) deleteWarband(w http.ResponseWriter, r *http.Request) {
	_, err := h.warbandService.DeleteWarband(r.Context(), &warbandsvc.DeleteWarbandInput{
		WarbandID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) validateWarband(w http.ResponseWriter, r *http.Request) {
	out, err := h.warbandService.ValidateWarband(r.Context(), &warbandsvc.ValidateWarbandInput{
		WarbandID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Validation)
}

func (h *Handler) warbandCost(w http.ResponseWriter, r *http.Request) {
	out, err := h.warbandService.ComputeWarbandCost(r.Context(), &warbandsvc.ComputeWarbandCostInput{
		WarbandID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":        out.Total,
		"weirdo_costs": out.WeirdoCosts,
	})
}

func (h *Handler) validateSnapshot(w http.ResponseWriter, r *http.Request) {
	var wb weirdos.Warband
	if !decodeJSON(w, r, &wb) {
		return
	}

	out, err := h.warbandService.ValidateSnapshot(r.Context(), &warbandsvc.ValidateSnapshotInput{
		Warband: &wb,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Validation)
}

// weirdoCostRequest is the POST /weirdo-cost payload.
type weirdoCostRequest struct {
	Weirdo  *weirdos.Weirdo `json:"weirdo"`
	Ability weirdos.Ability `json:"ability,omitempty"`
}

func (h *Handler) weirdoCost(w http.ResponseWriter, r *http.Request) {
	var req weirdoCostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.warbandService.ComputeWeirdoCost(r.Context(), &warbandsvc.ComputeWeirdoCostInput{
		Weirdo:  req.Weirdo,
		Ability: req.Ability,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, engine.WeirdoCost{
		WeirdoID:  weirdoID(req.Weirdo),
		Cost:      out.Cost,
		Breakdown: out.Breakdown,
	})
}

func (h *Handler) listWeapons(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"weapons": h.catalog.ListWeapons()})
}

func (h *Handler) listEquipment(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"equipment": h.catalog.ListEquipment()})
}

func (h *Handler) listAbilities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"abilities": weirdos.Abilities})
}

func (h *Handler) listTraits(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"traits": weirdos.LeaderTraits})
}

func weirdoID(w *weirdos.Weirdo) string {
	if w == nil {
		return ""
	}
	return w.ID
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == errors.CodeInternal {
		slog.Error("internal error", "error", err)
	}
	writeJSON(w, code.HTTPStatus(), errorResponse{
		Code:    code.String(),
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	})
}

// decodeJSON parses the request body, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeError(w, errors.InvalidArgumentf("invalid request body: %v", err))
		return false
	}
	return true
}
