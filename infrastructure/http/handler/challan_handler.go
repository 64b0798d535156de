package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	"github.com/dcdesk/dcdesk/application/usecase/challan"
	"github.com/dcdesk/dcdesk/domain/entity"
	"github.com/dcdesk/dcdesk/infrastructure/http/middleware"
	"github.com/dcdesk/dcdesk/infrastructure/http/response"
	"github.com/dcdesk/dcdesk/infrastructure/service/logger"
)

type ChallanHandler struct {
	challans inbound.ChallanUseCase
	log      logger.Logger
}

func NewChallanHandler(challans inbound.ChallanUseCase, log logger.Logger) *ChallanHandler {
	return &ChallanHandler{challans: challans, log: log}
}

func (h *ChallanHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	req := inbound.ListChallansRequest{
		Status: entity.ChallanStatus(q.Get("status")),
		Search: q.Get("search"),
		Page:   page,
		Limit:  limit,
	}

	result, err := h.challans.List(r.Context(), req)
	if err != nil {
		response.InternalServerError(w, "Failed to list delivery challans")
		return
	}
	response.Success(w, http.StatusOK, "Delivery challans retrieved", result)
}

func (h *ChallanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	dc, err := h.challans.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, challan.ErrChallanNotFound) {
			response.NotFound(w, "Delivery challan not found")
			return
		}
		response.InternalServerError(w, "Failed to fetch delivery challan")
		return
	}
	response.Success(w, http.StatusOK, "Delivery challan retrieved", dc)
}

func (h *ChallanHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		response.Unauthorized(w, "No token provided")
		return
	}

	var req inbound.CreateChallanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	dc, err := h.challans.Create(r.Context(), claims.ID, req)
	if err != nil {
		writeChallanError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "Delivery challan created", dc)
}

func (h *ChallanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req inbound.UpdateChallanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	dc, err := h.challans.Update(r.Context(), id, req)
	if err != nil {
		writeChallanError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "Delivery challan updated", dc)
}

// UpdateStatus is the lightweight status-only transition used by the
// dashboard list view.
func (h *ChallanHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Status entity.ChallanStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	dc, err := h.challans.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		writeChallanError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "Status updated", dc)
}

func (h *ChallanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.challans.Delete(r.Context(), id); err != nil {
		if errors.Is(err, challan.ErrChallanNotFound) {
			response.NotFound(w, "Delivery challan not found")
			return
		}
		response.InternalServerError(w, "Failed to delete delivery challan")
		return
	}
	response.Success(w, http.StatusOK, "Delivery challan deleted", nil)
}

func writeChallanError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, challan.ErrChallanNotFound):
		response.NotFound(w, "Delivery challan not found")
	case errors.Is(err, challan.ErrDuplicateNumber):
		response.Conflict(w, err.Error())
	case errors.Is(err, entity.ErrInvalidStatus),
		errors.Is(err, entity.ErrNegativeQty),
		errors.Is(err, entity.ErrMissingDCNumber):
		response.UnprocessableEntity(w, err.Error())
	default:
		response.InternalServerError(w, "Operation failed")
	}
}
