package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	"github.com/dcdesk/dcdesk/application/usecase/challan"
	"github.com/dcdesk/dcdesk/application/usecase/catalog"
	"github.com/dcdesk/dcdesk/domain/entity"
	"github.com/dcdesk/dcdesk/infrastructure/http/middleware"
	"github.com/dcdesk/dcdesk/infrastructure/http/response"
	"github.com/dcdesk/dcdesk/infrastructure/service/logger"
)

type DraftChallanHandler struct {
	drafts inbound.DraftChallanUseCase
	log    logger.Logger
}

func NewDraftChallanHandler(drafts inbound.DraftChallanUseCase, log logger.Logger) *DraftChallanHandler {
	return &DraftChallanHandler{drafts: drafts, log: log}
}

func (h *DraftChallanHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := h.drafts.List(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list draft challans")
		return
	}
	response.Success(w, http.StatusOK, "Draft challans retrieved", result)
}

func (h *DraftChallanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}

	draft, err := h.drafts.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, challan.ErrDraftNotFound) {
			response.NotFound(w, "Draft challan not found")
			return
		}
		response.InternalServerError(w, "Failed to fetch draft challan")
		return
	}
	response.Success(w, http.StatusOK, "Draft challan retrieved", draft)
}

func (h *DraftChallanHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		response.Unauthorized(w, "No token provided")
		return
	}

	var req inbound.CreateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	draft, err := h.drafts.Create(r.Context(), claims.ID, req)
	if err != nil {
		writeDraftError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "Draft challan created", draft)
}

func (h *DraftChallanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}

	var req inbound.UpdateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	draft, err := h.drafts.Update(r.Context(), id, req)
	if err != nil {
		writeDraftError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "Draft challan updated", draft)
}

func (h *DraftChallanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}

	if err := h.drafts.Delete(r.Context(), id); err != nil {
		if errors.Is(err, challan.ErrDraftNotFound) {
			response.NotFound(w, "Draft challan not found")
			return
		}
		response.InternalServerError(w, "Failed to delete draft challan")
		return
	}
	response.Success(w, http.StatusOK, "Draft challan deleted", nil)
}

func draftID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid draft id")
		return 0, false
	}
	return id, true
}

func writeDraftError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, challan.ErrDraftNotFound):
		response.NotFound(w, "Draft challan not found")
	case errors.Is(err, catalog.ErrSupplierNotFound):
		response.UnprocessableEntity(w, "Supplier does not exist")
	case errors.Is(err, entity.ErrInvalidStatus),
		errors.Is(err, entity.ErrNegativeQty):
		response.UnprocessableEntity(w, err.Error())
	default:
		response.InternalServerError(w, "Operation failed")
	}
}
