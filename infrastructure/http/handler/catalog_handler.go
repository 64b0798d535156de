package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	"github.com/dcdesk/dcdesk/application/usecase/catalog"
	"github.com/dcdesk/dcdesk/infrastructure/http/response"
	"github.com/dcdesk/dcdesk/infrastructure/service/logger"
)

type CatalogHandler struct {
	catalog inbound.CatalogUseCase
	log     logger.Logger
}

func NewCatalogHandler(catalogUC inbound.CatalogUseCase, log logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalogUC, log: log}
}

func (h *CatalogHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.catalog.ListSuppliers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list suppliers")
		return
	}
	response.Success(w, http.StatusOK, "Suppliers retrieved", suppliers)
}

func (h *CatalogHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req inbound.SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	supplier, err := h.catalog.CreateSupplier(r.Context(), req)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "Supplier created", supplier)
}

func (h *CatalogHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := catalogID(w, r)
	if !ok {
		return
	}

	var req inbound.SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	supplier, err := h.catalog.UpdateSupplier(r.Context(), id, req)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "Supplier updated", supplier)
}

func (h *CatalogHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := catalogID(w, r)
	if !ok {
		return
	}

	if err := h.catalog.DeleteSupplier(r.Context(), id); err != nil {
		writeCatalogError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "Supplier deleted", nil)
}

func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListItems(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list items")
		return
	}
	response.Success(w, http.StatusOK, "Items retrieved", items)
}

func (h *CatalogHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req inbound.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	item, err := h.catalog.CreateItem(r.Context(), req)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "Item created", item)
}

func (h *CatalogHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := catalogID(w, r)
	if !ok {
		return
	}

	var req inbound.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	item, err := h.catalog.UpdateItem(r.Context(), id, req)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "Item updated", item)
}

func (h *CatalogHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := catalogID(w, r)
	if !ok {
		return
	}

	if err := h.catalog.DeleteItem(r.Context(), id); err != nil {
		writeCatalogError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "Item deleted", nil)
}

func catalogID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid id")
		return 0, false
	}
	return id, true
}

func writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrSupplierNotFound):
		response.NotFound(w, "Supplier not found")
	case errors.Is(err, catalog.ErrItemNotFound):
		response.NotFound(w, "Item not found")
	case errors.Is(err, catalog.ErrNameRequired):
		response.UnprocessableEntity(w, err.Error())
	default:
		response.InternalServerError(w, "Operation failed")
	}
}
