package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	usermgmt "github.com/dcdesk/dcdesk/application/usecase/user_management"
	"github.com/dcdesk/dcdesk/domain/entity"
	"github.com/dcdesk/dcdesk/infrastructure/http/middleware"
	"github.com/dcdesk/dcdesk/infrastructure/http/response"
	"github.com/dcdesk/dcdesk/infrastructure/service/logger"
)

type UserManagementHandler struct {
	userMgmt inbound.UserManagementUseCase
	log      logger.Logger
}

func NewUserManagementHandler(userMgmt inbound.UserManagementUseCase, log logger.Logger) *UserManagementHandler {
	return &UserManagementHandler{userMgmt: userMgmt, log: log}
}

// CreateUser creates an identity on behalf of the authenticated actor. The
// use case enforces that admins can only create user-role identities.
func (h *UserManagementHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		response.Unauthorized(w, "No token provided")
		return
	}

	var req inbound.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	user, err := h.userMgmt.CreateUser(r.Context(), claims.Role, req)
	if err != nil {
		writeUserMgmtError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "User created", user)
}

func (h *UserManagementHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	req := inbound.ListUsersRequest{
		Page:  page,
		Limit: limit,
		Name:  q.Get("name"),
		Role:  entity.Role(q.Get("role")),
	}

	result, err := h.userMgmt.ListUsers(r.Context(), req)
	if err != nil {
		response.InternalServerError(w, "Failed to list users")
		return
	}
	response.Success(w, http.StatusOK, "Users retrieved", result)
}

func (h *UserManagementHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := h.userMgmt.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, usermgmt.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to fetch user")
		return
	}
	response.Success(w, http.StatusOK, "User retrieved", user)
}

func (h *UserManagementHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req inbound.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	user, err := h.userMgmt.UpdateUser(r.Context(), id, req)
	if err != nil {
		writeUserMgmtError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "User updated", user)
}

func (h *UserManagementHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.userMgmt.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, usermgmt.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to delete user")
		return
	}
	response.Success(w, http.StatusOK, "User deleted", nil)
}

func writeUserMgmtError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usermgmt.ErrInvalidUserID),
		errors.Is(err, usermgmt.ErrInvalidName),
		errors.Is(err, usermgmt.ErrInvalidEmail),
		errors.Is(err, usermgmt.ErrInvalidPassword),
		errors.Is(err, usermgmt.ErrInvalidRole):
		response.UnprocessableEntity(w, err.Error())
	case errors.Is(err, usermgmt.ErrUserIDTaken),
		errors.Is(err, usermgmt.ErrEmailTaken):
		response.Conflict(w, err.Error())
	case errors.Is(err, usermgmt.ErrRoleNotPermitted):
		response.Forbidden(w, err.Error())
	case errors.Is(err, usermgmt.ErrSetupAlreadyDone):
		response.Forbidden(w, "Setup has already been completed")
	case errors.Is(err, usermgmt.ErrUserNotFound):
		response.NotFound(w, "User not found")
	default:
		response.InternalServerError(w, "Operation failed")
	}
}
