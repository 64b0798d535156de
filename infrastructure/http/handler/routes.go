package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dcdesk/dcdesk/domain/entity"
	"github.com/dcdesk/dcdesk/infrastructure/http/middleware"
	"github.com/dcdesk/dcdesk/infrastructure/http/response"
)

type Router struct {
	Auth      *AuthHandler
	Users     *UserManagementHandler
	Challans  *ChallanHandler
	Drafts    *DraftChallanHandler
	Catalog   *CatalogHandler
	AuthMW    *middleware.AuthMiddleware
	RateLimit *middleware.RateLimitMiddleware
}

// RegisterRoutes wires every endpoint onto the mux router. The auth surface
// lives under /api/auth, everything else under /api/v1. Write access to
// challans, drafts and the catalog requires admin or super_admin; user
// management is super_admin territory except creation, which admins get in
// a restricted form.
func (rt *Router) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	auth := rt.AuthMW

	admin := []entity.Role{entity.RoleSuperAdmin, entity.RoleAdmin}
	superAdmin := []entity.Role{entity.RoleSuperAdmin}

	// Auth surface. Login and refresh are rate limited per client IP.
	authAPI := r.PathPrefix("/api/auth").Subrouter()
	authAPI.Handle("/login", rt.RateLimit.Limit(http.HandlerFunc(rt.Auth.Login))).Methods(http.MethodPost)
	authAPI.Handle("/refresh", rt.RateLimit.Limit(http.HandlerFunc(rt.Auth.Refresh))).Methods(http.MethodPost)
	authAPI.HandleFunc("/verify-user", rt.Auth.VerifyUser).Methods(http.MethodPost)
	authAPI.HandleFunc("/logout", rt.Auth.Logout).Methods(http.MethodPost)
	authAPI.HandleFunc("/setup", rt.Auth.Setup).Methods(http.MethodPost)
	authAPI.Handle("/me", auth.RequireAuth(http.HandlerFunc(rt.Auth.Me))).Methods(http.MethodGet)
	authAPI.Handle("/create-user", auth.RequireRole(http.HandlerFunc(rt.Users.CreateUser), admin...)).Methods(http.MethodPost)

	api := r.PathPrefix("/api/v1").Subrouter()

	// User management.
	api.Handle("/users", auth.RequireRole(http.HandlerFunc(rt.Users.ListUsers), admin...)).Methods(http.MethodGet)
	api.Handle("/users/{id}", auth.RequireRole(http.HandlerFunc(rt.Users.GetUser), admin...)).Methods(http.MethodGet)
	api.Handle("/users/{id}", auth.RequireRole(http.HandlerFunc(rt.Users.UpdateUser), superAdmin...)).Methods(http.MethodPut)
	api.Handle("/users/{id}", auth.RequireRole(http.HandlerFunc(rt.Users.DeleteUser), superAdmin...)).Methods(http.MethodDelete)

	// Delivery challans. Reads for every authenticated role, writes gated.
	api.Handle("/delivery-challans", auth.RequireAuth(http.HandlerFunc(rt.Challans.List))).Methods(http.MethodGet)
	api.Handle("/delivery-challans", auth.RequireRole(http.HandlerFunc(rt.Challans.Create), admin...)).Methods(http.MethodPost)
	api.Handle("/delivery-challans/{id}", auth.RequireAuth(http.HandlerFunc(rt.Challans.Get))).Methods(http.MethodGet)
	api.Handle("/delivery-challans/{id}", auth.RequireRole(http.HandlerFunc(rt.Challans.Update), admin...)).Methods(http.MethodPut)
	api.Handle("/delivery-challans/{id}/status", auth.RequireRole(http.HandlerFunc(rt.Challans.UpdateStatus), admin...)).Methods(http.MethodPatch)
	api.Handle("/delivery-challans/{id}", auth.RequireRole(http.HandlerFunc(rt.Challans.Delete), admin...)).Methods(http.MethodDelete)

	// Draft challans.
	api.Handle("/draft-challans", auth.RequireAuth(http.HandlerFunc(rt.Drafts.List))).Methods(http.MethodGet)
	api.Handle("/draft-challans", auth.RequireRole(http.HandlerFunc(rt.Drafts.Create), admin...)).Methods(http.MethodPost)
	api.Handle("/draft-challans/{id}", auth.RequireAuth(http.HandlerFunc(rt.Drafts.Get))).Methods(http.MethodGet)
	api.Handle("/draft-challans/{id}", auth.RequireRole(http.HandlerFunc(rt.Drafts.Update), admin...)).Methods(http.MethodPut)
	api.Handle("/draft-challans/{id}", auth.RequireRole(http.HandlerFunc(rt.Drafts.Delete), admin...)).Methods(http.MethodDelete)

	// Supplier and item catalog.
	api.Handle("/suppliers", auth.RequireAuth(http.HandlerFunc(rt.Catalog.ListSuppliers))).Methods(http.MethodGet)
	api.Handle("/suppliers", auth.RequireRole(http.HandlerFunc(rt.Catalog.CreateSupplier), admin...)).Methods(http.MethodPost)
	api.Handle("/suppliers/{id}", auth.RequireRole(http.HandlerFunc(rt.Catalog.UpdateSupplier), admin...)).Methods(http.MethodPut)
	api.Handle("/suppliers/{id}", auth.RequireRole(http.HandlerFunc(rt.Catalog.DeleteSupplier), admin...)).Methods(http.MethodDelete)

	api.Handle("/items", auth.RequireAuth(http.HandlerFunc(rt.Catalog.ListItems))).Methods(http.MethodGet)
	api.Handle("/items", auth.RequireRole(http.HandlerFunc(rt.Catalog.CreateItem), admin...)).Methods(http.MethodPost)
	api.Handle("/items/{id}", auth.RequireRole(http.HandlerFunc(rt.Catalog.UpdateItem), admin...)).Methods(http.MethodPut)
	api.Handle("/items/{id}", auth.RequireRole(http.HandlerFunc(rt.Catalog.DeleteItem), admin...)).Methods(http.MethodDelete)

	// Role gate checks used by the frontend to test access levels.
	api.Handle("/protected", auth.RequireAuth(accessCheckHandler("You have access"))).Methods(http.MethodGet)
	api.Handle("/admin-only", auth.RequireRole(accessCheckHandler("Admin access granted"), admin...)).Methods(http.MethodGet)
	api.Handle("/super-admin-only", auth.RequireRole(accessCheckHandler("Super admin access granted"), superAdmin...)).Methods(http.MethodGet)
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "OK", map[string]string{"status": "healthy"})
}

func accessCheckHandler(message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.GetClaims(r.Context())
		data := map[string]interface{}{}
		if claims != nil {
			data["userId"] = claims.UserID
			data["role"] = claims.Role
		}
		response.Success(w, http.StatusOK, message, data)
	})
}
