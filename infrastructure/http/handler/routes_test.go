package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/dcdesk/dcdesk/infrastructure/http/middleware"
)

func newRouteTable() *mux.Router {
	rt := &Router{
		Auth:      &AuthHandler{},
		Users:     &UserManagementHandler{},
		Challans:  &ChallanHandler{},
		Drafts:    &DraftChallanHandler{},
		Catalog:   &CatalogHandler{},
		AuthMW:    middleware.NewAuthMiddleware(nil),
		RateLimit: middleware.NewRateLimitMiddleware(nil, middleware.RateLimitConfig{}, testHandlerLogger()),
	}
	r := mux.NewRouter()
	rt.RegisterRoutes(r)
	return r
}

func TestAuthRoutesMountedUnderApiAuth(t *testing.T) {
	r := newRouteTable()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/login"},
		{http.MethodPost, "/api/auth/refresh"},
		{http.MethodPost, "/api/auth/verify-user"},
		{http.MethodPost, "/api/auth/create-user"},
		{http.MethodPost, "/api/auth/setup"},
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodGet, "/api/auth/me"},
	}
	for _, tc := range routes {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		var m mux.RouteMatch
		assert.True(t, r.Match(req, &m), "%s %s should be routed", tc.method, tc.path)
	}
}

func TestAuthRoutesNotUnderApiV1(t *testing.T) {
	r := newRouteTable()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	var m mux.RouteMatch
	assert.False(t, r.Match(req, &m))
}

func TestDomainRoutesStayUnderApiV1(t *testing.T) {
	r := newRouteTable()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/users"},
		{http.MethodGet, "/api/v1/delivery-challans"},
		{http.MethodGet, "/api/v1/draft-challans"},
		{http.MethodGet, "/api/v1/suppliers"},
		{http.MethodGet, "/api/v1/items"},
	}
	for _, tc := range routes {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		var m mux.RouteMatch
		assert.True(t, r.Match(req, &m), "%s %s should be routed", tc.method, tc.path)
	}
}
