package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/hostelhub/internal/app/controllers"
	"github.com/yigit/hostelhub/internal/middleware"
	"github.com/yigit/hostelhub/internal/pkg/auth"
)

func newTestRouter(requireAdmin bool) (*gin.Engine, *auth.JWTService) {
	gin.SetMode(gin.TestMode)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "routes-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "hostelhub.test",
	})

	// Handlers behind the guard are never reached in these tests, so nil services are enough.
	ctrl := Controllers{
		Student:   controllers.NewStudentController(nil, nil),
		Room:      controllers.NewRoomController(nil),
		Complaint: controllers.NewComplaintController(nil),
		Event:     controllers.NewEventController(nil),
		Auth:      controllers.NewAuthController(nil, nil),
		Admin:     controllers.NewAdminController(nil),
	}

	router := gin.New()
	SetupRouter(router, ctrl, middleware.NewAuthMiddleware(jwtService), requireAdmin)
	return router, jwtService
}

func TestSetupRouter_RegistersEndpoints(t *testing.T) {
	router, _ := newTestRouter(false)

	registered := map[string]bool{}
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /",
		"GET /health",
		"POST /login",
		"GET /me",
		"POST /students",
		"GET /students",
		"GET /students/:id/complaints",
		"GET /students/:id/room",
		"POST /complaints",
		"GET /complaints",
		"PUT /complaints/:id/resolve",
		"GET /rooms",
		"POST /rooms",
		"PUT /rooms/:id/status",
		"POST /room-assignments",
		"GET /admin/stats",
		"GET /events",
		"GET /events/upcoming",
		"GET /events/:id",
		"POST /events",
		"PUT /events/:id",
		"DELETE /events/:id",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestSetupRouter_PublicRoot(t *testing.T) {
	router, _ := newTestRouter(true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hostel Management System API", w.Body.String())
}

func TestSetupRouter_AdminGuard(t *testing.T) {
	router, jwtService := newTestRouter(true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, _, err := jwtService.GenerateToken(7, "Ravi", false)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/events/3", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
