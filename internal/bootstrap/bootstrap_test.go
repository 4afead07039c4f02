package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/hostelhub/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = "development"
	cfg.Server.ExposeErrors = true
	cfg.Server.CORSOrigins = "http://localhost:5173"
	cfg.JWT.Secret = "bootstrap-secret"
	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.JWT.Issuer = "hostelhub.test"
	return cfg
}

func TestSetupRouter_ServesStatsEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// counters run concurrently
	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM students`).
		WithArgs(false).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(40)))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rooms`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(5)))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM complaints`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	cfg := testConfig()
	lgr := zerolog.Nop()
	router := SetupRouter(cfg, BuildDependencies(cfg, mock, lgr), lgr)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]int64{"students": 40, "rooms": 5, "complaints": 3}, body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetupRouter_CORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	cfg := testConfig()
	lgr := zerolog.Nop()
	router := SetupRouter(cfg, BuildDependencies(cfg, mock, lgr), lgr)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsConfig(t *testing.T) {
	cfg := testConfig()

	cfg.Server.CORSOrigins = "*"
	assert.True(t, corsConfig(cfg).AllowAllOrigins)

	cfg.Server.CORSOrigins = ""
	assert.True(t, corsConfig(cfg).AllowAllOrigins)

	cfg.Server.CORSOrigins = "http://a.test, http://b.test"
	c := corsConfig(cfg)
	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.AllowOrigins)
	assert.True(t, c.AllowCredentials)
}
