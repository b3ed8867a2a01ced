package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"farmhub/config"
	"farmhub/internal/delivery/http/middleware"
	"farmhub/internal/delivery/http/validator"
	"farmhub/internal/domain/service"
	"farmhub/internal/infra/auth"
	"farmhub/internal/infra/backend"
	"farmhub/internal/infra/notification"
	"farmhub/internal/infra/persistence/memory"
	"farmhub/internal/infra/theme"
	"farmhub/internal/usecase"
	"farmhub/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStack wires the full dependency graph against the in-memory
// infrastructure with the simulated delays shortened.
type testStack struct {
	echo    *echo.Echo
	session usecase.SessionUsecase
	cart    usecase.CartUsecase
	catalog usecase.CatalogUsecase
	markers service.MarkerService
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	cfg := &config.Config{}
	cfg.Marker.Secret = "integration-test-secret"
	cfg.Marker.TTL = time.Hour
	cfg.Backend = &config.BackendConfig{
		LoginDelay:  time.Millisecond,
		SignupDelay: time.Millisecond,
		UpdateDelay: time.Millisecond,
		ResetDelay:  time.Millisecond,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	markers, err := auth.NewJWTMarkerService(cfg)
	require.NoError(t, err)

	authBackend, err := backend.NewSimulatedBackend(cfg, auth.NewBcryptHasher(), markers)
	require.NoError(t, err)

	markerRepo := memory.NewMarkerRepository()
	notifier := notification.NewToastNotifier(cfg, logger)

	session := impl.NewSessionService(authBackend, markers, markerRepo, notifier, logger)
	scheme := theme.NewSchemeSource(cfg)
	themeStore := impl.NewThemeService(session, scheme, logger)
	cart := impl.NewCartService(logger)
	catalog := impl.NewCatalogService(
		memory.NewProductRepository(),
		memory.NewCropRepository(),
		memory.NewDiseaseRepository(),
		logger,
	)

	e := echo.New()
	e.Validator = validator.New()

	authHandler := NewAuthHandler(session, logger)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	catalogHandler := NewCatalogHandler(catalog)
	e.GET("/catalog/supplies", catalogHandler.ListSupplies)
	e.GET("/catalog/crops", catalogHandler.ListCrops)

	cartHandler := NewCartHandler(cart, catalog)
	e.GET("/cart", cartHandler.Summary)
	e.POST("/cart/items", cartHandler.AddItem)
	e.DELETE("/cart/items/:id", cartHandler.RemoveItem)

	themeHandler := NewThemeHandler(themeStore)
	e.GET("/theme", themeHandler.Snapshot)
	e.PUT("/theme/mode", themeHandler.SetMode)

	authMiddleware := middleware.NewAuthMiddleware(markers)
	profileHandler := NewProfileHandler(session)
	e.GET("/profile", profileHandler.Profile, authMiddleware.Authenticate)

	return &testStack{
		echo:    e,
		session: session,
		cart:    cart,
		catalog: catalog,
		markers: markers,
	}
}

func (s *testStack) do(method, target, body string, header http.Header) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_LoginFlow_Integration(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(http.MethodPost, "/auth/login",
		`{"email":"john@example.com","password":"password"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "john_farmer")
	assert.Contains(t, rec.Body.String(), `"isAuthenticated":true`)

	rec = stack.do(http.MethodGet, "/auth/session", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "john@example.com")

	rec = stack.do(http.MethodPost, "/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isAuthenticated":false`)
}

func TestAuthHandler_LoginRejectsBadCredentials_Integration(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(http.MethodPost, "/auth/login",
		`{"email":"john@example.com","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
}

func TestAuthHandler_LoginValidatesInput_Integration(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(http.MethodPost, "/auth/login",
		`{"email":"not-an-email","password":"password"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogHandler_Queries_Integration(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(http.MethodGet, "/catalog/supplies?category=fertilizer", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Premium NPK Fertilizer")
	assert.NotContains(t, rec.Body.String(), "Hybrid Corn Seeds")

	rec = stack.do(http.MethodGet, "/catalog/crops?category=organic", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Organic Tomatoes")
	assert.NotContains(t, rec.Body.String(), "Sweet Corn")
}

func TestCartHandler_AddAndPrice_Integration(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(http.MethodPost, "/cart/items",
		`{"productId":"1","quantity":2,"type":"supply"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = stack.do(http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Total float64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.InDelta(t, 2*45.99, envelope.Data.Total, 0.001)

	rec = stack.do(http.MethodDelete, "/cart/items/1", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = stack.do(http.MethodGet, "/cart", "", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Zero(t, envelope.Data.Total)
}

func TestCartHandler_AddRejectsInvalidType_Integration(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(http.MethodPost, "/cart/items",
		`{"productId":"1","quantity":2,"type":"vehicle"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestThemeHandler_SetMode_Integration(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(http.MethodPut, "/theme/mode", `{"mode":"dark"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dark"`)

	rec = stack.do(http.MethodPut, "/theme/mode", `{"mode":"neon"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileHandler_RequiresMarker_Integration(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(http.MethodGet, "/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MARKER_MISSING")

	rec = stack.do(http.MethodGet, "/profile", "", http.Header{
		"Authorization": []string{"Bearer not-a-marker"},
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MARKER_INVALID")
}

func TestProfileHandler_ReturnsSignedInUser_Integration(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(http.MethodPost, "/auth/login",
		`{"email":"john@example.com","password":"password"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	marker, err := stack.markers.Mint("1")
	require.NoError(t, err)

	rec = stack.do(http.MethodGet, "/profile", "", http.Header{
		"Authorization": []string{"Bearer " + marker},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "john_farmer")
}
