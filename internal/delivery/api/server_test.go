package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"partnerauth/config"
	"partnerauth/internal/delivery/api/middleware"
	"partnerauth/internal/delivery/api/router"
	"partnerauth/internal/delivery/api/router/handler"
	"partnerauth/internal/delivery/api/validator"
	"partnerauth/internal/domain/service"
	"partnerauth/internal/infra/auth"
	"partnerauth/internal/infra/lock"
	"partnerauth/internal/infra/persistence/memory"
	"partnerauth/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basePath = "/partner-app/api"

type testServer struct {
	echo   *echo.Echo
	tokens service.TokenIssuer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.BasePath = basePath
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey = config.SecretKeyConfig{Access: "access-secret-for-tests", Refresh: "refresh-secret-for-tests"}
	cfg.Token = config.TokenConfig{AccessTTL: time.Hour, RefreshTTL: 24 * time.Hour}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hasher, err := auth.NewScryptHasherWithParams(1024, 8, 1)
	require.NoError(t, err)
	tokens, err := auth.NewJWTIssuer(cfg)
	require.NoError(t, err)

	uc := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:    memory.NewUserRepository(),
		Hasher:      hasher,
		TokenIssuer: tokens,
		Locker:      lock.NewLocalLocker(),
		Logger:      logger,
	})

	r := router.NewRouter(router.RouterParams{
		UserHandler:    handler.NewUserHandler(uc, validator.New(), logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokens, logger),
		Config:         cfg,
	})

	return &testServer{echo: newEcho(cfg, logger, r), tokens: tokens}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details []any  `json:"details"`
}

type metaBody struct {
	RequestID string `json:"request_id"`
}

type envelope struct {
	Data  map[string]any `json:"data"`
	Error *errorBody     `json:"error"`
	Meta  metaBody       `json:"meta"`
}

func (s *testServer) do(t *testing.T, method, path, body, accessToken string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, basePath+path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if accessToken != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&env), rec.Body.String())

	return rec.Code, env
}

func TestAPI_RegisterLoginRefreshProfile(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodPost, "/users/register",
		`{"email":" A@X.com ","password":"Passw0rd","firstName":"A","lastName":"B"}`, "")
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "a@x.com", env.Data["email"])
	assert.NotContains(t, env.Data, "passwordHash")
	assert.NotContains(t, env.Data, "password")
	assert.NotContains(t, env.Data, "refreshToken")
	assert.NotEmpty(t, env.Meta.RequestID)

	status, env = s.do(t, http.MethodPost, "/users/register",
		`{"email":"a@x.com","password":"Passw0rd","firstName":"A","lastName":"B"}`, "")
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "EMAIL_ALREADY_IN_USE", env.Error.Code)

	status, env = s.do(t, http.MethodPost, "/users/login", `{"email":"a@x.com","password":"Passw0rd"}`, "")
	require.Equal(t, http.StatusOK, status)
	accessToken, _ := env.Data["accessToken"].(string)
	refreshToken, _ := env.Data["refreshToken"].(string)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	status, env = s.do(t, http.MethodPost, "/users/refresh", `{"refreshToken":"`+refreshToken+`"}`, "")
	require.Equal(t, http.StatusOK, status)
	rotated, _ := env.Data["refreshToken"].(string)
	assert.NotEqual(t, refreshToken, rotated)

	status, env = s.do(t, http.MethodPost, "/users/refresh", `{"refreshToken":"`+refreshToken+`"}`, "")
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_REFRESH_TOKEN", env.Error.Code)

	status, env = s.do(t, http.MethodGet, "/users/profile", "", accessToken)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "A", env.Data["firstName"])

	status, env = s.do(t, http.MethodPatch, "/users/profile", `{"firstName":"Alice"}`, accessToken)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Alice", env.Data["firstName"])
	assert.Equal(t, "B", env.Data["lastName"])

	status, env = s.do(t, http.MethodPatch, "/users/profile", `{}`, accessToken)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "NO_PROFILE_CHANGES", env.Error.Code)
}

func TestAPI_ErrorMapping(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.do(t, http.MethodPost, "/users/register",
		`{"email":"a@x.com","password":"Passw0rd","firstName":"A","lastName":"B"}`, "")
	require.Equal(t, http.StatusCreated, status)

	ghostToken, err := s.tokens.SignAccess(service.AccessClaims{UserID: uuid.New(), Email: "ghost@x.com"})
	require.NoError(t, err)

	testCases := []struct {
		name           string
		method         string
		path           string
		body           string
		token          string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "register validation",
			method:         http.MethodPost,
			path:           "/users/register",
			body:           `{"email":"bad","password":"short","firstName":"","lastName":"B"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_FAILED",
		},
		{
			name:           "register malformed json",
			method:         http.MethodPost,
			path:           "/users/register",
			body:           `{"email":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_INPUT",
		},
		{
			name:           "login wrong password",
			method:         http.MethodPost,
			path:           "/users/login",
			body:           `{"email":"a@x.com","password":"Wrong0pass"}`,
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_CREDENTIALS",
		},
		{
			name:           "login unknown user",
			method:         http.MethodPost,
			path:           "/users/login",
			body:           `{"email":"b@x.com","password":"Passw0rd"}`,
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_CREDENTIALS",
		},
		{
			name:           "login missing password",
			method:         http.MethodPost,
			path:           "/users/login",
			body:           `{"email":"a@x.com"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_FAILED",
		},
		{
			name:           "refresh missing token",
			method:         http.MethodPost,
			path:           "/users/refresh",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_FAILED",
		},
		{
			name:           "refresh garbage token",
			method:         http.MethodPost,
			path:           "/users/refresh",
			body:           `{"refreshToken":"garbage"}`,
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_REFRESH_TOKEN",
		},
		{
			name:           "profile without token",
			method:         http.MethodGet,
			path:           "/users/profile",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "profile with invalid token",
			method:         http.MethodGet,
			path:           "/users/profile",
			token:          "garbage",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name:           "profile of missing user",
			method:         http.MethodGet,
			path:           "/users/profile",
			token:          ghostToken,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "USER_NOT_FOUND",
		},
		{
			name:           "update of missing user",
			method:         http.MethodPatch,
			path:           "/users/profile",
			body:           `{"lastName":"C"}`,
			token:          ghostToken,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "USER_NOT_FOUND",
		},
		{
			name:           "update without token",
			method:         http.MethodPatch,
			path:           "/users/profile",
			body:           `{"lastName":"C"}`,
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, env := s.do(t, tc.method, tc.path, tc.body, tc.token)

			assert.Equal(t, tc.expectedStatus, status)
			require.NotNil(t, env.Error)
			assert.Equal(t, tc.expectedCode, env.Error.Code)
		})
	}
}

func TestAPI_ValidationDetails(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodPost, "/users/register",
		`{"email":"a@x.com","password":"password","firstName":"A","lastName":"B"}`, "")
	require.Equal(t, http.StatusBadRequest, status)
	require.Len(t, env.Error.Details, 1)

	detail, _ := env.Error.Details[0].(map[string]any)
	assert.Equal(t, "password", detail["field"])
}

func TestAPI_HealthAndRequestID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, basePath+"/health", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-123"`)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
