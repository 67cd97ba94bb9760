package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mynkprtp/movieApi/domain"
	"github.com/mynkprtp/movieApi/internal/mocks"
	"github.com/mynkprtp/movieApi/internal/services"
)

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestAuthHandlers_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful registration",
			requestBody: RegisterRequest{
				Name:     "John Doe",
				Email:    "john@example.com",
				Username: "johnd",
				Password: "secret123",
			},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.RegisterFunc = func(ctx context.Context, name, email, username, password string) (*domain.AuthResult, error) {
					return &domain.AuthResult{
						User:         &domain.User{ID: 1, Email: email},
						AccessToken:  "access-abc",
						RefreshToken: "refresh-abc",
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "duplicate account",
			requestBody: RegisterRequest{
				Name:     "John Doe",
				Email:    "john@example.com",
				Username: "johnd",
				Password: "secret123",
			},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.RegisterFunc = func(ctx context.Context, name, email, username, password string) (*domain.AuthResult, error) {
					return nil, domain.ErrDuplicateAccount
				}
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "Account already exists",
		},
		{
			name: "password too short",
			requestBody: RegisterRequest{
				Name:     "John Doe",
				Email:    "john@example.com",
				Username: "johnd",
				Password: "short",
			},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid email",
			requestBody: RegisterRequest{
				Name:     "John Doe",
				Email:    "not-an-email",
				Username: "johnd",
				Password: "secret123",
			},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)

			router := gin.New()
			h := NewAuthHandlers(authSvc)
			router.POST("/api/v1/auth/register", h.Register)

			w := performJSON(t, router, http.MethodPost, "/api/v1/auth/register", tt.requestBody)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			body := decodeBody(t, w)
			if tt.expectedStatus == http.StatusOK {
				if body["accessToken"] != "access-abc" || body["refreshToken"] != "refresh-abc" {
					t.Errorf("unexpected token pair %v", body)
				}
			} else if tt.expectedError != "" && body["error"] != tt.expectedError {
				t.Errorf("expected error %q, got %v", tt.expectedError, body["error"])
			}
		})
	}
}

func TestAuthHandlers_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name:           "successful login",
			requestBody:    LoginRequest{Email: "john@example.com", Password: "secret123"},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "invalid credentials",
			requestBody: LoginRequest{Email: "john@example.com", Password: "wrong"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
					return nil, domain.ErrInvalidCredentials
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing password",
			requestBody:    map[string]string{"email": "john@example.com"},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)

			router := gin.New()
			h := NewAuthHandlers(authSvc)
			router.POST("/api/v1/auth/login", h.Login)

			w := performJSON(t, router, http.MethodPost, "/api/v1/auth/login", tt.requestBody)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthHandlers_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name:           "successful refresh",
			requestBody:    RefreshRequest{RefreshToken: "refresh-abc"},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "unknown token",
			requestBody: RefreshRequest{RefreshToken: "bogus"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.RefreshFunc = func(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
					return nil, domain.ErrTokenInvalid
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "expired token",
			requestBody: RefreshRequest{RefreshToken: "stale"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.RefreshFunc = func(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
					return nil, domain.ErrTokenExpired
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing token",
			requestBody:    map[string]string{},
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)

			router := gin.New()
			h := NewAuthHandlers(authSvc)
			router.POST("/api/v1/auth/refresh", h.Refresh)

			w := performJSON(t, router, http.MethodPost, "/api/v1/auth/refresh", tt.requestBody)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

// TestAuthHandlers_RegisterThenRefresh drives register and refresh through a
// real auth service backed by in-memory stores, so the opaque token handed out
// at registration is the one accepted by refresh.
func TestAuthHandlers_RegisterThenRefresh(t *testing.T) {
	gin.SetMode(gin.TestMode)

	users := map[string]*domain.User{}
	tokens := map[string]*domain.RefreshToken{}

	userRepo := mocks.NewMockUserRepository()
	userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
		if _, ok := users[user.Email]; ok {
			return domain.ErrDuplicateAccount
		}
		user.ID = uint(len(users) + 1)
		users[user.Email] = user
		return nil
	}
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		for _, u := range users {
			if u.ID == id {
				return u, nil
			}
		}
		return nil, domain.ErrUnknownAccount
	}

	tokenRepo := mocks.NewMockRefreshTokenRepository()
	tokenRepo.CreateFunc = func(ctx context.Context, token *domain.RefreshToken) error {
		token.ID = uint(len(tokens) + 1)
		tokens[token.Token] = token
		return nil
	}
	tokenRepo.FindByTokenFunc = func(ctx context.Context, token string) (*domain.RefreshToken, error) {
		if row, ok := tokens[token]; ok {
			return row, nil
		}
		return nil, domain.ErrTokenInvalid
	}

	authSvc := services.NewAuthService(userRepo, tokenRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), 15*time.Minute, time.Hour)

	router := gin.New()
	h := NewAuthHandlers(authSvc)
	router.POST("/api/v1/auth/register", h.Register)
	router.POST("/api/v1/auth/refresh", h.Refresh)

	w := performJSON(t, router, http.MethodPost, "/api/v1/auth/register", RegisterRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Username: "johnd",
		Password: "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register failed with %d: %s", w.Code, w.Body.String())
	}
	refreshToken, _ := decodeBody(t, w)["refreshToken"].(string)
	if refreshToken == "" {
		t.Fatal("expected a refresh token from registration")
	}

	// Duplicate registration with the same email is rejected
	w = performJSON(t, router, http.MethodPost, "/api/v1/auth/register", RegisterRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Username: "johnd2",
		Password: "secret123",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate registration, got %d", w.Code)
	}

	w = performJSON(t, router, http.MethodPost, "/api/v1/auth/refresh", RefreshRequest{RefreshToken: refreshToken})
	if w.Code != http.StatusOK {
		t.Fatalf("refresh failed with %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["refreshToken"] != refreshToken {
		t.Errorf("expected the same refresh token back, got %v", body["refreshToken"])
	}
	if body["accessToken"] == "" {
		t.Error("expected a fresh access token")
	}
}
