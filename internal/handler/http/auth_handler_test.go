package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/samikassu/crewboard/internal/domain/entity"
	handler "github.com/samikassu/crewboard/internal/handler/http"
	"github.com/samikassu/crewboard/internal/handler/http/dto"
	"github.com/samikassu/crewboard/internal/handler/http/mocks"
	"github.com/samikassu/crewboard/internal/ledger"
	"github.com/samikassu/crewboard/internal/usecase"
	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// withSession injects the session ID the auth middleware would have set.
func withSession(sessionID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("sessionID", sessionID)
		c.Next()
	}
}

func pendingView(sessionID string) *usecasecontract.SessionView {
	return &usecasecontract.SessionView{
		SessionID: sessionID,
		State:     usecasecontract.SessionPending,
		User:      entity.User{ID: "u1", Name: "newkid", Role: entity.UserRolePending, Level: 1},
	}
}

func TestLoginReturnsTokenAndPendingState(t *testing.T) {
	mockUsecase := &mocks.MockSessionUsecase{
		LoginFn: func(ctx context.Context, name, deviceDetails string) (*usecasecontract.SessionView, string, error) {
			assert.Equal(t, "newkid", name)
			return pendingView("s1"), "signed-token", nil
		},
	}
	h := handler.NewAuthHandler(mockUsecase)
	r := gin.Default()
	r.POST("/login", h.Login)

	body, _ := json.Marshal(dto.LoginRequest{Name: "newkid", DeviceDetails: "Firefox"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.LoginResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "pending", resp.Session.State)
	assert.Equal(t, "newkid", resp.Session.User.Name)
}

func TestLoginRejectedNameIsForbidden(t *testing.T) {
	mockUsecase := &mocks.MockSessionUsecase{
		LoginFn: func(ctx context.Context, name, deviceDetails string) (*usecasecontract.SessionView, string, error) {
			return nil, "", ledger.ErrAccessDenied
		},
	}
	h := handler.NewAuthHandler(mockUsecase)
	r := gin.Default()
	r.POST("/login", h.Login)

	body, _ := json.Marshal(dto.LoginRequest{Name: "troll"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Access denied")
}

func TestLoginMissingNameIsBadRequest(t *testing.T) {
	h := handler.NewAuthHandler(&mocks.MockSessionUsecase{})
	r := gin.Default()
	r.POST("/login", h.Login)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveRestoresSessionFromToken(t *testing.T) {
	mockUsecase := &mocks.MockSessionUsecase{
		ResolveFn: func(ctx context.Context, token string) (*usecasecontract.SessionView, error) {
			assert.Equal(t, "stored-token", token)
			return pendingView("s1"), nil
		},
	}
	h := handler.NewAuthHandler(mockUsecase)
	r := gin.Default()
	r.GET("/auth/session", h.Resolve)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/session", nil)
	req.Header.Set("Authorization", "Bearer stored-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"session_id":"s1"`)
}

func TestResolveWithoutBearerIsUnauthorized(t *testing.T) {
	h := handler.NewAuthHandler(&mocks.MockSessionUsecase{})
	r := gin.Default()
	r.GET("/auth/session", h.Resolve)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/session", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeReportsForcedLogoutNotice(t *testing.T) {
	mockUsecase := &mocks.MockSessionUsecase{
		MeFn: func(ctx context.Context, sessionID string) (*usecasecontract.SessionView, error) {
			return &usecasecontract.SessionView{
				SessionID: sessionID,
				State:     usecasecontract.SessionLoggedOut,
				Notice:    "CONNECTION TERMINATED: ACCESS DENIED BY ADMIN.",
			}, nil
		},
	}
	h := handler.NewAuthHandler(mockUsecase)
	r := gin.Default()
	r.GET("/me", withSession("s1"), h.Me)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "logged_out")
	assert.Contains(t, w.Body.String(), "CONNECTION TERMINATED")
}

func TestMeUnknownSessionIsUnauthorized(t *testing.T) {
	mockUsecase := &mocks.MockSessionUsecase{
		MeFn: func(ctx context.Context, sessionID string) (*usecasecontract.SessionView, error) {
			return nil, usecase.ErrSessionNotFound
		},
	}
	h := handler.NewAuthHandler(mockUsecase)
	r := gin.Default()
	r.GET("/me", withSession("gone"), h.Me)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeWithoutMiddlewareContextIsUnauthorized(t *testing.T) {
	h := handler.NewAuthHandler(&mocks.MockSessionUsecase{})
	r := gin.Default()
	r.GET("/me", h.Me)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout(t *testing.T) {
	called := false
	mockUsecase := &mocks.MockSessionUsecase{
		LogoutFn: func(ctx context.Context, sessionID string) error {
			called = true
			assert.Equal(t, "s1", sessionID)
			return nil
		},
	}
	h := handler.NewAuthHandler(mockUsecase)
	r := gin.Default()
	r.POST("/logout", withSession("s1"), h.Logout)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}
