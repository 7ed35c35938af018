package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opos-parking/internal/config"
	"opos-parking/internal/user/model"
	appErrors "opos-parking/pkg/errors"
	"opos-parking/pkg/utils"
)

const testSecret = "test-secret"

type stubUserLoader struct {
	users map[uuid.UUID]*model.User
}

func (s *stubUserLoader) GetUserByID(_ context.Context, userID uuid.UUID) (*model.User, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, appErrors.ErrUserNotFound
	}
	return user, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: testSecret, ExpiryHours: 1},
	}
}

func newAuthRouter(t *testing.T, loader UserLoader) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(AuthMiddleware(testConfig(), loader))
	router.GET("/protected", func(c *gin.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := newAuthRouter(t, &stubUserLoader{})

	recorder := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	router := newAuthRouter(t, &stubUserLoader{})

	for _, header := range []string{"Basic abc", "Bearer", "token-without-scheme"} {
		recorder := doRequest(router, header)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "header %q", header)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router := newAuthRouter(t, &stubUserLoader{})

	recorder := doRequest(router, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), appErrors.ErrInvalidToken.Error())
}

func TestAuthMiddlewareUserGone(t *testing.T) {
	router := newAuthRouter(t, &stubUserLoader{users: map[uuid.UUID]*model.User{}})

	token, err := utils.GenerateToken(uuid.New(), testSecret, 1)
	require.NoError(t, err)

	recorder := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), appErrors.ErrTokenUserGone.Error())
}

func TestAuthMiddlewarePasswordChangedAfterIssue(t *testing.T) {
	userID := uuid.New()
	changedAt := time.Now().Add(time.Hour)
	loader := &stubUserLoader{users: map[uuid.UUID]*model.User{
		userID: {ID: userID, PasswordChangedAt: &changedAt},
	}}
	router := newAuthRouter(t, loader)

	token, err := utils.GenerateToken(userID, testSecret, 1)
	require.NoError(t, err)

	recorder := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), appErrors.ErrPasswordChanged.Error())
}

func TestAuthMiddlewareSuccess(t *testing.T) {
	userID := uuid.New()
	loader := &stubUserLoader{users: map[uuid.UUID]*model.User{
		userID: {ID: userID, Role: model.RoleCustomer},
	}}
	router := newAuthRouter(t, loader)

	token, err := utils.GenerateToken(userID, testSecret, 1)
	require.NoError(t, err)

	recorder := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), userID.String())
}
