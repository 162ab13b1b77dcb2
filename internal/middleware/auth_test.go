package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"phish_trainer/internal/model"
	"phish_trainer/internal/testutil"
	"phish_trainer/internal/util"
	"phish_trainer/pkg/i18n"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.String(http.StatusOK, claims.Username)
	})
	r.GET("/private", handlers...)
	return r
}

func token(t *testing.T, role model.UserRole) string {
	user := &model.User{Username: "anna", Role: role}
	user.ID = 3
	tok, err := util.GenerateJWT(user, testutil.Config().JWT.Secret, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testutil.Config()
	r := newRouter(AuthMiddleware(cfg, i18n.New(i18n.English)))

	tests := []struct {
		name   string
		setup  func(*http.Request)
		status int
	}{
		{"no credentials", func(*http.Request) {}, http.StatusUnauthorized},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token(t, model.TestSubject)) }, http.StatusOK},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "session", Value: token(t, model.TestSubject)}) }, http.StatusOK},
		{"garbage", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusUnauthorized {
				assert.JSONEq(t, `{"success":false,"message":"Authorization required"}`, w.Body.String())
			} else {
				assert.Equal(t, "anna", w.Body.String())
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	cfg := testutil.Config()
	cat := i18n.New(i18n.English)
	r := newRouter(AuthMiddleware(cfg, cat), RoleMiddleware(cat, model.Organizer))

	for role, status := range map[model.UserRole]int{
		model.Admin:       http.StatusOK,
		model.Organizer:   http.StatusOK,
		model.TestSubject: http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token(t, role))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, status, w.Code, role)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(util.ContextRequestID)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(util.HeaderRequestID))
	assert.Equal(t, w.Header().Get(util.HeaderRequestID), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(util.HeaderRequestID, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Body.String())
}
