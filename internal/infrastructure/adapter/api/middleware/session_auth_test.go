package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/dampdigits/stockplay/internal/domain/error"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/logger"
	mocksession "github.com/dampdigits/stockplay/mocks/port/session"
)

func newAuthTestRouter(store *mocksession.MockStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionAuth(store, "session", logger.NewNoopLogger()))
	router.GET("/protected", func(c *gin.Context) {
		username, ok := CurrentUsername(c)
		if !ok {
			c.String(http.StatusInternalServerError, "no username")
			return
		}
		c.String(http.StatusOK, username)
	})
	return router
}

func TestSessionAuth(t *testing.T) {
	t.Run("valid session passes the username through", func(t *testing.T) {
		store := new(mocksession.MockStore)
		store.On("Resolve", mock.Anything, "good-token").Return("alice", nil)
		router := newAuthTestRouter(store)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "good-token"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", w.Body.String())
	})

	t.Run("missing cookie redirects to login", func(t *testing.T) {
		store := new(mocksession.MockStore)
		router := newAuthTestRouter(store)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		store.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	})

	t.Run("unknown token redirects to login", func(t *testing.T) {
		store := new(mocksession.MockStore)
		store.On("Resolve", mock.Anything, "stale-token").Return("", errs.ErrSessionNotFound)
		router := newAuthTestRouter(store)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "stale-token"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})
}

func TestNoCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NoCache())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
	assert.Equal(t, "0", w.Header().Get("Expires"))
}
