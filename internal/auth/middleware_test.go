package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSessionLookup struct {
	users map[string]int64
}

func (f *fakeSessionLookup) GetUserID(_ context.Context, id string) (int64, bool) {
	userID, ok := f.users[id]
	return userID, ok
}

func newGateRouter(lookup SessionLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", RequireSession(lookup), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserIDFromContext(c)})
	})
	return r
}

func doGateRequest(r *gin.Engine, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionID})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireSession_MissingCookie(t *testing.T) {
	r := newGateRouter(&fakeSessionLookup{users: map[string]int64{}})

	w := doGateRequest(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authorization required")
}

func TestRequireSession_UnknownSession(t *testing.T) {
	r := newGateRouter(&fakeSessionLookup{users: map[string]int64{"known": 7}})

	w := doGateRequest(r, "expired-or-bogus")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSession_ValidSessionInjectsUserID(t *testing.T) {
	r := newGateRouter(&fakeSessionLookup{users: map[string]int64{"sess-1": 42}})

	w := doGateRequest(r, "sess-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestUserIDFromContext_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Zero(t, UserIDFromContext(c))
}
