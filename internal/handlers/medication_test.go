package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JorgegrDev/medic-action/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// newTestRouter mounts the medication routes behind a stub auth middleware.
// The service has no backing stores, so only requests rejected before the
// service layer belong here.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", int64(1)) })

	h := NewMedicationHandler(service.NewMedicationService(nil, nil, nil, nil))
	r.POST("/medications", h.Create)
	r.GET("/medications", h.List)
	r.GET("/medications/:id", h.GetByID)
	r.PUT("/medications/:id", h.Update)
	r.DELETE("/medications/:id", h.Delete)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreate_RejectsMalformedJSON(t *testing.T) {
	r := newTestRouter()
	w := doRequest(r, http.MethodPost, "/medications", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreate_RejectsMissingRequiredFields(t *testing.T) {
	r := newTestRouter()
	w := doRequest(r, http.MethodPost, "/medications", `{"name":"Paracetamol"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreate_RejectsBadDateFormat(t *testing.T) {
	r := newTestRouter()
	w := doRequest(r, http.MethodPost, "/medications", `{"name":"a","dosage":"b","start_date":"01/03/2026"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestList_RejectsUnknownFilter(t *testing.T) {
	r := newTestRouter()
	w := doRequest(r, http.MethodGet, "/medications?filter=archived", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "filter")
}

func TestRoutes_RejectInvalidID(t *testing.T) {
	r := newTestRouter()
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/medications/abc"},
		{http.MethodPut, "/medications/0"},
		{http.MethodDelete, "/medications/-5"},
	} {
		w := doRequest(r, tc.method, tc.path, `{"name":"a","dosage":"b"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", tc.method, tc.path)
	}
}
