package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func negotiateTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	router.GET("/json", Accepts("application/json"), ok)
	router.POST("/json", RequireContentType("application/json"), ok)
	router.POST("/multipart", RequireContentType("multipart/form-data"), ok)
	return router
}

func TestAcceptsAllowsMatchingHeader(t *testing.T) {
	router := negotiateTestRouter()

	req, _ := http.NewRequest(http.MethodGet, "/json", nil)
	req.Header.Set("Accept", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAcceptsAllowsMissingHeader(t *testing.T) {
	router := negotiateTestRouter()

	req, _ := http.NewRequest(http.MethodGet, "/json", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAcceptsRejectsOtherType(t *testing.T) {
	router := negotiateTestRouter()

	req, _ := http.NewRequest(http.MethodGet, "/json", nil)
	req.Header.Set("Accept", "application/xml")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotAcceptable, recorder.Code)
	assert.JSONEq(t, `{"message": "Request must accept application/json"}`, recorder.Body.String())
}

func TestRequireContentTypeAcceptsParameters(t *testing.T) {
	router := negotiateTestRouter()

	req, _ := http.NewRequest(http.MethodPost, "/multipart", nil)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=deadbeef")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireContentTypeRejectsMismatch(t *testing.T) {
	router := negotiateTestRouter()

	req, _ := http.NewRequest(http.MethodPost, "/json", nil)
	req.Header.Set("Content-Type", "text/plain")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, recorder.Code)
	assert.JSONEq(t, `{"message": "Request must contain application/json data"}`, recorder.Body.String())
}

func TestRequireContentTypeRejectsMissingHeader(t *testing.T) {
	router := negotiateTestRouter()

	req, _ := http.NewRequest(http.MethodPost, "/json", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, recorder.Code)
}
