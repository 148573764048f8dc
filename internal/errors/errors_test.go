package errors

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New(ErrorTemplate).Parse(`<p>{{.Code}}: {{.Message}}</p>`)))
	r.GET("/missing", func(c *gin.Context) {
		NotFound(c, "")
	})
	r.GET("/conflict", func(c *gin.Context) {
		Conflict(c, "already resolved")
	})
	return r
}

func TestRespondWithError_JSON(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/conflict", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var body APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrCodeConflict, body.Code)
	assert.Equal(t, "already resolved", body.Message)
}

func TestRespondWithError_HTML(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "NOT_FOUND: Resource not found")
}
