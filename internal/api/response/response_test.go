package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreatedCarriesData(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Created(c, "New planet created", gin.H{"planet_name": "Tatooine"})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "New planet created", body["msg"])
	assert.Equal(t, "Tatooine", body["data"].(map[string]any)["planet_name"])
}

func TestOKWithoutDataOmitsKey(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, "Planet with id 1 deleted", nil)

	body := decode(t, w)
	assert.Equal(t, "Planet with id 1 deleted", body["msg"])
	assert.NotContains(t, body, "data")
}

func TestErrorHelpers(t *testing.T) {
	cases := []struct {
		name   string
		write  func(c *gin.Context)
		status int
		msg    string
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "Planet name already exists") }, http.StatusBadRequest, "Planet name already exists"},
		{"not found", func(c *gin.Context) { NotFound(c, "User not found") }, http.StatusNotFound, "User not found"},
		{"internal", InternalError, http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tc.write(c)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, map[string]any{"msg": tc.msg}, decode(t, w))
		})
	}
}
