package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"starwars-api/internal/app"
	"starwars-api/internal/service"

	_ "starwars-api/api/openapi"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

const tatooine = `{"planet_name":"Tatooine","diameter":10465,"rotation_period":23,"orbital_period":304,"climate":"arid"}`

type apiResponse struct {
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Setup(r, service.NewServices(app.MemoryStores(), nil, nil))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, apiResponse) {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func TestPlanetCreateTatooine(t *testing.T) {
	r := newTestRouter()

	code, resp := do(t, r, http.MethodPost, "/planet", tatooine)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "New planet created", resp.Msg)

	var planet map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &planet))
	assert.Equal(t, "Tatooine", planet["planet_name"])
	assert.Equal(t, float64(10465), planet["diameter"])
	assert.Equal(t, float64(1), planet["planet_id"])

	code, resp = do(t, r, http.MethodPost, "/planet", tatooine)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Planet name already exists", resp.Msg)

	_, resp = do(t, r, http.MethodGet, "/planet", "")
	var planets []map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &planets))
	assert.Len(t, planets, 1)
}

func TestCatalogCreateRejectsBadBodies(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		path string
		body string
		msg  string
	}{
		{"missing field", "/planet", `{"planet_name":"Hoth"}`,
			"The fields planet_name, diameter, rotation_period, orbital_period and climate are required"},
		{"extra field", "/vehicle", `{"vehicle_name":"X-wing","passengers":1,"load_capacity":110,"armament":"lasers","length":12,"pilot":"Luke"}`,
			"Allowed fields vehicle_name, passengers, load_capacity, armament and length"},
		{"empty body", "/character", "", "You must send information in the body"},
		{"wrong type", "/character", `{"character_name":"Yoda","skin_color":"green","hair_color":"white","gender":"male","age":"900"}`,
			"Invalid value for field age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := do(t, r, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tt.msg, resp.Msg)
		})
	}

	_, resp := do(t, r, http.MethodGet, "/vehicle", "")
	assert.JSONEq(t, `[]`, string(resp.Data))
}

func TestCatalogUpdate(t *testing.T) {
	r := newTestRouter()
	code, _ := do(t, r, http.MethodPost, "/planet", tatooine)
	require.Equal(t, http.StatusCreated, code)

	code, resp := do(t, r, http.MethodPut, "/planet/99", `{"climate":"wet"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Planet with id 99 not found", resp.Msg)

	code, resp = do(t, r, http.MethodPut, "/planet/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "You must send information in the body", resp.Msg)

	code, resp = do(t, r, http.MethodPut, "/planet/1", `{"climate":"temperate"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Planet with id 1 modified successfully", resp.Msg)

	_, resp = do(t, r, http.MethodGet, "/planet/1", "")
	var planet map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &planet))
	assert.Equal(t, "temperate", planet["climate"])
	assert.Equal(t, "Tatooine", planet["planet_name"])
	assert.Equal(t, float64(304), planet["orbital_period"])
}

func TestCatalogDelete(t *testing.T) {
	r := newTestRouter()
	code, _ := do(t, r, http.MethodPost, "/planet", tatooine)
	require.Equal(t, http.StatusCreated, code)

	code, resp := do(t, r, http.MethodDelete, "/planet/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Planet with id 1 deleted", resp.Msg)

	code, resp = do(t, r, http.MethodGet, "/planet/1", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Planet with id 1 does not exist", resp.Msg)

	code, resp = do(t, r, http.MethodDelete, "/planet/1", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Planet with id 1 not found", resp.Msg)
}

func TestUserLifecycle(t *testing.T) {
	r := newTestRouter()
	luke := `{"user_name":"luke","email":"luke@rebels.org","password":"xwing"}`

	code, resp := do(t, r, http.MethodPost, "/user", luke)
	require.Equal(t, http.StatusCreated, code)
	var user map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, true, user["is_active"])
	assert.NotContains(t, user, "password")

	code, resp = do(t, r, http.MethodPost, "/user", `{"user_name":"luke","email":"other@rebels.org","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "User with this username or email already exists", resp.Msg)

	code, _ = do(t, r, http.MethodDelete, "/user/1", "")
	assert.Equal(t, http.StatusOK, code)

	code, resp = do(t, r, http.MethodDelete, "/user/1", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "User with id 1 is already deactivated", resp.Msg)

	// 停用的用户仍可查询
	code, resp = do(t, r, http.MethodGet, "/user/1", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, false, user["is_active"])
}

func TestFavorites(t *testing.T) {
	r := newTestRouter()
	code, _ := do(t, r, http.MethodPost, "/user", `{"user_name":"leia","email":"leia@rebels.org","password":"alderaan"}`)
	require.Equal(t, http.StatusCreated, code)
	code, _ = do(t, r, http.MethodPost, "/planet", tatooine)
	require.Equal(t, http.StatusCreated, code)

	code, resp := do(t, r, http.MethodPost, "/favorite/planet/1/2", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "The user does not exist", resp.Msg)

	code, resp = do(t, r, http.MethodPost, "/favorite/planet/5/1", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "The planet does not exist", resp.Msg)

	code, resp = do(t, r, http.MethodPost, "/favorite/planet/1/1", "")
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Planet added to favorites", resp.Msg)

	code, resp = do(t, r, http.MethodPost, "/favorite/planet/1/1", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Planet is already a favorite", resp.Msg)

	code, resp = do(t, r, http.MethodGet, "/user/1/favorites", "")
	require.Equal(t, http.StatusOK, code)
	var favs struct {
		FavoritePlanets []struct {
			Planet struct {
				PlanetName string `json:"planet_name"`
			} `json:"planet"`
		} `json:"favorite_planets"`
		UserData struct {
			UserName string `json:"user_name"`
		} `json:"user_data"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &favs))
	require.Len(t, favs.FavoritePlanets, 1)
	assert.Equal(t, "Tatooine", favs.FavoritePlanets[0].Planet.PlanetName)
	assert.Equal(t, "leia", favs.UserData.UserName)

	code, resp = do(t, r, http.MethodDelete, "/favorite/planet/1/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Favorite planet deleted", resp.Msg)

	code, resp = do(t, r, http.MethodDelete, "/favorite/planet/1/1", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Favorite planet not found", resp.Msg)

	code, resp = do(t, r, http.MethodGet, "/user/7/favorites", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "User with id 7 does not exist", resp.Msg)
}

func TestUnknownRoutesAndIDs(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{"/planet/abc", "/planet/0", "/favorite/vehicle/x/1", "/starships"} {
		code, resp := do(t, r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, code, path)
		assert.Equal(t, "Resource not found", resp.Msg, path)
	}
}

func TestEveryRouteIsDocumented(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)
	var parsed struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	param := regexp.MustCompile(`:(\w+)`)
	for _, route := range newTestRouter().Routes() {
		path := param.ReplaceAllString(route.Path, "{$1}")
		ops, ok := parsed.Paths[path]
		if assert.True(t, ok, "missing path %s", path) {
			assert.Contains(t, ops, strings.ToLower(route.Method), path)
		}
	}
}
