package elasticsearch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"starwars-api/internal/model"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	body   []byte
}

// fakeES 模拟 ES 响应，statusFor 控制各方法的返回码
func fakeES(t *testing.T, statusFor map[string]int) (*CatalogIndex, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{method: r.Method, path: r.URL.Path, body: body})

		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		if code, ok := statusFor[r.Method]; ok {
			w.WriteHeader(code)
		}
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)

	return NewCatalogIndex(es, "catalog"), &requests
}

func TestSyncEventIndexesDocument(t *testing.T) {
	index, requests := fakeES(t, nil)

	event, err := model.NewCatalogEvent(model.EventUpdated, &model.Vehicle{ID: 9, VehicleName: "X-wing", Passengers: 1})
	require.NoError(t, err)

	require.NoError(t, index.Sync(context.Background(), event))
	require.Len(t, *requests, 1)

	req := (*requests)[0]
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/catalog/_doc/vehicle-9", req.path)

	var doc CatalogDoc
	require.NoError(t, json.Unmarshal(req.body, &doc))
	assert.Equal(t, "vehicle", doc.Kind)
	assert.Equal(t, "X-wing", doc.Name)
	assert.Equal(t, float64(1), doc.Attributes["passengers"])
}

func TestSyncEventDeletesDocument(t *testing.T) {
	index, requests := fakeES(t, map[string]int{http.MethodDelete: http.StatusNotFound})

	event, err := model.NewCatalogEvent(model.EventDeleted, &model.Planet{ID: 4, PlanetName: "Alderaan"})
	require.NoError(t, err)

	// 文档已不存在时视为成功
	require.NoError(t, index.Sync(context.Background(), event))
	require.Len(t, *requests, 1)
	assert.Equal(t, http.MethodDelete, (*requests)[0].method)
	assert.Equal(t, "/catalog/_doc/planet-4", (*requests)[0].path)
}

func TestEnsureCreatesMissingIndex(t *testing.T) {
	index, requests := fakeES(t, map[string]int{http.MethodHead: http.StatusNotFound})

	require.NoError(t, index.Ensure(context.Background()))
	require.Len(t, *requests, 2)
	assert.Equal(t, http.MethodPut, (*requests)[1].method)
	assert.Equal(t, "/catalog", (*requests)[1].path)
	assert.Contains(t, string((*requests)[1].body), `"kind": {"type": "keyword"}`)
}

func TestEnsureSkipsExistingIndex(t *testing.T) {
	index, requests := fakeES(t, nil)

	require.NoError(t, index.Ensure(context.Background()))
	assert.Len(t, *requests, 1)
}

func TestNormalizeHosts(t *testing.T) {
	assert.Equal(t, []string{"http://es:9200", "https://secure:9200"},
		normalizeHosts([]string{" es:9200", "", "https://secure:9200"}))
}
