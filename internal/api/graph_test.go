package api_test

import (
	"encoding/json"
	"net/http"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/persistorai/graphrag/internal/api"
	"github.com/persistorai/graphrag/internal/models"
)

func graphRouter() *gin.Engine {
	h := api.NewGraphHandler(testService(), testLogger())

	r := gin.New()
	r.GET("/entities", h.Entities)
	r.GET("/entities/:name/edges", h.Edges)
	r.GET("/stats", h.Stats)
	r.GET("/graph/subgraph/:start", h.Subgraph)
	r.POST("/graph/subgraph/batch", h.Batch)
	r.POST("/graph/context", h.Context)

	return r
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, body)
	}

	return v
}

func TestGraphHandler_Subgraph(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantCode  int
		wantFacts []models.Fact
	}{
		{
			name: "default depth", path: "/graph/subgraph/Alice", wantCode: http.StatusOK,
			wantFacts: []models.Fact{
				"Alice --[reports_to]--> Bob",
				"Bob --[leads]--> Project_X",
				"Bob --[leads]--> Project_Y",
			},
		},
		{name: "depth 1", path: "/graph/subgraph/Alice?depth=1", wantCode: http.StatusOK, wantFacts: []models.Fact{"Alice --[reports_to]--> Bob"}},
		{name: "depth 0", path: "/graph/subgraph/Alice?depth=0", wantCode: http.StatusOK, wantFacts: []models.Fact{}},
		{name: "negative depth", path: "/graph/subgraph/Alice?depth=-1", wantCode: http.StatusOK, wantFacts: []models.Fact{}},
		{name: "leaf", path: "/graph/subgraph/Project_X", wantCode: http.StatusOK, wantFacts: []models.Fact{}},
		{name: "unknown entity", path: "/graph/subgraph/Nobody", wantCode: http.StatusOK, wantFacts: []models.Fact{}},
		{name: "bad depth", path: "/graph/subgraph/Alice?depth=two", wantCode: http.StatusBadRequest},
		{name: "too deep", path: "/graph/subgraph/Alice?depth=6", wantCode: http.StatusBadRequest},
	}

	r := graphRouter()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, tc.path, "")
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, w.Code, w.Body.String())
			}

			if tc.wantCode != http.StatusOK {
				body := decode[map[string]string](t, w.Body.Bytes())
				if body["code"] != api.ErrCodeInvalidRequest {
					t.Errorf("expected code %q, got %q", api.ErrCodeInvalidRequest, body["code"])
				}
				return
			}

			res := decode[models.SubgraphResult](t, w.Body.Bytes())
			if !reflect.DeepEqual(res.Facts, tc.wantFacts) {
				t.Errorf("facts = %v, want %v", res.Facts, tc.wantFacts)
			}
		})
	}
}

func TestGraphHandler_Entities(t *testing.T) {
	w := doRequest(graphRouter(), http.MethodGet, "/entities", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decode[map[string][]string](t, w.Body.Bytes())
	if !reflect.DeepEqual(body["entities"], []string{"Alice", "Bob"}) {
		t.Errorf("entities = %v", body["entities"])
	}
}

func TestGraphHandler_Edges(t *testing.T) {
	r := graphRouter()

	w := doRequest(r, http.MethodGet, "/entities/Bob/edges", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	res := decode[models.EdgesResult](t, w.Body.Bytes())
	want := []models.Edge{{Relation: "leads", Target: "Project_X"}, {Relation: "leads", Target: "Project_Y"}}
	if !reflect.DeepEqual(res.Edges, want) {
		t.Errorf("edges = %v, want %v", res.Edges, want)
	}

	w = doRequest(r, http.MethodGet, "/entities/Nobody/edges", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unknown entity should not be an error, got %d", w.Code)
	}

	if res := decode[models.EdgesResult](t, w.Body.Bytes()); res.Edges == nil || len(res.Edges) != 0 {
		t.Errorf("expected empty edges, got %v", res.Edges)
	}
}

func TestGraphHandler_Stats(t *testing.T) {
	w := doRequest(graphRouter(), http.MethodGet, "/stats", "")

	if st := decode[models.Stats](t, w.Body.Bytes()); st.Entities != 2 || st.Edges != 3 {
		t.Errorf("stats = %+v", st)
	}
}

func TestGraphHandler_Batch(t *testing.T) {
	r := graphRouter()

	w := doRequest(r, http.MethodPost, "/graph/subgraph/batch",
		`{"queries":[{"start":"Alice","depth":1},{"start":"Bob"},{"start":"Project_Y"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decode[map[string][]models.SubgraphResult](t, w.Body.Bytes())
	results := body["results"]
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if results[0].Start != "Alice" || len(results[0].Facts) != 1 {
		t.Errorf("result 0 = %+v", results[0])
	}

	if results[1].Depth != 2 || len(results[1].Facts) != 2 {
		t.Errorf("result 1 = %+v", results[1])
	}

	if len(results[2].Facts) != 0 {
		t.Errorf("result 2 = %+v", results[2])
	}
}

func TestGraphHandler_BatchInvalid(t *testing.T) {
	r := graphRouter()

	for name, body := range map[string]string{
		"malformed":   `{"queries":`,
		"empty start": `{"queries":[{"start":""}]}`,
		"too deep":    `{"queries":[{"start":"Alice","depth":99}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			if w := doRequest(r, http.MethodPost, "/graph/subgraph/batch", body); w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestGraphHandler_Context(t *testing.T) {
	r := graphRouter()

	w := doRequest(r, http.MethodPost, "/graph/context", `{"query":"Who does Alice report to?","start":"Alice"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	res := decode[models.ContextResult](t, w.Body.Bytes())
	if res.Depth != 2 || len(res.Facts) != 3 || res.Answer == "" {
		t.Errorf("unexpected context %+v", res)
	}

	if w := doRequest(r, http.MethodPost, "/graph/context", `{"start":"Alice"}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing query: expected 400, got %d", w.Code)
	}

	if w := doRequest(r, http.MethodPost, "/graph/context", `{"query":"q","start":""}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing start: expected 400, got %d", w.Code)
	}
}
