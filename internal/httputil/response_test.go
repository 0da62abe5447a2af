package httputil_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/persistorai/graphrag/internal/httputil"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		requestID string
	}{
		{name: "with request id", requestID: "rid-1"},
		{name: "without request id"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", func(c *gin.Context) {
				if tc.requestID != "" {
					c.Set("request_id", tc.requestID)
				}
				httputil.RespondError(c, http.StatusBadRequest, "invalid_request", "bad")
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", http.NoBody))

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}

			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}

			if body["code"] != "invalid_request" || body["message"] != "bad" {
				t.Errorf("unexpected body %v", body)
			}

			if _, ok := body["request_id"]; ok != (tc.requestID != "") {
				t.Errorf("request_id presence = %v, body %v", ok, body)
			}
		})
	}
}
