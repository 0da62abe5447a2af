package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphrag/internal/dataset"
	"github.com/persistorai/graphrag/internal/graph"
	"github.com/persistorai/graphrag/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

func testService() *service.GraphService {
	return service.NewGraphService(graph.Build(dataset.Default()), testLogger(), service.Options{MaxDepth: 5})
}

// doRequest performs an HTTP request against the handler and returns the recorder.
func doRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, http.NoBody)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}
