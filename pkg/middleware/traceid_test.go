package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func traceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})
	return r
}

func TestTraceIDGenerated(t *testing.T) {
	r := traceRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	header := w.Header().Get("X-Trace-ID")
	if _, err := uuid.Parse(header); err != nil {
		t.Fatalf("expected a generated uuid trace id, got %q: %v", header, err)
	}
	if w.Body.String() != header {
		t.Fatalf("context trace id %q does not match header %q", w.Body.String(), header)
	}
}

func TestTraceIDFromCallerIsKept(t *testing.T) {
	r := traceRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-ID", "gateway-7f3a")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get("X-Trace-ID") != "gateway-7f3a" {
		t.Fatalf("caller trace id not kept: %q", w.Header().Get("X-Trace-ID"))
	}
	if w.Body.String() != "gateway-7f3a" {
		t.Fatalf("caller trace id not set on context: %q", w.Body.String())
	}
}
