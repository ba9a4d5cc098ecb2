package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/recordvault-backend/internal/platform/ctxutil"
)

func TestAttachTraceContextGeneratesIDs(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(AttachTraceContext())
	var seen *ctxutil.TraceData
	r.GET("/ping", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if seen == nil || seen.TraceID == "" || seen.RequestID == "" {
		t.Fatalf("trace data not attached: got=%+v", seen)
	}
	if got := rec.Header().Get("X-Request-Id"); got != seen.RequestID {
		t.Fatalf("request id header: got=%q want=%q", got, seen.RequestID)
	}
	if got := rec.Header().Get("X-Trace-Id"); got != seen.TraceID {
		t.Fatalf("trace id header: got=%q want=%q", got, seen.TraceID)
	}
}

func TestAttachTraceContextKeepsCallerRequestID(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-Id", "caller-supplied")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != "caller-supplied" {
		t.Fatalf("request id header: got=%q want=%q", got, "caller-supplied")
	}
}
