package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestID_Header(t *testing.T) {
	const incoming = "123e4567-e89b-12d3-a456-426614174000"
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "generated when absent"},
		{name: "kept when valid uuid", header: incoming, wantSame: true},
		{name: "replaced when invalid", header: "not-a-uuid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(RequestID())
			var seen string
			r.GET("/", func(c *gin.Context) {
				seen = c.GetString(RequestIDKey)
				c.String(200, "ok")
			})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got == "" || got != seen {
				t.Fatalf("header %q, context %q", got, seen)
			}
			if tt.wantSame != (got == tt.header) {
				t.Fatalf("header %q, incoming %q, wantSame=%v", got, tt.header, tt.wantSame)
			}
		})
	}
}
