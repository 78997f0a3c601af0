package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	t.Run("HeaderPresent", func(t *testing.T) {
		var got *int64
		handler := Identity(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = UserIDFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", "7")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, got)
		assert.Equal(t, int64(7), *got)
	})

	t.Run("HeaderAbsent", func(t *testing.T) {
		var got *int64
		handler := Identity(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = UserIDFromContext(r.Context())
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Nil(t, got)
	})

	t.Run("MalformedHeaderIgnored", func(t *testing.T) {
		var got *int64
		handler := Identity(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = UserIDFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", "abc")
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Nil(t, got)
	})
}

func TestRequestID(t *testing.T) {
	t.Run("GeneratesWhenMissing", func(t *testing.T) {
		var got string
		handler := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = RequestIDFromContext(r.Context())
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, got)
		assert.Equal(t, got, w.Header().Get(RequestIDHeader))
	})

	t.Run("PreservesIncoming", func(t *testing.T) {
		var got string
		handler := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = RequestIDFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "trace-123")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, "trace-123", got)
		assert.Equal(t, "trace-123", w.Header().Get(RequestIDHeader))
	})
}
