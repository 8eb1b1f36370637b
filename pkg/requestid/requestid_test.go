package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionguard/sessionguard/pkg/requestid"
)

func serve(t *testing.T, headerID string) (seen string, rec *httptest.ResponseRecorder) {
	t.Helper()

	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if headerID != "" {
		req.Header.Set(requestid.Header, headerID)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return seen, rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates id when absent", func(t *testing.T) {
		t.Parallel()

		seen, rec := serve(t, "")
		require.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(requestid.Header))
	})

	t.Run("reuses valid client id", func(t *testing.T) {
		t.Parallel()

		seen, rec := serve(t, "req-abc_123")
		assert.Equal(t, "req-abc_123", seen)
		assert.Equal(t, "req-abc_123", rec.Header().Get(requestid.Header))
	})

	t.Run("replaces invalid client ids", func(t *testing.T) {
		t.Parallel()

		invalid := []string{
			"has spaces",
			"slash/id",
			"<script>alert(1)</script>",
			strings.Repeat("a", 200),
		}

		for _, id := range invalid {
			seen, rec := serve(t, id)
			assert.NotEqual(t, id, seen)
			assert.NotEmpty(t, rec.Header().Get(requestid.Header))
		}
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := requestid.WithContext(context.Background(), "test-id")
	assert.Equal(t, "test-id", requestid.FromContext(ctx))
	assert.Empty(t, requestid.FromContext(context.Background()))

	attr := requestid.Attr(ctx)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "test-id", attr.Value.String())
}
