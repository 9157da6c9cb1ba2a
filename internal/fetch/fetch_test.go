package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("<html><body>page body</body></html>"))
	}))
	defer srv.Close()

	client := NewClient(nil)
	body, err := client.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, body, "page body")
}

func TestFetchErrors(t *testing.T) {
	t.Run("invalid URL", func(t *testing.T) {
		client := NewClient(nil)
		_, err := client.Fetch(context.Background(), "not a url")
		var fetchErr *Error
		require.ErrorAs(t, err, &fetchErr)
		assert.Contains(t, fetchErr.Message, "invalid URL")
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewClient(nil)
		_, err := client.Fetch(context.Background(), srv.URL)
		var fetchErr *Error
		require.ErrorAs(t, err, &fetchErr)
		assert.Contains(t, fetchErr.Message, "404")
	})

	t.Run("unreachable host", func(t *testing.T) {
		client := NewClient(nil)
		_, err := client.Fetch(context.Background(), "http://127.0.0.1:1/")
		var fetchErr *Error
		require.ErrorAs(t, err, &fetchErr)
	})

	t.Run("cancelled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("too late"))
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := NewClient(nil)
		_, err := client.Fetch(ctx, srv.URL)
		require.Error(t, err)
	})
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, shouldUseBrowser("<html></html>"))

	long := make([]byte, minRenderedLength+1)
	for i := range long {
		long[i] = 'x'
	}
	assert.False(t, shouldUseBrowser(string(long)))
}
