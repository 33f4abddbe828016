package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_Success(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<rss></rss>"))
	}))
	defer testServer.Close()

	data, err := New(nil).Fetch(context.Background(), testServer.URL)

	require.NoError(t, err)
	assert.Equal(t, "<rss></rss>", string(data))
}

func TestFetch_AcceptsAny2xx(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNonAuthoritativeInfo)
		w.Write([]byte("ok"))
	}))
	defer testServer.Close()

	data, err := New(testServer.Client()).Fetch(context.Background(), testServer.URL)

	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}

func TestFetch_StatusErrors(t *testing.T) {
	for _, status := range []int{http.StatusMovedPermanently, http.StatusNotFound, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// 301 without a Location header is returned to the caller unfollowed
				w.WriteHeader(status)
			}))
			defer testServer.Close()

			data, err := New(nil).Fetch(context.Background(), testServer.URL)

			require.Error(t, err)
			assert.Nil(t, data)

			var netErr *NetworkError
			require.True(t, errors.As(err, &netErr))
			assert.Equal(t, status, netErr.StatusCode)
			assert.Equal(t, testServer.URL, netErr.URL)
		})
	}
}

func TestFetch_InvalidURL(t *testing.T) {
	data, err := New(nil).Fetch(context.Background(), "invalid://url")

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Zero(t, netErr.StatusCode)
	assert.Nil(t, data)
}

func TestFetch_Unreachable(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := testServer.URL
	testServer.Close()

	_, err := New(nil).Fetch(context.Background(), url)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Contains(t, err.Error(), "could not fetch url")
}

func TestFetch_ContextCancelled(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("slow response"))
	}))
	defer testServer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data, err := New(nil).Fetch(ctx, testServer.URL)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, data)
}

func TestFetch_Timeout(t *testing.T) {
	done := make(chan struct{})
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	}))
	defer testServer.Close()
	defer close(done)

	_, err := WithTimeout(50*time.Millisecond).Fetch(context.Background(), testServer.URL)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
}
