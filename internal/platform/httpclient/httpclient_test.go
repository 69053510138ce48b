package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string, retries int) *Client {
	t.Helper()
	c, err := New(Options{
		BaseURL:     url,
		Timeout:     2 * time.Second,
		MaxRetries:  retries,
		BaseBackoff: time.Millisecond,
		Headers:     map[string]string{"X-Api-Key": "secret"},
	})
	require.NoError(t, err)
	return c
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)

	_, err = New(Options{BaseURL: "::not a url"})
	require.Error(t, err)
}

func TestDoJSON_RetriesServerErrors(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL, 3)

	var out struct {
		OK bool `json:"ok"`
	}
	err := c.DoJSON(context.Background(), Request{Method: http.MethodPost, Path: "/x", Body: map[string]string{"a": "b"}}, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDo_ClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL, 5)

	_, err := c.Do(context.Background(), Request{Path: "/x"})
	require.Error(t, err)

	var herr *HTTPError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, http.StatusUnauthorized, herr.StatusCode)
	assert.Contains(t, herr.Body, "bad key")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDo_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL, 2)

	_, err := c.Do(context.Background(), Request{Path: "/x"})
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestPoll_StopsWhenDone(t *testing.T) {
	n := 0
	err := Poll(context.Background(), time.Millisecond, 2*time.Millisecond, func(ctx context.Context) (bool, error) {
		n++
		return n == 3, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPoll_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := Poll(context.Background(), time.Millisecond, time.Millisecond, func(ctx context.Context) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestPoll_RespectsContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Poll(ctx, time.Millisecond, 2*time.Millisecond, func(ctx context.Context) (bool, error) {
		return false, nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
