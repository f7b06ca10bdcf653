package vision

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T) string {
	t.Helper()
	path := t.TempDir() + "/puzzle.png"
	require.NoError(t, os.WriteFile(path, []byte("not really a png"), 0o644))
	return path
}

func TestExtract(t *testing.T) {
	puzzle := strings.Repeat(".", 80) + "8"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		_, _, err := r.FormFile("image")
		require.NoError(t, err)
		w.Write([]byte(puzzle + "\n"))
	}))
	defer srv.Close()

	e := NewHTTPExtractor(srv.URL)
	got, err := e.Extract(context.Background(), writeImage(t))
	require.NoError(t, err)
	assert.Equal(t, puzzle, got)
}

func TestExtractRejectedImage(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "no grid found", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	e := NewHTTPExtractor(srv.URL)
	_, err := e.Extract(context.Background(), writeImage(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtract)
	assert.Contains(t, err.Error(), "no grid found")
	// a rejection is permanent, not retried
	assert.Equal(t, int32(1), calls.Load())
}

func TestExtractRetriesServerErrors(t *testing.T) {
	puzzle := strings.Repeat("0", 81)
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "warming up", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(puzzle))
	}))
	defer srv.Close()

	e := NewHTTPExtractor(srv.URL)
	got, err := e.Extract(context.Background(), writeImage(t))
	require.NoError(t, err)
	assert.Equal(t, puzzle, got)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestExtractGivesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := NewHTTPExtractor(srv.URL)
	e.maxWait = 50 * time.Millisecond
	_, err := e.Extract(context.Background(), writeImage(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtract)
}
