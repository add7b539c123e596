package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asvsgen/pkg/asvs"
)

func TestFetchReturnsBody(t *testing.T) {
	const csvBody = "chapter_id,chapter_name,section_id,section_name,req_id,req_description,L\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(csvBody))
	}))
	defer srv.Close()

	body, err := New(0).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, csvBody, string(body))
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := New(0).Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var retrievalErr *asvs.RetrievalError
	require.True(t, errors.As(err, &retrievalErr))
	assert.Equal(t, http.StatusNotFound, retrievalErr.Status)
	assert.Equal(t, srv.URL, retrievalErr.URL)
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := New(50 * time.Millisecond).Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var retrievalErr *asvs.RetrievalError
	require.True(t, errors.As(err, &retrievalErr))
	assert.Zero(t, retrievalErr.Status)
}

func TestFetchContentTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 128))
	}))
	defer srv.Close()

	f := New(0)
	f.maxContentSize = 64

	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content too large")
}

func TestFetchUnreachableHost(t *testing.T) {
	// Reserved TEST-NET address, nothing listens there.
	_, err := New(time.Second).Fetch(context.Background(), "http://192.0.2.1:9/catalog.csv")
	require.Error(t, err)

	var retrievalErr *asvs.RetrievalError
	require.True(t, errors.As(err, &retrievalErr))
}
