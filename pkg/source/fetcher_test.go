package source

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchLocal(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "pics/cat.png", []byte{1, 2, 3}, 0644))

	f := NewFetcher(fs, zap.NewNop())
	bs, err := f.Fetch("pics/cat.png")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, bs)
}

func TestFetchLocalMissing(t *testing.T) {
	f := NewFetcher(afero.NewMemMapFs(), zap.NewNop())
	_, err := f.Fetch("nope.png")
	assert.Error(t, err)
}

func TestFetchURL(t *testing.T) {
	payload := []byte("fake image bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	f := NewFetcher(afero.NewMemMapFs(), zap.NewNop())
	bs, err := f.Fetch(srv.URL + "/cat.png")
	require.NoError(t, err)
	assert.Equal(t, payload, bs)
}

func TestFetchURLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFetcher(afero.NewMemMapFs(), zap.NewNop())
	_, err := f.Fetch(srv.URL + "/gone.png")
	assert.Error(t, err)
}
