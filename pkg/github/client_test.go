package github

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

func TestListRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/ann/repos":
			assert.Equal(t, "5", r.URL.Query().Get("per_page"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"name":"devlink","html_url":"https://github.com/ann/devlink","stargazers_count":3}]`))
		case "/users/ghost/repos":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 2*time.Second, 0)

	t.Run("decodes the listing", func(t *testing.T) {
		repos, err := c.ListRepos(context.Background(), "ann", 5)
		require.NoError(t, err)
		require.Len(t, repos, 1)
		assert.Equal(t, "devlink", repos[0].Name)
		assert.Equal(t, "https://github.com/ann/devlink", repos[0].HTMLURL)
		assert.Equal(t, 3, repos[0].Stars)
	})

	t.Run("404 maps to ErrUserNotFound", func(t *testing.T) {
		_, err := c.ListRepos(context.Background(), "ghost", 5)
		assert.True(t, errors.Is(err, ErrUserNotFound))
	})
}
