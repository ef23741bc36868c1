package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/rikimaru/internal/config"
	"github.com/taigrr/rikimaru/internal/github"
	"github.com/taigrr/rikimaru/internal/host"
)

const dfsSource = "void dfs(int u) {\n    visited[u] = true;\n}\n"

func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/search/code":
			if r.URL.RawQuery != "q=dfs+in:file+repo:OpenGenus/cosmos" {
				t.Errorf("search query = %q", r.URL.RawQuery)
			}
			if _, _, ok := r.BasicAuth(); !ok {
				t.Error("search request is not authenticated")
			}
			w.Write([]byte(`{"total_count":1,"items":[{"name":"dfs.cpp","path":"code/graph_algorithms/src/dfs/dfs.cpp",` +
				`"html_url":"https://github.com/OpenGenus/cosmos/blob/master/code/graph_algorithms/src/dfs/dfs.cpp",` +
				`"url":"` + srv.URL + `/repos/OpenGenus/cosmos/contents/code/graph_algorithms/src/dfs/dfs.cpp"}]}`))
		case strings.HasPrefix(r.URL.Path, "/repos/"):
			if _, _, ok := r.BasicAuth(); !ok {
				t.Error("metadata request is not authenticated")
			}
			w.Write([]byte(`{"name":"dfs.cpp","download_url":"` + srv.URL + `/raw/dfs.cpp"}`))
		case r.URL.Path == "/raw/dfs.cpp":
			if _, _, ok := r.BasicAuth(); ok {
				t.Error("raw request must not carry credentials")
			}
			w.Write([]byte(dfsSource))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSearch_EndToEnd(t *testing.T) {
	srv := upstream(t)

	cfg := config.Default()
	cfg.API.BaseURL = srv.URL
	cfg.User.GitHub = config.GitHub{Name: "octocat", PersonalToken: "ghp_test"}

	h := host.NewScripted("dfs.cpp located at: cosmos/code/graph_algorithms/src/dfs/dfs.cpp")
	client := github.New(cfg.Credentials())
	p := New(cfg, h, client, zerolog.Nop())

	out, err := p.Search(context.Background(), "dfs")
	require.NoError(t, err)
	assert.True(t, out.Found)

	panels := h.Panels()
	require.Len(t, panels, 1)
	assert.Equal(t, "Rikimaru found dfs.cpp", panels[0].Title)
	assert.Contains(t, panels[0].HTML, `<pre style="word-wrap: break-word; white-space: pre-wrap;">`+dfsSource+`</pre>`)
	assert.Empty(t, h.Messages())
}

func TestSearch_EndToEndDismissed(t *testing.T) {
	srv := upstream(t)

	cfg := config.Default()
	cfg.API.BaseURL = srv.URL
	cfg.User.GitHub = config.GitHub{Name: "octocat", PersonalToken: "ghp_test"}

	h := host.NewScripted("")
	p := New(cfg, h, github.New(cfg.Credentials()), zerolog.Nop())

	out, err := p.Search(context.Background(), "dfs")
	require.NoError(t, err)
	assert.False(t, out.Found)
	assert.Len(t, h.Offered(), 1)
	assert.Empty(t, h.Panels())
}
