package github

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altuslabsxyz/token-launcher/internal/application/ports"
	"github.com/altuslabsxyz/token-launcher/internal/domain/common"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(WithBaseURL(server.URL), WithOwnerRepo("acme", "tokens"))
}

func TestClient_DispatchWorkflow(t *testing.T) {
	var got dispatchRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/repos/acme/tokens/actions/workflows/create-token.yml/dispatches", r.URL.Path)
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.DispatchWorkflow(context.Background(), "create-token.yml", "main", map[string]string{"token_symbol": "TST"})
	require.NoError(t, err)
	assert.Equal(t, "main", got.Ref)
	assert.Equal(t, "TST", got.Inputs["token_symbol"])
}

func TestClient_CreateIssue(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/tokens/issues", r.URL.Path)
		var req issueRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"token-creation"}, req.Labels)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"number": 7, "html_url": "https://github.com/acme/tokens/issues/7"}`))
	})

	issue, err := client.CreateIssue(context.Background(), "Create Token", "body", []string{"token-creation"})
	require.NoError(t, err)
	assert.Equal(t, 7, issue.Number)
}

func TestClient_StatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		headers map[string]string
		check   func(t *testing.T, err error)
	}{
		{
			name:   "not found",
			status: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				var nf *NotFoundError
				require.True(t, errors.As(err, &nf))
				assert.Contains(t, nf.Error(), "Repository not found")
				assert.Contains(t, common.GetRecoveryHint(err), "acme/tokens")
			},
		},
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				var ae *AuthenticationError
				assert.True(t, errors.As(err, &ae))
			},
		},
		{
			name:    "rate limited",
			status:  http.StatusForbidden,
			headers: map[string]string{"X-RateLimit-Limit": "60", "X-RateLimit-Remaining": "0", "X-RateLimit-Reset": "1700000000"},
			check: func(t *testing.T, err error) {
				var rl *RateLimitError
				require.True(t, errors.As(err, &rl))
				assert.Equal(t, 60, rl.Limit)
				assert.Equal(t, time.Unix(1700000000, 0), rl.Reset)
			},
		},
		{
			name:   "forbidden without rate limit",
			status: http.StatusForbidden,
			check: func(t *testing.T, err error) {
				var ae *AuthenticationError
				assert.True(t, errors.As(err, &ae))
			},
		},
		{
			name:   "unprocessable",
			status: http.StatusUnprocessableEntity,
			check: func(t *testing.T, err error) {
				var ve *ValidationFailedError
				require.True(t, errors.As(err, &ve))
				assert.Contains(t, ve.Error(), "boom")
			},
		},
		{
			name:   "server error",
			status: http.StatusBadGateway,
			check: func(t *testing.T, err error) {
				var ae *APIError
				require.True(t, errors.As(err, &ae))
				assert.Equal(t, http.StatusBadGateway, ae.StatusCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"message": "boom"}`))
			})

			err := client.DispatchWorkflow(context.Background(), "wf.yml", "main", nil)
			require.Error(t, err)
			assert.False(t, IsNetworkError(err))
			assert.True(t, common.ShouldSilenceUsage(err))
			tt.check(t, err)
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	// Grab a free port and close it so nothing is listening.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	client := NewClient(WithBaseURL("http://"+addr), WithOwnerRepo("acme", "tokens"), WithTimeout(2*time.Second))

	err = client.DispatchWorkflow(context.Background(), "wf.yml", "main", nil)
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
}

func TestClient_CancelledContextIsNotNetworkError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.DispatchWorkflow(ctx, "wf.yml", "main", nil)
	require.Error(t, err)
	assert.False(t, IsNetworkError(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAdapter_RunsAndArtifacts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/acme/tokens/actions/workflows/create-token.yml/runs":
			assert.Equal(t, "workflow_dispatch", r.URL.Query().Get("event"))
			assert.Equal(t, "20", r.URL.Query().Get("per_page"))
			w.Write([]byte(`{"total_count":1,"workflow_runs":[{"id":42,"display_title":"Create TST abc","status":"queued","conclusion":null,"html_url":"https://github.com/acme/tokens/actions/runs/42"}]}`))
		case "/repos/acme/tokens/actions/runs/42":
			w.Write([]byte(`{"id":42,"status":"completed","conclusion":"success"}`))
		case "/repos/acme/tokens/actions/runs/42/artifacts":
			w.Write([]byte(`{"total_count":1,"artifacts":[{"id":1,"name":"token-info","size_in_bytes":512,"archive_download_url":"https://example.com/a.zip"}]}`))
		default:
			http.NotFound(w, r)
		}
	})
	adapter := NewAdapter(client)
	ctx := context.Background()

	runs, err := adapter.ListRuns(ctx, ports.RunQuery{Workflow: "create-token.yml", Event: "workflow_dispatch"})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, int64(42), runs[0].ID)
	assert.Empty(t, runs[0].Conclusion)

	run, err := adapter.GetRun(ctx, 42)
	require.NoError(t, err)
	assert.True(t, run.Succeeded())

	artifacts, err := adapter.ListArtifacts(ctx, 42)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "token-info", artifacts[0].Name)
	assert.Equal(t, "https://example.com/a.zip", artifacts[0].DownloadURL)
}

func TestClient_UserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token-launcher/1.2.3", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	client := NewClient(WithBaseURL(server.URL), WithOwnerRepo("acme", "tokens"), WithUserAgent("token-launcher/1.2.3"))
	require.NoError(t, client.DispatchWorkflow(context.Background(), "create-token.yml", "main", nil))
}
