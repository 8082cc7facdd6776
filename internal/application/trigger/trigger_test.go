package trigger

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altuslabsxyz/token-launcher/internal/application/ports"
	"github.com/altuslabsxyz/token-launcher/internal/domain/common"
	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
	"github.com/altuslabsxyz/token-launcher/internal/domain/workflow"
	"github.com/altuslabsxyz/token-launcher/internal/infrastructure/github"
)

var testRequest = token.Request{
	WalletAddress: "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",
	Network:       token.NetworkDevnet,
	Name:          "Test Token",
	Symbol:        "TST",
	InitialSupply: 1000,
	Decimals:      6,
}

var testConfig = Config{
	Owner:    "acme",
	Repo:     "tokens",
	Workflow: "create-token.yml",
	Ref:      "main",
}

func fixedID() string { return "sub-123" }

func newServerAdapter(t *testing.T, handler http.HandlerFunc) *github.Adapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := github.NewClient(github.WithBaseURL(server.URL), github.WithOwnerRepo("acme", "tokens"))
	return github.NewAdapter(client)
}

func TestTrigger_DispatchStarted(t *testing.T) {
	var calls int32
	var inputs map[string]string
	adapter := newServerAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		var body struct {
			Ref    string            `json:"ref"`
			Inputs map[string]string `json:"inputs"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "main", body.Ref)
		inputs = body.Inputs
		w.WriteHeader(http.StatusNoContent)
	})

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	client := NewClient(adapter, testConfig, WithIDGenerator(fixedID), WithClock(&ports.InstantClock{Fixed: now}))

	out := client.Trigger(context.Background(), testRequest)
	require.Equal(t, OutcomeStarted, out.Kind, "err: %v", out.Err)
	assert.NoError(t, out.Err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	assert.Equal(t, "sub-123", out.Handle.SubmissionID)
	assert.Equal(t, now, out.Handle.TriggeredAt)
	assert.Equal(t, workflow.TriggerDispatch, out.Handle.Kind)
	assert.False(t, out.Handle.HasRun())

	assert.Equal(t, "sub-123", inputs["submission_id"])
	assert.Equal(t, "TST", inputs["token_symbol"])
	assert.Equal(t, "1000", inputs["initial_supply"])
	assert.Equal(t, "devnet", inputs["network"])
}

func TestTrigger_NotFoundFails(t *testing.T) {
	var calls int32
	adapter := newServerAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	})

	out := NewClient(adapter, testConfig).Trigger(context.Background(), testRequest)
	require.Equal(t, OutcomeFailed, out.Kind)
	var nf *github.NotFoundError
	require.True(t, errors.As(out.Err, &nf))
	assert.Contains(t, common.GetUserMessage(out.Err), "Repository not found")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestTrigger_TransportFailureSimulates(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	client := github.NewClient(github.WithBaseURL("http://"+addr), github.WithOwnerRepo("acme", "tokens"))
	out := NewClient(github.NewAdapter(client), testConfig).Trigger(context.Background(), testRequest)

	assert.Equal(t, OutcomeSimulated, out.Kind)
	assert.True(t, common.IsUnreachable(out.Err))
	assert.Equal(t, testRequest, out.Handle.Request)
}

func TestTrigger_CancelledIsNotSimulated(t *testing.T) {
	adapter := newServerAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := NewClient(adapter, testConfig).Trigger(ctx, testRequest)
	assert.Equal(t, OutcomeFailed, out.Kind)
	assert.ErrorIs(t, out.Err, context.Canceled)
}

func TestTrigger_IssueMode(t *testing.T) {
	var got struct {
		Title  string   `json:"title"`
		Body   string   `json:"body"`
		Labels []string `json:"labels"`
	}
	adapter := newServerAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/tokens/issues", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"number": 12, "html_url": "https://github.com/acme/tokens/issues/12"}`))
	})

	cfg := testConfig
	cfg.Kind = workflow.TriggerIssue
	out := NewClient(adapter, cfg, WithIDGenerator(fixedID)).Trigger(context.Background(), testRequest)

	require.Equal(t, OutcomeStarted, out.Kind, "err: %v", out.Err)
	assert.Equal(t, 12, out.Handle.IssueNumber)
	assert.Equal(t, workflow.TriggerIssue, out.Handle.Kind)
	assert.Equal(t, "Create Token: Test Token (TST)", got.Title)
	assert.Equal(t, []string{IssueLabel}, got.Labels)
	assert.Contains(t, got.Body, "```json")
	assert.Contains(t, got.Body, `"submission_id": "sub-123"`)
}

func TestIssueBody_EmbedsRequest(t *testing.T) {
	body, err := IssueBody(testRequest, "abc")
	require.NoError(t, err)

	start := strings.Index(body, "```json\n") + len("```json\n")
	end := strings.LastIndex(body, "\n```")
	require.True(t, start > 0 && end > start)

	var decoded struct {
		token.Request
		SubmissionID string `json:"submission_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body[start:end]), &decoded))
	assert.Equal(t, testRequest, decoded.Request)
	assert.Equal(t, "abc", decoded.SubmissionID)
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "started", OutcomeStarted.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "simulated", OutcomeSimulated.String())
}
