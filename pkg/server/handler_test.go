package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kaelux/assistant/pkg/assistant"
	"github.com/kaelux/assistant/pkg/model"
)

type fakeResponder struct {
	reply    *assistant.Reply
	err      error
	messages []string
}

func (f *fakeResponder) Respond(ctx context.Context, message string) (*assistant.Reply, error) {
	f.messages = append(f.messages, message)
	return f.reply, f.err
}

func newTestServer(responder Responder, token string) *httptest.Server {
	srv := New(&Config{AdminToken: token}, responder, nil, zerolog.Nop())
	return httptest.NewServer(srv.Router())
}

func postChat(t *testing.T, url, body, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url+"/api/chat", strings.NewReader(body))
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("sending request: %v", err)
	}
	return resp
}

func decodeError(t *testing.T, resp *http.Response) (errMsg, details string) {
	t.Helper()
	defer resp.Body.Close()
	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return body.Error, body.Details
}

func TestChatSuccess(t *testing.T) {
	responder := &fakeResponder{reply: &assistant.Reply{
		Text:          "the answer",
		UsedTools:     []string{assistant.ToolSearch, assistant.ToolScrape},
		UsedWebSearch: true,
		UsedFirecrawl: true,
	}}
	ts := newTestServer(responder, "")
	defer ts.Close()

	resp := postChat(t, ts.URL, `{"message":"what is new?"}`, "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	var body struct {
		Response      string   `json:"response"`
		UsedTools     []string `json:"usedTools"`
		UsedWebSearch bool     `json:"usedWebSearch"`
		UsedGitMCP    bool     `json:"usedGitMCP"`
		UsedFirecrawl bool     `json:"usedFirecrawl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Response != "the answer" {
		t.Fatalf("unexpected response: %q", body.Response)
	}
	if len(body.UsedTools) != 2 || !body.UsedWebSearch || !body.UsedFirecrawl || body.UsedGitMCP {
		t.Fatalf("unexpected tool metadata: %+v", body)
	}
	if len(responder.messages) != 1 || responder.messages[0] != "what is new?" {
		t.Fatalf("unexpected messages: %v", responder.messages)
	}
}

func TestChatMissingMessage(t *testing.T) {
	responder := &fakeResponder{}
	ts := newTestServer(responder, "")
	defer ts.Close()

	resp := postChat(t, ts.URL, `{}`, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if errMsg, _ := decodeError(t, resp); errMsg != "Message is required" {
		t.Fatalf("unexpected error: %q", errMsg)
	}
	if len(responder.messages) != 0 {
		t.Fatalf("responder should not be called")
	}
}

func TestChatInvalidBody(t *testing.T) {
	ts := newTestServer(&fakeResponder{}, "")
	defer ts.Close()

	resp := postChat(t, ts.URL, `{not json`, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if errMsg, _ := decodeError(t, resp); errMsg != "Invalid request body" {
		t.Fatalf("unexpected error: %q", errMsg)
	}
}

func TestChatUnauthorized(t *testing.T) {
	responder := &fakeResponder{reply: &assistant.Reply{Text: "ok"}}
	ts := newTestServer(responder, "secret")
	defer ts.Close()

	resp := postChat(t, ts.URL, `{"message":"hi"}`, "wrong")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	resp.Body.Close()
	if len(responder.messages) != 0 {
		t.Fatalf("responder should not be called")
	}

	resp = postChat(t, ts.URL, `{"message":"hi"}`, "secret")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("valid token rejected: %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestChatModelNotConfigured(t *testing.T) {
	ts := newTestServer(&fakeResponder{err: model.ErrNotConfigured}, "")
	defer ts.Close()

	resp := postChat(t, ts.URL, `{"message":"hi"}`, "")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if errMsg, _ := decodeError(t, resp); errMsg != "GOOGLE_AI_API_KEY is required" {
		t.Fatalf("unexpected error: %q", errMsg)
	}
}

func TestChatGenerationFailure(t *testing.T) {
	ts := newTestServer(&fakeResponder{err: errors.New("model unavailable")}, "")
	defer ts.Close()

	resp := postChat(t, ts.URL, `{"message":"hi"}`, "")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	errMsg, details := decodeError(t, resp)
	if errMsg != "Failed to generate response" || details != "model unavailable" {
		t.Fatalf("unexpected error payload: %q / %q", errMsg, details)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(&fakeResponder{reply: &assistant.Reply{}}, "secret")
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("sending request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health should not require auth: %d", resp.StatusCode)
	}
}

func TestTokenAuthorizer(t *testing.T) {
	open := TokenAuthorizer{}
	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	if !open.Authorized(req) {
		t.Fatalf("empty token should leave the gate open")
	}

	gated := TokenAuthorizer{Token: "secret"}
	if gated.Authorized(req) {
		t.Fatalf("missing header should be rejected")
	}
	req.Header.Set("Authorization", "Bearer secret")
	if !gated.Authorized(req) {
		t.Fatalf("valid token rejected")
	}
	req.Header.Set("Authorization", "Bearer nope")
	if gated.Authorized(req) {
		t.Fatalf("wrong token accepted")
	}
}
