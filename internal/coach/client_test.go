// ABOUTME: Tests for the coach HTTP client and its offline fallback.
package coach

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAskPostsMessageAndReadsReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/chat" {
			t.Errorf("request mismatch: %s %s", r.Method, r.URL.Path)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request failed: %v", err)
		}
		if req.Message != "how much sleep do I need?" {
			t.Errorf("message mismatch: got %q", req.Message)
		}
		json.NewEncoder(w).Encode(chatResponse{Reply: "Aim for eight hours."})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	reply, err := c.Ask(context.Background(), "how much sleep do I need?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if reply != "Aim for eight hours." {
		t.Errorf("reply mismatch: got %q", reply)
	}
}

func TestAskRejectsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	if _, err := c.Ask(context.Background(), "hi"); err == nil {
		t.Fatal("expected error on 502 response")
	} else if !strings.Contains(err.Error(), "502") {
		t.Errorf("error missing status: %v", err)
	}
}

func TestAskWithFallbackDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force a connection failure

	c := NewClient(srv.URL, nil)
	if got := c.AskWithFallback(context.Background(), "hi"); got != FallbackReply {
		t.Errorf("fallback mismatch: got %q", got)
	}
}

func TestConversationRecordsBothSides(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse{Reply: "Sounds good."})
	}))
	defer srv.Close()

	conv := NewConversation(NewClient(srv.URL, nil))
	reply := conv.Send(context.Background(), "planning a deload week")
	if reply.Text != "Sounds good." {
		t.Errorf("reply mismatch: got %q", reply.Text)
	}

	msgs := conv.Messages()
	if len(msgs) != 2 {
		t.Fatalf("message count mismatch: got %d, want 2", len(msgs))
	}
	if msgs[0].Role != RoleUser || msgs[1].Role != RoleCoach {
		t.Errorf("role order mismatch: %q then %q", msgs[0].Role, msgs[1].Role)
	}
	if msgs[0].ID == "" || msgs[0].ID == msgs[1].ID {
		t.Error("message ids not unique")
	}
}
