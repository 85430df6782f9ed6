package server

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mergington-hs/activities/events"
	"github.com/mergington-hs/activities/registry"
)

func TestStreamRoster_WritesFrames(t *testing.T) {
	matching := events.New(events.TypeSignup, "Chess Club", "sse@mergington.edu")
	other := events.New(events.TypeSignup, "Art Club", "other@mergington.edu")

	ch := make(chan *events.Event, 2)
	ch <- matching
	ch <- other
	close(ch)

	w := httptest.NewRecorder()
	err := streamRoster(context.Background(), w, "Chess Club", ch, time.Minute)
	if err != nil {
		t.Fatalf("streamRoster returned error: %v", err)
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("expected text/event-stream content type, got %q", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "id: "+matching.ID) {
		t.Error("expected event ID frame in stream")
	}
	if !strings.Contains(body, "event: signup") {
		t.Error("expected signup event frame in stream")
	}
	if !strings.Contains(body, "sse@mergington.edu") {
		t.Error("expected event payload in stream")
	}
	if strings.Contains(body, "other@mergington.edu") {
		t.Error("expected events for other activities to be filtered out")
	}
}

func TestStreamRoster_Heartbeat(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	ch := make(chan *events.Event)
	w := httptest.NewRecorder()
	if err := streamRoster(ctx, w, "Chess Club", ch, 10*time.Millisecond); err != nil {
		t.Fatalf("streamRoster returned error: %v", err)
	}

	if !strings.Contains(w.Body.String(), ": ping") {
		t.Error("expected heartbeat comment in idle stream")
	}
}

func TestStreamRoster_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := make(chan *events.Event)
	w := httptest.NewRecorder()

	done := make(chan error, 1)
	go func() { done <- streamRoster(ctx, w, "Chess Club", ch, time.Minute) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("streamRoster returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("streamRoster did not return after context cancellation")
	}
}

func TestRosterEvents_FeedDisabled(t *testing.T) {
	store := registry.NewInMemoryStore(registry.DefaultActivities())
	server, err := New(Config{Store: store, Port: 8080})
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/activities/Chess%20Club/events", nil)
	w := httptest.NewRecorder()
	server.handleActivityAction(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	if detail := decodeDetail(t, w); !strings.Contains(detail, "not enabled") {
		t.Errorf("expected feed-disabled detail, got %q", detail)
	}
}

func TestRosterEvents_UnknownActivity(t *testing.T) {
	server, _, _ := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/activities/Nonexistent%20Activity/events", nil)
	w := httptest.NewRecorder()
	server.handleActivityAction(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	if detail := decodeDetail(t, w); !strings.Contains(detail, "not found") {
		t.Errorf("expected not-found detail, got %q", detail)
	}
}

func TestRosterEvents_EndToEnd(t *testing.T) {
	server, _, pub := setupTestServer(t)

	ts := httptest.NewServer(server.httpServer.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/activities/Chess%20Club/events")
	if err != nil {
		t.Fatalf("failed to connect to stream: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	// The subscription is established inside the handler, so keep
	// publishing until the reader sees a frame.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case <-stop:
				return
			case <-time.After(20 * time.Millisecond):
				ev := events.New(events.TypeSignup, "Chess Club", "live@mergington.edu")
				_ = pub.Publish(context.Background(), ev)
			}
		}
	}()

	reader := bufio.NewReader(resp.Body)
	deadline := time.After(5 * time.Second)
	lines := make(chan string, 1)
	go func() {
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			if strings.HasPrefix(line, "data: ") {
				lines <- line
				return
			}
		}
	}()

	select {
	case line := <-lines:
		if !strings.Contains(line, "live@mergington.edu") {
			t.Errorf("unexpected data frame: %q", line)
		}
		if !strings.Contains(line, "Chess Club") {
			t.Errorf("expected activity in data frame: %q", line)
		}
	case <-deadline:
		t.Fatal("timed out waiting for data frame")
	}
}
