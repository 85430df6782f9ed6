package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mergington-hs/activities/events"
)

// defaultHeartbeat is the idle keep-alive interval for event streams.
const defaultHeartbeat = 15 * time.Second

// handleRosterEvents handles GET /activities/{name}/events as an SSE stream
// of roster changes for one activity.
func (s *Server) handleRosterEvents(w http.ResponseWriter, r *http.Request, name string) {
	if s.feed == nil {
		s.sendError(w, http.StatusNotFound, "Event feed is not enabled")
		return
	}
	if _, err := s.store.Get(r.Context(), name); err != nil {
		s.sendStoreError(w, err)
		return
	}

	ch, cancel := s.feed.Subscribe()
	defer cancel()

	if err := streamRoster(r.Context(), w, name, ch, defaultHeartbeat); err != nil {
		s.log.Warn("roster stream ended", zap.String("activity", name), zap.Error(err))
	}
}

// streamRoster writes roster events for one activity over SSE.
// - Frames carry the event ID so clients can detect duplicates
// - Sends heartbeat comments ": ping" at the heartbeat interval
// - Returns when the context ends or the feed closes
func streamRoster(
	ctx context.Context,
	w http.ResponseWriter,
	activity string,
	ch <-chan *events.Event,
	heartbeatInterval time.Duration,
) error {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("stream unsupported")
	}
	flusher.Flush()

	if heartbeatInterval <= 0 {
		heartbeatInterval = defaultHeartbeat
	}
	hb := time.NewTicker(heartbeatInterval)
	defer hb.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, open := <-ch:
			if !open {
				return nil
			}
			if ev.Activity != activity {
				continue
			}
			b, _ := json.Marshal(ev)
			fmt.Fprintf(w, "id: %s\n", ev.ID)
			fmt.Fprintf(w, "event: %s\n", string(ev.Type))
			fmt.Fprintf(w, "data: %s\n\n", string(b))
			flusher.Flush()
		case <-hb.C:
			fmt.Fprintf(w, ": ping\n\n")
			flusher.Flush()
		}
	}
}
