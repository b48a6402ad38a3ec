package events_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostguard/frostguard/internal/event"
	"github.com/frostguard/frostguard/internal/http/events"
)

func readFrame(t *testing.T, r *bufio.Reader) []string {
	t.Helper()

	var lines []string

	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)

		line = strings.TrimRight(line, "\n")
		if line == "" {
			return lines
		}

		lines = append(lines, line)
	}
}

func TestHandler_StreamsChanges(t *testing.T) {
	broker := event.NewBroker()
	srv := httptest.NewServer(events.NewHandler(broker))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	body := bufio.NewReader(resp.Body)
	assert.Equal(t, []string{"event: ready", "data: {}"}, readFrame(t, body))

	id := uuid.New()
	broker.Publish(ctx, event.Change{Entity: "maintenance", Action: event.ActionInsert, ID: id})

	frame := readFrame(t, body)
	require.Len(t, frame, 2)
	assert.Equal(t, "event: change", frame[0])
	assert.Contains(t, frame[1], `"entity":"maintenance"`)
	assert.Contains(t, frame[1], id.String())
}

func TestHandler_NoBroker(t *testing.T) {
	rec := httptest.NewRecorder()
	events.NewHandler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
