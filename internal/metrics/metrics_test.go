package metrics

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.CommandProcessed("GET", time.Millisecond, false)
	m.CommandProcessed("GET", time.Millisecond, true)
	m.CommandProcessed("SET", time.Millisecond, false)
	m.UnknownCommand()

	assert.Equal(t, uint64(3), m.TotalCommands())
	assert.Equal(t, uint64(2), m.TotalErrors())

	m.ClientConnected()
	m.ClientConnected()
	m.ClientDisconnected()
	assert.Equal(t, uint64(2), m.TotalConnections())
	assert.Equal(t, uint64(1), m.ConnectedClients())
}

func TestMetrics_WritePrometheus(t *testing.T) {
	m := New()
	m.CommandProcessed("GET", time.Millisecond, false)

	var buf bytes.Buffer
	m.WritePrometheus(&buf, false)

	out := buf.String()
	assert.Contains(t, out, `nisekv_command_calls_total{command="get"} 1`)
	assert.Contains(t, out, "nisekv_commands_processed_total 1")
	assert.NotContains(t, out, "process_")
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ClientConnected()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "nisekv_connected_clients 1")
}
