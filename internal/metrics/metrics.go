package metrics

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	vm "github.com/VictoriaMetrics/metrics"
)

// Metrics collects the server counters in an isolated set
type Metrics struct {
	set *vm.Set

	commands    *vm.Counter
	errors      *vm.Counter
	connections *vm.Counter
	clients     *vm.Counter
	rejected    *vm.Counter
}

// New registers the server metrics in a fresh set
func New() *Metrics {
	set := vm.NewSet()
	return &Metrics{
		set:         set,
		commands:    set.NewCounter("nisekv_commands_processed_total"),
		errors:      set.NewCounter("nisekv_command_errors_total"),
		connections: set.NewCounter("nisekv_connections_received_total"),
		clients:     set.NewCounter("nisekv_connected_clients"),
		rejected:    set.NewCounter("nisekv_unknown_commands_total"),
	}
}

// CommandProcessed records one executed command.
// name must be a registered command so the label set stays bounded
func (m *Metrics) CommandProcessed(name string, took time.Duration, failed bool) {
	cmd := strings.ToLower(name)

	m.commands.Inc()
	m.set.GetOrCreateCounter(fmt.Sprintf(`nisekv_command_calls_total{command=%q}`, cmd)).Inc()
	m.set.GetOrCreateHistogram(fmt.Sprintf(`nisekv_command_duration_seconds{command=%q}`, cmd)).Update(took.Seconds())

	if failed {
		m.errors.Inc()
		m.set.GetOrCreateCounter(fmt.Sprintf(`nisekv_command_failures_total{command=%q}`, cmd)).Inc()
	}
}

// UnknownCommand records a request for a command that is not registered
func (m *Metrics) UnknownCommand() {
	m.rejected.Inc()
	m.errors.Inc()
}

func (m *Metrics) ClientConnected() {
	m.connections.Inc()
	m.clients.Inc()
}

func (m *Metrics) ClientDisconnected() {
	m.clients.Dec()
}

func (m *Metrics) TotalCommands() uint64 { return m.commands.Get() }

func (m *Metrics) TotalErrors() uint64 { return m.errors.Get() }

func (m *Metrics) TotalConnections() uint64 { return m.connections.Get() }

func (m *Metrics) ConnectedClients() uint64 { return m.clients.Get() }

// WritePrometheus writes the set in the Prometheus text format.
// Process metrics are included when process is true
func (m *Metrics) WritePrometheus(w io.Writer, process bool) {
	m.set.WritePrometheus(w)
	if process {
		vm.WriteProcessMetrics(w)
	}
}

// Handler serves the metrics over HTTP
func (m *Metrics) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		m.WritePrometheus(w, true)
	})
}
