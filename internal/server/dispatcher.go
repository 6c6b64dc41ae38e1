package server

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eternalApril/nisekv/internal/engine"
	"github.com/eternalApril/nisekv/internal/metrics"
	"github.com/eternalApril/nisekv/internal/resp"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Options configures a Dispatcher
type Options struct {
	RequirePass string           // clients must AUTH with it first (empty = no check)
	Metrics     *metrics.Metrics // nil = private set
	Logger      *zap.Logger      // nil = no logging
}

// Dispatcher resolves command names, validates arity and runs every command
// under one lock against the database selected by the calling peer
type Dispatcher struct {
	commands map[string]command // Registry of available commands (the key is the command name in uppercase)
	registry *engine.Registry
	engine   *engine.Engine
	mu       sync.Mutex

	passHash []byte // bcrypt hash of requirepass
	peers    *xsync.MapOf[uint64, *Peer]
	nextID   atomic.Uint64
	started  time.Time

	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewDispatcher registers every command on top of the registry
func NewDispatcher(registry *engine.Registry, opts Options) (*Dispatcher, error) {
	d := &Dispatcher{
		commands: make(map[string]command),
		registry: registry,
		engine:   engine.New(registry),
		peers:    xsync.NewMapOf[uint64, *Peer](),
		started:  time.Now(),
		metrics:  opts.Metrics,
		logger:   opts.Logger,
	}

	if d.metrics == nil {
		d.metrics = metrics.New()
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}

	if opts.RequirePass != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(opts.RequirePass), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash requirepass: %w", err)
		}
		d.passHash = hash
	}

	d.registerCommands()

	for name := range d.commands {
		if _, ok := commandRegistry[name]; !ok {
			return nil, fmt.Errorf("command %s has no metadata", name)
		}
	}

	return d, nil
}

// Metrics returns the counters updated by Execute
func (d *Dispatcher) Metrics() *metrics.Metrics {
	return d.metrics
}

// register adds a new command to the dispatcher. The command name is uppercase
func (d *Dispatcher) register(name string, cmd commandFunc) {
	d.commands[strings.ToUpper(name)] = cmd
}

// Register assigns an id to the peer and adds it to the client table
func (d *Dispatcher) Register(p *Peer) {
	p.id = d.nextID.Add(1)
	d.peers.Store(p.id, p)
	d.metrics.ClientConnected()
}

// Unregister removes the peer from the client table
func (d *Dispatcher) Unregister(p *Peer) {
	if _, ok := d.peers.LoadAndDelete(p.id); ok {
		d.metrics.ClientDisconnected()
	}
}

// Peers returns a snapshot of the connected peers
func (d *Dispatcher) Peers() []*Peer {
	out := make([]*Peer, 0, d.peers.Size())
	d.peers.Range(func(_ uint64, p *Peer) bool {
		out = append(out, p)
		return true
	})
	return out
}

// Execute finds the command by name and executes it with the passed arguments on behalf of peer.
// Arguments exclude the command name. Failures are returned as RESP errors
func (d *Dispatcher) Execute(peer *Peer, name string, args []resp.Value) resp.Value {
	name = strings.ToUpper(name)

	if d.logger.Core().Enabled(zap.DebugLevel) {
		// Log the command name and number of args
		d.logger.Debug("executing command",
			zap.String("cmd", name),
			zap.Int("args_count", len(args)),
			zap.Uint64("client", peer.id),
		)
	}

	cmd, ok := d.commands[name]
	if !ok {
		d.metrics.UnknownCommand()
		return resp.MakeError(unknownCommandMessage(name, args))
	}

	if !commandRegistry[name].accepts(len(args) + 1) {
		d.metrics.CommandProcessed(name, 0, true)
		return resp.MakeErrorWrongNumberOfArguments(name)
	}

	start := time.Now()

	res := d.run(peer, name, cmd, args)

	d.metrics.CommandProcessed(name, time.Since(start), res.IsError())

	return res
}

// run executes cmd under the dispatcher lock. A panicking handler is turned
// into an error reply so that neither the lock nor the process is lost
func (d *Dispatcher) run(peer *Peer, name string, cmd command, args []resp.Value) (res resp.Value) {
	d.mu.Lock()
	defer d.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("command panicked",
				zap.String("cmd", name),
				zap.Uint64("client", peer.id),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			res = resp.MakeError("ERR internal error while executing '" + strings.ToLower(name) + "'")
		}
	}()

	if d.passHash != nil && !peer.authenticated && !commandRegistry[name].has("no-auth") {
		return resp.MakeError("NOAUTH Authentication required.")
	}

	peer.lastCommand = strings.ToLower(name)

	// re-point the registry to the database this peer has selected
	if err := d.registry.Select(peer.db); err != nil {
		return errorReply(err)
	}

	return cmd.execute(&Context{
		args:   args,
		peer:   peer,
		engine: d.engine,
		server: d,
	})
}

// lineBreaks would split an error reply in two
var lineBreaks = strings.NewReplacer("\r", " ", "\n", " ")

func unknownCommandMessage(name string, args []resp.Value) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ERR unknown command '%s', with args beginning with: ", strings.ToLower(name))
	for _, a := range args {
		fmt.Fprintf(&b, "'%s' ", a.String)
	}
	return lineBreaks.Replace(b.String())
}
