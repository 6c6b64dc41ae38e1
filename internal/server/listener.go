package server

import (
	"errors"
	"io"
	"net"
	"sync"
	"time"

	"github.com/eternalApril/nisekv/internal/resp"
	"go.uber.org/zap"
)

// Server accepts RESP connections and feeds their commands to a Dispatcher
type Server struct {
	dispatcher *Dispatcher
	log        *zap.Logger

	mu       sync.Mutex
	listener net.Listener
	wg       sync.WaitGroup
}

// NewServer creates a Server on top of the dispatcher
func NewServer(d *Dispatcher, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{dispatcher: d, log: log}
}

// Serve accepts connections on ln until Shutdown is called. It always returns a non-nil error
// except after Shutdown
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.log.Error("accept error", zap.Error(err))
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			return err
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConnection(conn)
		}()
	}
}

// Shutdown stops accepting connections and waits up to timeout for the open ones to finish.
// Connections still open after the timeout are closed. Returns false on timeout
func (s *Server) Shutdown(timeout time.Duration) bool {
	s.mu.Lock()
	if s.listener != nil {
		s.listener.Close() //nolint:errcheck
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info("all connections closed gracefully")
		return true
	case <-time.After(timeout):
		s.log.Warn("shutdown timed out, closing connections", zap.Duration("timeout", timeout))
	}

	for _, p := range s.dispatcher.Peers() {
		p.Close() //nolint:errcheck
	}
	<-done

	return false
}

// handleConnection handles a connection for a single user
func (s *Server) handleConnection(conn net.Conn) {
	peer := NewPeer(conn)
	s.dispatcher.Register(peer)

	if s.log.Core().Enabled(zap.DebugLevel) {
		s.log.Debug("client connected",
			zap.String("addr", peer.Addr()),
			zap.Uint64("client", peer.ID()),
		)
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.Error("connection handler panicked",
				zap.String("addr", peer.Addr()),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			_ = peer.Send(resp.MakeError("ERR internal error"))
			_ = peer.Flush()
		}
		s.dispatcher.Unregister(peer)
		peer.Close() //nolint:errcheck
		// log connection close
		if s.log.Core().Enabled(zap.DebugLevel) {
			s.log.Debug("client disconnected",
				zap.String("addr", peer.Addr()),
				zap.Uint64("client", peer.ID()),
			)
		}
	}()

	for {
		cmdValue, err := peer.ReadCommand()
		if err != nil {
			switch {
			case errors.Is(err, io.EOF), errors.Is(err, net.ErrClosed):
			case errors.Is(err, resp.ErrInvalidLength), errors.Is(err, resp.ErrInvalidEnding), errors.Is(err, resp.ErrInvalidNumber):
				s.log.Warn("protocol error", zap.String("addr", peer.Addr()), zap.Error(err))
				_ = peer.Send(resp.MakeError("ERR Protocol error: " + err.Error()))
				_ = peer.Flush()
			default:
				s.log.Warn("read command failed", zap.Error(err))
			}
			return
		}

		if cmdValue.Type != resp.TypeArray {
			s.log.Error("invalid request type")
			continue
		}

		if len(cmdValue.Array) == 0 {
			continue
		}

		commandName := string(cmdValue.Array[0].String)
		args := cmdValue.Array[1:]

		result := s.dispatcher.Execute(peer, commandName, args)

		if err = peer.Send(result); err != nil {
			s.log.Error("error writing response", zap.Error(err))
			return
		}

		if peer.closing || peer.InputBuffered() == 0 {
			if err := peer.Flush(); err != nil {
				return
			}
		}

		if peer.closing {
			return
		}
	}
}
