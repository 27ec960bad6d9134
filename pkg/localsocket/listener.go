package localsocket

import (
	"context"
	"iter"
	"net"
	"sync"

	"go.uber.org/zap"
)

// Listener accepts incoming local socket connections. It wraps exactly
// one native backend listener (a Unix domain socket or a named pipe) and
// exclusively owns it; Close releases the backend object and, for
// path-backed sockets, reclaims the socket file unless that was
// disabled.
//
// A Listener is safe for concurrent use, but at most one accept is ever
// outstanding against the backend: concurrent Accept/AcceptContext calls
// are served in arrival order of the connections the kernel queues.
type Listener struct {
	ln     net.Listener
	name   Name
	logger *zap.Logger

	// turn serializes accept callers. Capacity 1: the holder runs the
	// drain/pump/wait sequence below, and releasing it hands the pump
	// to the next waiter, so no concurrent caller is left without a
	// running pump.
	turn chan struct{}

	// pending holds the result of the single in-flight backend accept.
	// Capacity 1: an abandoned AcceptContext leaves the result buffered
	// for the next caller, so cancellation never loses a connection.
	pending chan acceptResult
	pumpMu  sync.Mutex
	pumping bool

	mu      sync.Mutex
	reclaim bool
	closed  bool
}

type acceptResult struct {
	conn net.Conn
	err  error
}

func newListener(ln net.Listener, opts *ListenerOptions) *Listener {
	return &Listener{
		ln:      ln,
		name:    opts.Name.IntoOwned(),
		logger:  opts.Logger,
		turn:    make(chan struct{}, 1),
		pending: make(chan acceptResult, 1),
		reclaim: !opts.DisableReclaim,
	}
}

// Addr returns the bound endpoint name.
func (l *Listener) Addr() Name { return l.name }

// Accept blocks until a new connection is available or the listener
// fails. A failed incoming connection is reported on that call only and
// does not poison the listener; a subsequent Accept still serves
// later-arriving connections.
func (l *Listener) Accept() (*Stream, error) {
	return l.AcceptContext(context.Background())
}

// AcceptContext is Accept with cooperative cancellation. When ctx ends
// first, the call returns ctx.Err() without consuming a connection: the
// in-flight backend accept keeps running and its result is delivered to
// the next Accept or AcceptContext call.
func (l *Listener) AcceptContext(ctx context.Context) (*Stream, error) {
	select {
	case l.turn <- struct{}{}:
		defer func() { <-l.turn }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	// Drain a result left behind by an abandoned call before starting
	// another backend accept.
	select {
	case r := <-l.pending:
		return l.wrap(r)
	default:
	}

	l.mu.Lock()
	closed := l.closed
	l.mu.Unlock()
	if closed {
		return nil, ErrListenerClosed
	}

	l.pumpMu.Lock()
	if !l.pumping {
		l.pumping = true
		go l.pumpOne()
	}
	l.pumpMu.Unlock()

	select {
	case r := <-l.pending:
		return l.wrap(r)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// pumpOne performs one backend accept and parks the outcome in pending.
func (l *Listener) pumpOne() {
	conn, err := l.ln.Accept()
	l.pumpMu.Lock()
	l.pumping = false
	l.pumpMu.Unlock()
	l.pending <- acceptResult{conn: conn, err: err}
}

func (l *Listener) wrap(r acceptResult) (*Stream, error) {
	if r.err != nil {
		l.mu.Lock()
		closed := l.closed
		l.mu.Unlock()
		if closed {
			return nil, ErrListenerClosed
		}
		l.logger.Debug("accept failed", zap.Error(r.err))
		return nil, r.err
	}
	l.logger.Debug("accepted connection", zap.String("name", l.name.String()))
	return &Stream{Conn: r.conn}, nil
}

// Incoming exposes the listener as a non-terminating lazy sequence of
// accept results: one element per completed accept, an error element per
// failed one. The sequence itself never ends; iteration stops only when
// the caller breaks out or ctx is done.
func (l *Listener) Incoming(ctx context.Context) iter.Seq2[*Stream, error] {
	return func(yield func(*Stream, error) bool) {
		for {
			conn, err := l.AcceptContext(ctx)
			if err != nil && ctx.Err() != nil {
				return
			}
			if !yield(conn, err) {
				return
			}
		}
	}
}

// DoNotReclaimNameOnDrop disables best-effort removal of a
// filesystem-backed socket file when the listener is closed. Irreversible
// for this instance; a no-op for namespaced addresses.
func (l *Listener) DoNotReclaimNameOnDrop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reclaim = false
	disableReclaim(l.ln)
}

// Close releases the backend listener. Any blocked accept returns
// ErrListenerClosed. For a path-backed socket the bound file is removed
// unless DoNotReclaimNameOnDrop was called.
func (l *Listener) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.mu.Unlock()

	l.logger.Debug("closing listener", zap.String("name", l.name.String()))
	return l.ln.Close()
}
