// Package signal turns SIGINT and SIGTERM into context cancellation for sigil commands.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages
package signal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ErrInterrupted is the cancellation cause recorded when a signal arrives.
var ErrInterrupted = errors.New("interrupted")

// Handler cancels its context when SIGINT or SIGTERM is received.
// context.Cause on the handler's context then wraps ErrInterrupted and names the signal.
type Handler struct {
	ctx         context.Context //nolint:containedctx // the handler owns this context's lifetime
	cancel      context.CancelCauseFunc
	interrupted chan struct{}
	done        chan struct{}
	once        sync.Once
	stopOnce    sync.Once
	sigChan     chan os.Signal
}

// NewHandler starts listening for SIGINT and SIGTERM.
//
//	h := signal.NewHandler(ctx)
//	defer h.Stop()
//	err := cli.Execute(h.Context(), info)
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancelCause(parent)
	h := &Handler{
		ctx:         ctx,
		cancel:      cancel,
		interrupted: make(chan struct{}),
		done:        make(chan struct{}),
		// Buffered so Notify never drops a signal while listen is busy.
		sigChan: make(chan os.Signal, 1),
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()

	return h
}

// Context returns the context canceled on interrupt or Stop.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted returns a channel closed once a signal has been received.
func (h *Handler) Interrupted() <-chan struct{} {
	return h.interrupted
}

// Stop stops listening and cancels the context. Safe to call more than once.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel(nil)
	})
}

func (h *Handler) handleSignal(sig os.Signal) {
	h.once.Do(func() {
		cause := ErrInterrupted
		if sig != nil {
			cause = fmt.Errorf("%w by %s", ErrInterrupted, sig)
		}
		h.cancel(cause)
		close(h.interrupted)
	})
}

// listen keeps draining sigChan until Stop so repeated Ctrl+C never blocks delivery.
// Only the first signal has an effect.
func (h *Handler) listen() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.done:
			return
		case sig := <-h.sigChan:
			h.handleSignal(sig)
		}
	}
}
