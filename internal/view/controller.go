// Package view binds user input to a backend call, tracks the request
// lifecycle of each view and renders the outcome into the view's result
// region.
package view

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/studiowebux/careerguide/internal/fragment"
	"github.com/studiowebux/careerguide/internal/render"
)

// Sink is a view's result region. Every Replace overwrites what was shown.
type Sink interface {
	Replace(fragment.Node)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(fragment.Node)

func (f SinkFunc) Replace(n fragment.Node) { f(n) }

// Task performs the network half of a submit. It is safe to run off the
// UI goroutine; the Settlement it returns must be applied on it.
type Task func(ctx context.Context) Settlement

// Settlement is a finished fetch waiting to be shown
type Settlement struct {
	view  string
	apply func() bool
}

// Apply renders the settled result into the view's sink and reports
// whether it did. Stale settlements are dropped under the latest policy.
func (s Settlement) Apply() bool {
	if s.apply == nil {
		return false
	}
	return s.apply()
}

// View names the controller the settlement belongs to
func (s Settlement) View() string {
	return s.view
}

// Run executes t and applies its settlement. A nil task (the submit was
// settled locally) reports false.
func Run(ctx context.Context, t Task) bool {
	if t == nil {
		return false
	}
	return t(ctx).Apply()
}

// Definition describes one view: how raw input I becomes a request R,
// how R is fetched as payload T and how T is rendered.
type Definition[I, R, T any] struct {
	Name     string
	Messages Messages
	// Prepare validates and normalizes input. Returning *Hint or
	// *ValidationError settles the submit without a network call.
	Prepare func(I) (R, error)
	Fetch   func(context.Context, R) (T, error)
	Render  func(T) fragment.Node
}

// Controller is the state machine of one view
type Controller[I, R, T any] struct {
	def    Definition[I, R, T]
	sink   Sink
	policy Policy

	mu    sync.Mutex
	gen   uint64
	state RequestState[T]
}

// New creates an idle controller rendering into sink
func New[I, R, T any](def Definition[I, R, T], sink Sink, opts ...Option) *Controller[I, R, T] {
	o := options{policy: PolicyLatest}
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller[I, R, T]{
		def:    def,
		sink:   sink,
		policy: o.policy,
		state:  idleState[T](),
	}
}

// Name identifies the view in logs and settlements
func (c *Controller[I, R, T]) Name() string {
	return c.def.Name
}

// State returns a snapshot of the current request state
func (c *Controller[I, R, T]) State() RequestState[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit handles one user submit. Input rejected by Prepare is rendered
// immediately and nil is returned. Otherwise the loading fragment is
// rendered synchronously and the returned Task performs exactly one fetch.
func (c *Controller[I, R, T]) Submit(input I) Task {
	req, err := c.def.Prepare(input)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	gen := c.gen

	if err != nil {
		var hint *Hint
		if errors.As(err, &hint) {
			c.state = idleState[T]()
			c.sink.Replace(render.Hint(hint.Message))
			return nil
		}
		c.state = failureState[T](err)
		c.sink.Replace(render.InlineError(c.def.Messages.failure(err)))
		return nil
	}

	c.state = loadingState[T]()
	c.sink.Replace(render.Loading(c.def.Messages.Loading))

	return func(ctx context.Context) Settlement {
		payload, err := c.def.Fetch(ctx, req)
		return Settlement{
			view:  c.def.Name,
			apply: func() bool { return c.settle(gen, payload, err) },
		}
	}
}

func (c *Controller[I, R, T]) settle(gen uint64, payload T, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.policy == PolicyLatest && gen != c.gen {
		log.Printf("view %s: dropping stale response %d (current %d)", c.def.Name, gen, c.gen)
		return false
	}

	if err != nil {
		c.state = failureState[T](err)
		c.sink.Replace(render.InlineError(c.def.Messages.failure(err)))
		return true
	}

	c.state = successState(payload)
	c.sink.Replace(c.def.Render(payload))
	return true
}
