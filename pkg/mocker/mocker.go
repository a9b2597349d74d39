// Package mocker pairs a schema with a generator and hands out mock
// responses, optionally after a simulated delay.
package mocker

import (
	"context"
	"time"

	"github.com/getmockd/shapemock/pkg/generator"
	"github.com/getmockd/shapemock/pkg/schema"
)

// Mocker produces mock responses for one schema.
type Mocker struct {
	schema    *schema.Schema
	generator *generator.Generator
}

// Result is a response delivered by ResponseAsync.
type Result struct {
	Value generator.Value
	Err   error
}

// New creates a Mocker for s. Options are passed to the generator.
func New(s *schema.Schema, opts ...generator.Option) *Mocker {
	return &Mocker{
		schema:    s,
		generator: generator.New(s, opts...),
	}
}

// Schema returns the schema responses are built from.
func (m *Mocker) Schema() *schema.Schema {
	return m.schema
}

// Generator returns the underlying generator.
func (m *Mocker) Generator() *generator.Generator {
	return m.generator
}

// Response generates a value. When opts.Delay is positive the call blocks
// for that long before returning; ctx cancellation ends the wait early with
// ctx.Err().
func (m *Mocker) Response(ctx context.Context, opts generator.Options) (generator.Value, error) {
	v, err := m.generator.Generate(opts)
	if opts.Delay <= 0 {
		return v, err
	}

	timer := time.NewTimer(opts.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return v, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ResponseAsync generates a value and delivers it on the returned channel
// once opts.Delay has elapsed. The channel always receives exactly one
// Result; there is no way to cancel a pending delivery.
func (m *Mocker) ResponseAsync(opts generator.Options) <-chan Result {
	ch := make(chan Result, 1)
	v, err := m.generator.Generate(opts)
	res := Result{Value: v, Err: err}

	if opts.Delay <= 0 {
		ch <- res
		return ch
	}
	time.AfterFunc(opts.Delay, func() {
		ch <- res
	})
	return ch
}
