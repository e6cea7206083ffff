package publish

import (
	"context"

	"github.com/rakanmcmc/rakan/score"
)

// PublishedStep is one accepted step, ready to be serialized onto the
// outbound stream: the district assignment and its four score terms plus
// weighted total.
type PublishedStep struct {
	Assignment []int
	Terms      score.Terms
}

// Publisher is the capability the Sampler's driver fans accepted steps out
// to, independent of History (spec §9's "History over an append-sink
// capability" keeps these two concerns separate).
type Publisher interface {
	Publish(ctx context.Context, step PublishedStep) error
}

// NoOp is a Publisher that discards every step, used by tests and by
// cmd/rakan when no queue address is configured.
type NoOp struct{}

func (NoOp) Publish(context.Context, PublishedStep) error { return nil }
