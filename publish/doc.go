// Package publish implements the outbound message-queue boundary of
// SPEC_FULL §6.4: a Publisher capability that fans an accepted step out to
// an external stream. The original implementation used an AMQP queue; no
// AMQP client exists anywhere in the reference corpus, so Redis Streams
// (already present in the corpus for a different purpose) stands in as the
// outbound transport. A NoOp implementation is provided for tests and for
// running a walk without a queue.
package publish
