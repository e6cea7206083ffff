package rakanerr

import "fmt"

// Kind classifies why an operation failed. The specific message text is
// free-form; callers branch on Kind (via errors.Is against the sentinels
// below), not on string content.
type Kind int

const (
	// InvalidInput covers out-of-range ids, duplicate ids, negative
	// populations, K=0, N=0, or an edge referencing a nonexistent precinct.
	InvalidInput Kind = iota

	// InvariantBroken covers a finalization where the declared state
	// population does not match the sum of vertex populations, or
	// duplicate edges with inconsistent adjacency.
	InvariantBroken

	// SeedingFailed covers a round-robin growth pass that made no
	// progress (the contiguity graph is disconnected given K).
	SeedingFailed

	// IllegalTransition covers an operation invoked in the wrong
	// sampler state, e.g. Walk before Seed.
	IllegalTransition

	// Internal covers a violated post-condition caught by a defensive
	// check; it should never occur in correct code and is fatal.
	Internal
)

// String renders a Kind for log lines and error messages.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case InvariantBroken:
		return "invariant_broken"
	case SeedingFailed:
		return "seeding_failed"
	case IllegalTransition:
		return "illegal_transition"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the single structured failure type returned by every package in
// the core (precinct, connectivity, seed, score, sampler, history). Op
// names the failing operation (e.g. "precinct.SetDistrict"); Err, when
// present, is the underlying cause and is reachable via Unwrap.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rakan: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("rakan: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, rakanerr.ErrInvalidInput) (and the other kind
// sentinels below) match any *Error of the same Kind, regardless of Op or
// wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New constructs a kind-carrying error for op, optionally wrapping cause.
func New(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Err: cause}
}

// Newf constructs a kind-carrying error for op with a formatted message as
// the wrapped cause.
func Newf(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Kind-only sentinels for errors.Is checks, one per Kind. These carry no
// Op/Err of their own; *Error.Is compares only the Kind field.
var (
	ErrInvalidInput      = &Error{Kind: InvalidInput}
	ErrInvariantBroken   = &Error{Kind: InvariantBroken}
	ErrSeedingFailed     = &Error{Kind: SeedingFailed}
	ErrIllegalTransition = &Error{Kind: IllegalTransition}
	ErrInternal          = &Error{Kind: Internal}
)
