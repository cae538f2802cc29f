package interposition

import (
	"fmt"

	"github.com/osoekawaitlab/interposition/cassette"
)

// InteractionNotFoundError is raised by Broker.Replay when a request's
// fingerprint has no entry in the cassette, in a mode where that is
// fatal (replay; record/auto instead forward on a miss).
type InteractionNotFoundError struct {
	Request cassette.Request
}

func (e *InteractionNotFoundError) Error() string {
	return fmt.Sprintf("interposition: no recorded interaction for %s %s %s",
		e.Request.Protocol, e.Request.Action, e.Request.Target)
}

// Unwrap lets errors.Is(err, cassette.ErrInteractionNotFound) succeed for
// an *InteractionNotFoundError, since they denote the same condition at
// two different layers (broker vs. cassette).
func (e *InteractionNotFoundError) Unwrap() error {
	return cassette.ErrInteractionNotFound
}

// LiveResponderRequiredError is raised at Broker construction when mode
// is record or auto but no LiveResponder was supplied. This is checked
// eagerly, at wiring time, rather than deferred to the first request.
type LiveResponderRequiredError struct {
	Mode Mode
}

func (e *LiveResponderRequiredError) Error() string {
	return fmt.Sprintf("interposition: mode %q requires a live responder", string(e.Mode))
}

// InvalidModeError is raised at Broker construction when mode is not one
// of ModeReplay, ModeRecord, or ModeAuto.
type InvalidModeError struct {
	Mode Mode
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("interposition: invalid mode %q", string(e.Mode))
}

// ErrInteractionNotFound is re-exported so callers need not import the
// cassette package solely to compare errors with errors.Is.
var ErrInteractionNotFound = cassette.ErrInteractionNotFound
