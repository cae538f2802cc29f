package interposition

import "github.com/osoekawaitlab/interposition/cassette"

// LiveResponder is the single-operation port user code plugs in to reach
// a real upstream when recording. Any closure or stateful object
// exposing this signature can serve as one -- there is no lifecycle
// beyond the call itself.
type LiveResponder func(req cassette.Request) (ResponseSequence, error)
