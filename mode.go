package interposition

// Mode is the broker's fixed dispatch policy. It is a closed enumeration
// of three tags, not an open extension point: adding a mode is a
// deliberate API change, not a configuration option.
type Mode string

const (
	// ModeReplay streams recorded chunks on a hit and fails with
	// ErrInteractionNotFound on a miss. It never calls the live responder.
	ModeReplay Mode = "replay"

	// ModeRecord always forwards to the live responder, even on a hit,
	// and records the fresh interaction on top of the cassette.
	ModeRecord Mode = "record"

	// ModeAuto streams recorded chunks on a hit with no upstream call,
	// and forwards/records on a miss.
	ModeAuto Mode = "auto"
)

// valid reports whether m is one of the three accepted mode literals.
func (m Mode) valid() bool {
	switch m {
	case ModeReplay, ModeRecord, ModeAuto:
		return true
	default:
		return false
	}
}

// requiresLiveResponder reports whether m can reach a code path that
// needs a live responder.
func (m Mode) requiresLiveResponder() bool {
	return m == ModeRecord || m == ModeAuto
}
