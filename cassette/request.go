package cassette

import "github.com/osoekawaitlab/interposition/fingerprint"

// HeaderPair is a single (name, value) header entry recorded with a
// Request. Order is semantically significant: it participates in
// fingerprint computation (see fingerprint.Compute).
type HeaderPair = fingerprint.HeaderPair

// Request is the protocol-agnostic shape every adapter (HTTP, SQL,
// gRPC, ...) must translate its wire traffic into before it reaches the
// broker.
type Request struct {
	// Protocol identifies the wire protocol, e.g. "http", "sql".
	Protocol string `json:"protocol"`

	// Action identifies the operation, e.g. "GET", "SELECT".
	Action string `json:"action"`

	// Target identifies what the action applies to, e.g. a URL path or
	// table name.
	Target string `json:"target"`

	// Headers is an ordered sequence of metadata pairs. Order matters.
	Headers []HeaderPair `json:"headers"`

	// Body is the opaque request payload. May be empty.
	Body []byte `json:"body"`
}

// Fingerprint computes the content-addressed identity of r.
func (r Request) Fingerprint() (fingerprint.Fingerprint, error) {
	return fingerprint.Compute(r.Protocol, r.Action, r.Target, r.Headers, r.Body)
}
