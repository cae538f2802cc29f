// Package fingerprint canonicalizes request metadata into a fixed-width
// content-addressed identifier.
//
// The canonicalization is deliberately byte-oriented rather than
// delimiter-based: every variable-length field is framed with a
// big-endian length prefix before it is hashed, so that no combination
// of attacker- or adapter-controlled field values can ever produce the
// same byte stream as a different combination of fields.
package fingerprint

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"hash"
)

// Size is the width, in bytes, of a Fingerprint.
const Size = sha256.Size

// ErrEmptyField is returned by Compute when a required text field is empty.
var ErrEmptyField = errors.New("fingerprint: required field is empty")

// Fingerprint is a 256-bit content hash uniquely identifying a request.
// Two requests match iff their fingerprints are bit-equal.
type Fingerprint [Size]byte

// String returns the lowercase hex encoding of the fingerprint.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// IsZero reports whether f is the zero-value fingerprint.
func (f Fingerprint) IsZero() bool {
	return f == Fingerprint{}
}

// FromHex parses a lowercase hex-encoded fingerprint, as produced by String.
func FromHex(s string) (Fingerprint, error) {
	var f Fingerprint
	b, err := hex.DecodeString(s)
	if err != nil {
		return f, err
	}
	if len(b) != Size {
		return f, errors.New("fingerprint: wrong byte length")
	}
	copy(f[:], b)
	return f, nil
}

// MarshalJSON renders the fingerprint as its lowercase hex string, the
// canonical on-disk representation used by the reference file store.
func (f Fingerprint) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON parses the lowercase hex string representation produced
// by MarshalJSON.
func (f *Fingerprint) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := FromHex(s)
	if err != nil {
		return fmt.Errorf("fingerprint: %w", err)
	}
	*f = parsed
	return nil
}

// HeaderPair is a single (name, value) header entry. Order among a
// sequence of HeaderPairs is semantically significant for matching.
type HeaderPair struct {
	Name  string
	Value string
}

// MarshalJSON renders the pair as the two-element array ["name",
// "value"], preserving order in the surrounding sequence.
func (h HeaderPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{h.Name, h.Value})
}

// UnmarshalJSON parses the two-element array representation produced by
// MarshalJSON.
func (h *HeaderPair) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	h.Name, h.Value = pair[0], pair[1]
	return nil
}

// Compute derives the Fingerprint of a request from its canonical fields.
// Field order is fixed: protocol, action, target, headers, body. Headers
// are hashed in the order given -- they are never sorted, case-folded, or
// deduplicated, since header order may itself carry protocol meaning
// (e.g. an Accept preference list).
func Compute(protocol, action, target string, headers []HeaderPair, body []byte) (Fingerprint, error) {
	var zero Fingerprint

	if protocol == "" || action == "" || target == "" {
		return zero, ErrEmptyField
	}

	h := sha256.New()
	writeField(h, []byte(protocol))
	writeField(h, []byte(action))
	writeField(h, []byte(target))

	var countBuf [4]byte
	binary.BigEndian.PutUint32(countBuf[:], uint32(len(headers)))
	h.Write(countBuf[:])
	for _, hp := range headers {
		writeField(h, []byte(hp.Name))
		writeField(h, []byte(hp.Value))
	}

	writeField(h, body)

	var fp Fingerprint
	copy(fp[:], h.Sum(nil))
	return fp, nil
}

// writeField writes a length-prefixed field into h, making the overall
// encoding injective: no concatenation of field values can be confused
// with a different split of the same bytes across fields.
func writeField(h hash.Hash, field []byte) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(field)))
	h.Write(lenBuf[:])
	h.Write(field)
}
