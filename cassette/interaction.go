package cassette

import "github.com/osoekawaitlab/interposition/fingerprint"

// Interaction is one recorded request together with its fingerprint and
// ordered response chunks.
type Interaction struct {
	Request        Request `json:"request"`
	Fingerprint    fingerprint.Fingerprint `json:"fingerprint"`
	ResponseChunks []ResponseChunk `json:"response_chunks"`
}

// NewInteraction constructs a validated Interaction from a request and
// its drained response chunks. It recomputes the request's fingerprint
// and rejects construction if the supplied chunks are not sequenced
// 0, 1, ..., len-1.
func NewInteraction(req Request, chunks []ResponseChunk) (Interaction, error) {
	fp, err := req.Fingerprint()
	if err != nil {
		return Interaction{}, newValidationError("request is invalid: %s", err)
	}

	if err := validateChunkSequence(chunks); err != nil {
		return Interaction{}, err
	}

	return Interaction{
		Request:        req,
		Fingerprint:    fp,
		ResponseChunks: chunks,
	}, nil
}

// newInteractionWithFingerprint constructs an Interaction from an
// already-known fingerprint (e.g. one deserialized from storage) and
// validates that it matches the recomputed fingerprint of req.
func newInteractionWithFingerprint(req Request, fp fingerprint.Fingerprint, chunks []ResponseChunk) (Interaction, error) {
	computed, err := req.Fingerprint()
	if err != nil {
		return Interaction{}, newValidationError("request is invalid: %s", err)
	}
	if computed != fp {
		return Interaction{}, newValidationError(
			"fingerprint %s does not match recomputed fingerprint %s", fp, computed)
	}

	if err := validateChunkSequence(chunks); err != nil {
		return Interaction{}, err
	}

	return Interaction{
		Request:        req,
		Fingerprint:    fp,
		ResponseChunks: chunks,
	}, nil
}

func validateChunkSequence(chunks []ResponseChunk) error {
	for i, c := range chunks {
		if c.Sequence != i {
			return newValidationError(
				"response chunk sequence is non-contiguous: want %d, got %d", i, c.Sequence)
		}
	}
	return nil
}
