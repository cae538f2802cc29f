package interposition

import "github.com/osoekawaitlab/interposition/cassette"

// ResponseSequence is a finite, ordered, pull-style stream of response
// chunks. It must be drainable to completion in finite time, but is
// lazy-friendly: a LiveResponder implementation may produce chunks
// incrementally as Next is called rather than computing them all up
// front.
type ResponseSequence interface {
	// Next returns the next chunk and ok=true, or ok=false once the
	// sequence is exhausted. err is non-nil only on a delivery failure,
	// in which case ok is always false and the sequence must not be
	// read further.
	Next() (chunk cassette.ResponseChunk, ok bool, err error)
}

// sliceSequence replays an already-materialized slice of chunks. Replay
// mode and the final yield step of the record path both use it: once
// chunks are buffered in memory, delivering them is a pure in-memory
// operation with no further suspension points.
type sliceSequence struct {
	chunks []cassette.ResponseChunk
	pos    int
}

// NewSliceSequence returns a ResponseSequence that yields chunks in
// order and then terminates.
func NewSliceSequence(chunks []cassette.ResponseChunk) ResponseSequence {
	return &sliceSequence{chunks: chunks}
}

func (s *sliceSequence) Next() (cassette.ResponseChunk, bool, error) {
	if s.pos >= len(s.chunks) {
		return cassette.ResponseChunk{}, false, nil
	}
	c := s.chunks[s.pos]
	s.pos++
	return c, true, nil
}

// chanSequence adapts a channel-based producer (e.g. a live responder
// streaming chunks off the wire incrementally) into a ResponseSequence.
// Exactly one of a chunk or an error is ever sent per receive; the
// producer closes the channel when done.
type chanSequence struct {
	chunks <-chan cassette.ResponseChunk
	errs   <-chan error
}

// NewChanSequence returns a ResponseSequence backed by a chunk channel
// and a parallel error channel. The producer must close chunks when it
// has no more data to send, and must close errs as well, after sending
// at most one value on it: once chunks is closed, Next receives from
// errs, and blocks until errs yields a value or is closed.
func NewChanSequence(chunks <-chan cassette.ResponseChunk, errs <-chan error) ResponseSequence {
	return &chanSequence{chunks: chunks, errs: errs}
}

func (s *chanSequence) Next() (cassette.ResponseChunk, bool, error) {
	c, ok := <-s.chunks
	if ok {
		return c, true, nil
	}

	// chunks is closed: check whether the producer signaled a failure.
	if err, ok := <-s.errs; ok && err != nil {
		return cassette.ResponseChunk{}, false, err
	}
	return cassette.ResponseChunk{}, false, nil
}

// drainSequence fully consumes seq into an in-memory slice. The record
// path uses this to buffer a live response completely before any chunk
// is ever surfaced to the caller -- streaming-then-recording would leave
// a cassette incomplete if the caller cancels early, which is exactly
// the silent data loss this library exists to prevent.
func drainSequence(seq ResponseSequence) ([]cassette.ResponseChunk, error) {
	var chunks []cassette.ResponseChunk
	for {
		chunk, ok, err := seq.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return chunks, nil
		}
		chunks = append(chunks, chunk)
	}
}
