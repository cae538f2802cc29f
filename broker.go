// Package interposition implements a protocol-agnostic interaction
// interposition engine: a broker that deterministically replays
// previously recorded request/response exchanges and, optionally,
// records new ones by forwarding to a live upstream.
package interposition

import "github.com/osoekawaitlab/interposition/cassette"

// Broker is the stateful dispatcher that serves Replay calls under a
// chosen Mode. Its only mutable state is the current cassette
// reference; every other field is immutable or externally owned. The
// core performs no background work and holds no internal locks: a
// single Broker instance must not be shared across goroutines without
// external synchronization.
type Broker struct {
	current *cassette.Cassette
	mode    Mode
	live    LiveResponder
	store   cassette.CassetteStore
}

// BrokerOption configures optional Broker collaborators at construction
// time.
type BrokerOption func(*Broker)

// WithLiveResponder attaches the upstream port used to forward requests
// in record/auto mode.
func WithLiveResponder(live LiveResponder) BrokerOption {
	return func(b *Broker) {
		b.live = live
	}
}

// WithStore attaches a persistence port. When set, every successful
// record operation is persisted before any chunk becomes observable to
// the caller.
func WithStore(store cassette.CassetteStore) BrokerOption {
	return func(b *Broker) {
		b.store = store
	}
}

// NewBroker constructs a Broker over an initial cassette value. If mode
// is record or auto and no LiveResponder was supplied via
// WithLiveResponder, construction fails with a
// *LiveResponderRequiredError -- this is checked at wiring time, not
// deferred to the first Replay call.
func NewBroker(initial *cassette.Cassette, mode Mode, opts ...BrokerOption) (*Broker, error) {
	if !mode.valid() {
		return nil, &InvalidModeError{Mode: mode}
	}

	b := &Broker{
		current: initial,
		mode:    mode,
	}
	for _, opt := range opts {
		opt(b)
	}

	if mode.requiresLiveResponder() && b.live == nil {
		return nil, &LiveResponderRequiredError{Mode: mode}
	}

	return b, nil
}

// FromStore loads a cassette from store and constructs a Broker over it.
// store is also attached to the resulting Broker, as if WithStore(store)
// had been passed explicitly -- passing a different store via opts
// overrides it.
func FromStore(store cassette.CassetteStore, mode Mode, opts ...BrokerOption) (*Broker, error) {
	loaded, err := store.Load()
	if err != nil {
		return nil, err
	}

	allOpts := make([]BrokerOption, 0, len(opts)+1)
	allOpts = append(allOpts, WithStore(store))
	allOpts = append(allOpts, opts...)

	return NewBroker(loaded, mode, allOpts...)
}

// Cassette returns the broker's current cassette value. It reflects
// only record operations that have completed successfully, including
// persistence: a failed Replay call never changes what this returns.
func (b *Broker) Cassette() *cassette.Cassette {
	return b.current
}

// Mode returns the broker's fixed dispatch mode.
func (b *Broker) Mode() Mode {
	return b.mode
}

// Replay is the broker's single request operation. It computes req's
// fingerprint exactly once, consults the current cassette's index, and
// dispatches according to mode:
//
//	replay: hit streams recorded chunks; miss fails with
//	        *InteractionNotFoundError.
//	auto:   hit streams recorded chunks without calling the live
//	        responder; miss forwards, records, persists, then streams.
//	record: always forwards, records, persists, then streams -- even on
//	        a hit.
func (b *Broker) Replay(req cassette.Request) (ResponseSequence, error) {
	fp, err := req.Fingerprint()
	if err != nil {
		return nil, err
	}

	pos, hit := b.current.Find(fp)

	switch b.mode {
	case ModeReplay:
		if !hit {
			return nil, &InteractionNotFoundError{Request: req}
		}
		return NewSliceSequence(b.current.Get(pos).ResponseChunks), nil

	case ModeAuto:
		if hit {
			return NewSliceSequence(b.current.Get(pos).ResponseChunks), nil
		}
		return b.forwardRecordPersist(req)

	case ModeRecord:
		return b.forwardRecordPersist(req)

	default:
		// Unreachable: mode validity is enforced at construction.
		return nil, &InvalidModeError{Mode: b.mode}
	}
}

// forwardRecordPersist implements the forward-buffer-record-persist-
// stream path shared by record and auto-on-miss dispatch.
//
// Every chunk is fully drained into memory before anything is recorded,
// and the interaction is recorded and persisted before any chunk is
// handed back to the caller. This ordering is deliberate: a consumer may
// cancel iteration over the returned sequence at any point, and
// streaming-then-recording would leave the cassette silently
// incomplete on cancellation.
func (b *Broker) forwardRecordPersist(req cassette.Request) (ResponseSequence, error) {
	liveSeq, err := b.live(req)
	if err != nil {
		return nil, err
	}

	chunks, err := drainSequence(liveSeq)
	if err != nil {
		return nil, err
	}

	interaction, err := cassette.NewInteraction(req, chunks)
	if err != nil {
		return nil, err
	}

	extended := b.current.Append(interaction)

	if b.store != nil {
		if err := b.store.Save(extended); err != nil {
			// Fail-fast: the caller sees the save error, the broker's
			// cassette stays at the pre-append value, and no chunk was
			// ever made observable.
			return nil, err
		}
	}

	b.current = extended

	return NewSliceSequence(chunks), nil
}
