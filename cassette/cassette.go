package cassette

import "github.com/osoekawaitlab/interposition/fingerprint"

// Cassette is an immutable, ordered collection of interactions with an
// internal fingerprint-to-position index. The index maps each
// fingerprint to the position of the *first* interaction carrying it
// (first-match policy): later duplicates are reachable only through
// Interactions, never through Find.
type Cassette struct {
	interactions []Interaction
	index        map[fingerprint.Fingerprint]int
}

// New returns an empty Cassette.
func New() *Cassette {
	return &Cassette{
		interactions: nil,
		index:        make(map[fingerprint.Fingerprint]int),
	}
}

// FromInteractions builds a Cassette from a pre-existing ordered
// sequence of interactions, as when deserializing from storage. Every
// interaction's fingerprint is re-validated against its request; the
// whole cassette is rejected on any mismatch.
func FromInteractions(interactions []Interaction) (*Cassette, error) {
	c := &Cassette{
		interactions: make([]Interaction, 0, len(interactions)),
		index:        make(map[fingerprint.Fingerprint]int, len(interactions)),
	}

	for _, i := range interactions {
		validated, err := newInteractionWithFingerprint(i.Request, i.Fingerprint, i.ResponseChunks)
		if err != nil {
			return nil, err
		}
		c.appendValidated(validated)
	}

	return c, nil
}

// Find returns the position of the earliest interaction carrying fp, and
// true, or (0, false) if fp is not present.
func (c *Cassette) Find(fp fingerprint.Fingerprint) (int, bool) {
	pos, ok := c.index[fp]
	return pos, ok
}

// Get returns the interaction at pos. It panics if pos is out of range,
// as a caller is expected to only ever pass a position returned by Find.
func (c *Cassette) Get(pos int) Interaction {
	return c.interactions[pos]
}

// Interactions returns the full ordered sequence of interactions, as
// needed for serialization. The returned slice must not be mutated by
// the caller.
func (c *Cassette) Interactions() []Interaction {
	return c.interactions
}

// Len returns the number of interactions in the cassette.
func (c *Cassette) Len() int {
	return len(c.interactions)
}

// Append returns a new Cassette with interaction appended at the end. If
// interaction's fingerprint already exists in the index, the index is
// left pointing at the earlier occurrence; the new interaction is only
// reachable via Interactions.
func (c *Cassette) Append(interaction Interaction) *Cassette {
	next := &Cassette{
		interactions: make([]Interaction, len(c.interactions), len(c.interactions)+1),
		index:        make(map[fingerprint.Fingerprint]int, len(c.index)+1),
	}
	copy(next.interactions, c.interactions)
	for fp, pos := range c.index {
		next.index[fp] = pos
	}
	next.appendValidated(interaction)
	return next
}

// appendValidated appends interaction without copying the receiver; it
// is only safe to call on a Cassette not yet shared with another owner
// (construction time, or immediately after Append has made a fresh copy).
func (c *Cassette) appendValidated(interaction Interaction) {
	pos := len(c.interactions)
	c.interactions = append(c.interactions, interaction)
	if _, exists := c.index[interaction.Fingerprint]; !exists {
		c.index[interaction.Fingerprint] = pos
	}
}
