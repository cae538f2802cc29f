package cassette

// CassetteStore is the two-operation persistence port a broker uses to
// load and save cassettes. Missing-storage behavior (strict vs.
// create-if-missing) is a construction-time concern of the concrete
// implementation, not part of this interface.
type CassetteStore interface {
	// Load returns the persisted cassette, or a *LoadError wrapping the
	// underlying cause (missing storage in strict mode, an unreadable
	// file, or malformed content).
	Load() (*Cassette, error)

	// Save persists cassette, overwriting any prior content. It returns
	// a *SaveError wrapping the underlying cause on failure.
	Save(c *Cassette) error
}
