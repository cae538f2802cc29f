package cassette_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osoekawaitlab/interposition/cassette"
)

func mustInteraction(t *testing.T, target string, chunkData ...string) cassette.Interaction {
	t.Helper()

	chunks := make([]cassette.ResponseChunk, 0, len(chunkData))
	for i, d := range chunkData {
		chunks = append(chunks, cassette.ResponseChunk{Data: []byte(d), Sequence: i})
	}

	req := cassette.Request{Protocol: "test-proto", Action: "fetch", Target: target}
	i, err := cassette.NewInteraction(req, chunks)
	require.NoError(t, err)
	return i
}

func TestCassetteFindIsFirstMatch(t *testing.T) {
	c := cassette.New()

	first := mustInteraction(t, "resource-123", "A")
	second := mustInteraction(t, "resource-123", "B")

	c = c.Append(first)
	c = c.Append(second)

	pos, ok := c.Find(first.Fingerprint)
	require.True(t, ok)
	require.Equal(t, 0, pos)
	require.Equal(t, "A", string(c.Get(pos).ResponseChunks[0].Data))

	require.Equal(t, 2, c.Len())
}

func TestCassetteAppendIsImmutable(t *testing.T) {
	c := cassette.New()
	i := mustInteraction(t, "resource-123", "A")

	extended := c.Append(i)

	require.Equal(t, 0, c.Len())
	require.Equal(t, 1, extended.Len())

	_, ok := c.Find(i.Fingerprint)
	require.False(t, ok)
}

func TestCassetteFindMiss(t *testing.T) {
	c := cassette.New()
	c = c.Append(mustInteraction(t, "resource-123", "A"))

	other := mustInteraction(t, "resource-456", "B")
	_, ok := c.Find(other.Fingerprint)
	require.False(t, ok)
}

func TestNewInteractionRejectsNonContiguousSequence(t *testing.T) {
	req := cassette.Request{Protocol: "test-proto", Action: "fetch", Target: "resource-123"}
	chunks := []cassette.ResponseChunk{
		{Data: []byte("a"), Sequence: 0},
		{Data: []byte("b"), Sequence: 2},
	}

	_, err := cassette.NewInteraction(req, chunks)
	require.Error(t, err)

	var verr *cassette.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestNewInteractionRejectsEmptyRequiredField(t *testing.T) {
	req := cassette.Request{Protocol: "", Action: "fetch", Target: "resource-123"}
	_, err := cassette.NewInteraction(req, nil)
	require.Error(t, err)
}

func TestFromInteractionsRevalidatesFingerprints(t *testing.T) {
	good := mustInteraction(t, "resource-123", "A")

	c, err := cassette.FromInteractions([]cassette.Interaction{good})
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	tampered := good
	tampered.Request.Target = "resource-999"

	_, err = cassette.FromInteractions([]cassette.Interaction{tampered})
	require.Error(t, err)

	var verr *cassette.ValidationError
	require.ErrorAs(t, err, &verr)
}
