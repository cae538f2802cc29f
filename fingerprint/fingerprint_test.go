package fingerprint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osoekawaitlab/interposition/fingerprint"
)

func TestComputeDeterministic(t *testing.T) {
	headers := []fingerprint.HeaderPair{{Name: "X-First", Value: "1"}}

	fp1, err := fingerprint.Compute("http", "GET", "/resource", headers, []byte("body"))
	require.NoError(t, err)

	fp2, err := fingerprint.Compute("http", "GET", "/resource", headers, []byte("body"))
	require.NoError(t, err)

	require.Equal(t, fp1, fp2)
}

func TestComputeHeaderOrderSensitivity(t *testing.T) {
	a := []fingerprint.HeaderPair{{Name: "X-First", Value: "1"}, {Name: "X-Second", Value: "2"}}
	b := []fingerprint.HeaderPair{{Name: "X-Second", Value: "2"}, {Name: "X-First", Value: "1"}}

	fpA, err := fingerprint.Compute("http", "GET", "/resource", a, nil)
	require.NoError(t, err)

	fpB, err := fingerprint.Compute("http", "GET", "/resource", b, nil)
	require.NoError(t, err)

	require.NotEqual(t, fpA, fpB)
}

func TestComputeRejectsEmptyRequiredFields(t *testing.T) {
	cases := []struct {
		name              string
		protocol, act, tg string
	}{
		{"empty protocol", "", "GET", "/x"},
		{"empty action", "http", "", "/x"},
		{"empty target", "http", "GET", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fingerprint.Compute(tc.protocol, tc.act, tc.tg, nil, nil)
			require.ErrorIs(t, err, fingerprint.ErrEmptyField)
		})
	}
}

func TestFingerprintHexRoundTrip(t *testing.T) {
	fp, err := fingerprint.Compute("http", "GET", "/resource", nil, []byte("x"))
	require.NoError(t, err)

	parsed, err := fingerprint.FromHex(fp.String())
	require.NoError(t, err)
	require.Equal(t, fp, parsed)
}

func TestComputeDistinguishesHeaderFieldBoundaries(t *testing.T) {
	// A header pair ("ab", "c") must not collide with ("a", "bc"): the
	// length-prefixed framing must not let the byte stream be re-split
	// across the name/value boundary.
	a := []fingerprint.HeaderPair{{Name: "ab", Value: "c"}}
	b := []fingerprint.HeaderPair{{Name: "a", Value: "bc"}}

	fp1, err := fingerprint.Compute("http", "GET", "/x", a, nil)
	require.NoError(t, err)

	fp2, err := fingerprint.Compute("http", "GET", "/x", b, nil)
	require.NoError(t, err)

	require.NotEqual(t, fp1, fp2)
}
