package shape

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"io"
	"math"

	"github.com/voxfield/fluxgrid/dist"
	"github.com/voxfield/fluxgrid/grid"
)

// Fingerprint identifies one sampling request: the distribution's
// identity record plus the exact coordinate axes. Two requests with
// equal fingerprints must sample identically, which is what makes the
// single-slot intensity cache sound.
type Fingerprint [sha256.Size]byte

// String returns a short hex prefix for logs.
func (f Fingerprint) String() string { return hex.EncodeToString(f[:8]) }

// fingerprint hashes a canonical byte encoding of (name, parameter
// record, rank, per-axis coordinate bits). Strings are length-prefixed
// and floats written as raw IEEE 754 bits, so distinct inputs cannot
// collide by concatenation and -0 vs 0 or NaN payloads stay distinct.
func fingerprint(d dist.Distribution, ax grid.Axes) Fingerprint {
	h := sha256.New()
	var buf [8]byte

	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	writeString := func(s string) {
		writeInt(len(s))
		io.WriteString(h, s)
	}

	writeString(d.Name())
	params := d.Params()
	writeInt(len(params))
	for _, p := range params {
		writeString(p.Name)
		writeFloat(p.Value)
	}
	writeInt(d.Rank())
	writeInt(len(ax))
	for _, axis := range ax {
		writeInt(len(axis))
		for _, v := range axis {
			writeFloat(v)
		}
	}

	var fp Fingerprint
	h.Sum(fp[:0])
	return fp
}
