// Package enclosure defines options and sentinel errors for the
// interior classifier.
package enclosure

import "errors"

// Sentinel errors for enclosure operations.
var (
	// ErrNilGrid indicates no border array was supplied.
	ErrNilGrid = errors.New("enclosure: border array must not be nil")
	// ErrConnectivity indicates an unknown Connectivity value.
	ErrConnectivity = errors.New("enclosure: unknown connectivity")
)

// Connectivity selects which cells count as neighbors during the fill.
type Connectivity int

const (
	// ConnFaces connects cells sharing an (N-1)-dimensional face:
	// 2×N neighbors, one step along a single axis. Walls touching only
	// at corners still seal under ConnFaces.
	ConnFaces Connectivity = iota
	// ConnMoore additionally connects across edges and corners:
	// 3^N−1 neighbors. Diagonal wall contacts leak under ConnMoore.
	ConnMoore
)

// String returns the constant name for logs and errors.
func (c Connectivity) String() string {
	switch c {
	case ConnFaces:
		return "ConnFaces"
	case ConnMoore:
		return "ConnMoore"
	default:
		return "Connectivity(?)"
	}
}

// Options contains tunable parameters for interior classification.
type Options struct {
	// Conn chooses face-only or Moore neighborhood traversal.
	Conn Connectivity
}

// DefaultOptions returns the conventional physical setting:
// face-only connectivity, under which a diagonal contact seals.
func DefaultOptions() Options {
	return Options{Conn: ConnFaces}
}
