// Package anneal - bitstring interop with externally produced samples.
//
// Hardware and simulator backends emit measurement outcomes as bitstrings.
// The index-order convention is a real interop contract: the backends this
// library is compared against write qubit 0 as the LAST character, i.e. the
// string must be read in reverse to align with this engine's vertex
// numbering. BitOrder makes that convention explicit instead of positional.
package anneal

// BitOrder declares how a bitstring's characters map to vertex indices.
type BitOrder int

const (
	// VertexOrder maps character k to vertex k (s[0] is vertex 0).
	VertexOrder BitOrder = iota
	// ReversedOrder maps character k to vertex n−1−k (s[n-1] is vertex 0).
	// This is the convention of the hardware samples the engine is compared
	// against; apply it when ingesting external measurement outcomes.
	ReversedOrder
)

// ParseBitstring decodes s into an occupation vector under the given order.
// '1' marks an occupied vertex, '0' an unoccupied one; any other character
// yields ErrBadBitstring. The empty string decodes to an empty vector.
//
// Complexity: O(len(s)).
func ParseBitstring(s string, order BitOrder) ([]bool, error) {
	var (
		n   = len(s)
		occ = make([]bool, n)
		k   int
		v   int
	)
	for k = 0; k < n; k++ {
		v = k
		if order == ReversedOrder {
			v = n - 1 - k
		}
		switch s[k] {
		case '1':
			occ[v] = true
		case '0':
			occ[v] = false
		default:
			return nil, ErrBadBitstring
		}
	}

	return occ, nil
}

// FormatBitstring encodes an occupation vector as a bitstring under the given
// order. It is the exact inverse of ParseBitstring for the same order.
//
// Complexity: O(len(occ)).
func FormatBitstring(occ []bool, order BitOrder) string {
	var (
		n   = len(occ)
		buf = make([]byte, n)
		k   int
		v   int
	)
	for k = 0; k < n; k++ {
		v = k
		if order == ReversedOrder {
			v = n - 1 - k
		}
		if occ[v] {
			buf[k] = '1'
		} else {
			buf[k] = '0'
		}
	}

	return string(buf)
}
