// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"strings"
)

// Kind selects which constructor Build runs. The zero value is not a valid
// kind and makes Build fail with ErrUnknownTopology.
type Kind int

// Supported topologies.
const (
	// Ring is a bidirectional cycle: distance at offset d is min(d, n-d).
	Ring Kind = iota + 1
	// DirectedRing is a one-way cycle: distance at offset d is d.
	DirectedRing
	// Star has hub node 0 and n-1 leaves; leaf to leaf costs 2 hops.
	Star
	// Line is a path 0..n-1: distance between i and j is |i-j|.
	Line
)

// kindNames maps each kind to its command-line name.
var kindNames = map[Kind]string{
	Ring:         "ring",
	DirectedRing: "oneway_ring",
	Star:         "star",
	Line:         "line",
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{Ring, DirectedRing, Star, Line}
}

// String returns the command-line name of k, or "Kind(<n>)" for values
// outside the enumeration.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind resolves a command-line name, ignoring case and surrounding
// whitespace. Unknown names wrap ErrUnknownTopology and list the valid ones.
func ParseKind(s string) (Kind, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if kindNames[k] == want {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownTopology, s, strings.Join(Names(), ", "))
}

// Names returns the command-line names of all kinds in declaration order.
func Names() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = kindNames[k]
	}
	return names
}
