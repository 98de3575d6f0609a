package structure

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Covalent radii in angstrom for the elements this benchmark sees. Unknown
// symbols get a generic radius so bond inference stays total.
var covalentRadii = map[string]float64{
	"H": 0.31, "C": 0.76, "N": 0.71, "O": 0.66,
	"F": 0.57, "P": 1.07, "S": 1.05, "Cl": 1.02,
	"Br": 1.20, "I": 1.39,
}

const (
	genericRadius = 0.90
	// Two atoms bond when their distance is within this factor of the sum
	// of covalent radii.
	bondTolerance = 1.25
)

// Molecule is an inferred bond graph over the atoms of a geometry.
type Molecule struct {
	Atoms []Atom
	Bonds [][]int
}

// InferBonds connects atoms whose distance is within covalent reach.
func InferBonds(atoms []Atom) Molecule {
	mol := Molecule{Atoms: atoms, Bonds: make([][]int, len(atoms))}
	for i := 0; i < len(atoms); i++ {
		for j := i + 1; j < len(atoms); j++ {
			if bonded(atoms[i], atoms[j]) {
				mol.Bonds[i] = append(mol.Bonds[i], j)
				mol.Bonds[j] = append(mol.Bonds[j], i)
			}
		}
	}
	return mol
}

func bonded(a, b Atom) bool {
	limit := (radius(a.Symbol) + radius(b.Symbol)) * bondTolerance
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx+dy*dy+dz*dz) <= limit
}

func radius(symbol string) float64 {
	if r, ok := covalentRadii[symbol]; ok {
		return r
	}
	return genericRadius
}

// ringAtoms returns the members of the molecule's unique cycle, or nil when
// the graph has no cycle or more than one. Degree-one vertices are pruned
// repeatedly; a clean single ring leaves exactly the cycle behind, every
// survivor with degree two.
func (m Molecule) ringAtoms() []int {
	degree := make([]int, len(m.Atoms))
	removed := make([]bool, len(m.Atoms))
	for i, neighbors := range m.Bonds {
		degree[i] = len(neighbors)
	}

	pruned := true
	for pruned {
		pruned = false
		for i := range m.Atoms {
			if removed[i] || degree[i] > 1 {
				continue
			}
			removed[i] = true
			pruned = true
			for _, j := range m.Bonds[i] {
				if !removed[j] {
					degree[j]--
				}
			}
		}
	}

	var ring []int
	for i := range m.Atoms {
		if removed[i] {
			continue
		}
		if degree[i] != 2 {
			return nil
		}
		ring = append(ring, i)
	}
	if len(ring) < 3 || !m.connected(ring) {
		return nil
	}
	return ring
}

// connected reports whether the given vertices form one connected component
// of the bond graph restricted to themselves.
func (m Molecule) connected(vertices []int) bool {
	inSet := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		inSet[v] = true
	}
	seen := map[int]bool{vertices[0]: true}
	queue := []int{vertices[0]}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range m.Bonds[v] {
			if inSet[w] && !seen[w] {
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}
	return len(seen) == len(vertices)
}

func (m Molecule) heavyNeighbors(i int) []int {
	var heavy []int
	for _, j := range m.Bonds[i] {
		if m.Atoms[j].Symbol != "H" {
			heavy = append(heavy, j)
		}
	}
	return heavy
}

// classifyRing inspects the unique cycle, if any, and reports the role and
// ring size. A plain cycloalkane has an all-carbon ring with no heavy
// substituents; a methylcycloalkane has exactly one exocyclic terminal
// carbon. Everything else is RoleOther.
func (m Molecule) classifyRing() (Role, int) {
	ring := m.ringAtoms()
	if ring == nil {
		return RoleOther, 0
	}
	inRing := make(map[int]bool, len(ring))
	for _, i := range ring {
		if m.Atoms[i].Symbol != "C" {
			return RoleOther, 0
		}
		inRing[i] = true
	}

	exoHeavy := 0
	for _, i := range ring {
		for _, j := range m.heavyNeighbors(i) {
			if inRing[j] {
				continue
			}
			if m.Atoms[j].Symbol != "C" || len(m.heavyNeighbors(j)) != 1 {
				return RoleOther, 0
			}
			exoHeavy++
		}
	}
	switch exoHeavy {
	case 0:
		return RoleCyclo, len(ring)
	case 1:
		return RoleMethyl, len(ring)
	default:
		return RoleOther, 0
	}
}

// graphFingerprint is a canonical, order-independent hash of the molecular
// graph: formula plus the sorted heavy-atom degree sequence.
func (m Molecule) graphFingerprint() string {
	counts := map[string]int{}
	var degrees []int
	for i, atom := range m.Atoms {
		counts[atom.Symbol]++
		if atom.Symbol != "H" {
			degrees = append(degrees, len(m.heavyNeighbors(i)))
		}
	}
	symbols := make([]string, 0, len(counts))
	for symbol := range counts {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	sort.Ints(degrees)

	var b strings.Builder
	for _, symbol := range symbols {
		fmt.Fprintf(&b, "%s%d", symbol, counts[symbol])
	}
	b.WriteString("|")
	for _, d := range degrees {
		fmt.Fprintf(&b, "%d,", d)
	}
	hash := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(hash[:6])
}
