package structure

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"chemgrade/internal/inventory"
)

// Key identifies one chemical structure. Folders sharing a key are
// duplicates of the same structure; one representative is kept.
type Key string

// Role classifies a structure within the strain ladder.
type Role string

const (
	RoleCyclo  Role = "cyclo"
	RoleMethyl Role = "methyl"
	RoleOther  Role = "other"
)

// Identity is the resolved structure identity of one folder.
type Identity struct {
	Key      Key
	Role     Role
	RingSize int
}

var ringNames = map[string]int{
	"cycloprop": 3,
	"cyclobut":  4,
	"cyclopent": 5,
	"cyclohex":  6,
	"cyclohept": 7,
	"cyclooct":  8,
}

var (
	reFormula = regexp.MustCompile(`(?i)c(\d+)h\d+`)
	reMethyl  = regexp.MustCompile(`(?i)methyl|_ch3`)
)

// Classify resolves a folder to its structure identity. Topology wins when
// the geometry parses; otherwise the folder name decides. The result is
// never empty: an unrecognizable folder keys on its own normalized name and
// forms a singleton group.
func Classify(folder inventory.Folder) Identity {
	if folder.GeometryFile != "" {
		if identity, ok := classifyGeometry(folder.GeometryFile); ok {
			return identity
		}
	}
	return classifyName(folder.Name)
}

// classifyGeometry derives an identity from the bond graph of the folder's
// primary geometry.
func classifyGeometry(path string) (Identity, bool) {
	atoms, err := ReadXYZ(path)
	if err != nil {
		return Identity{}, false
	}
	mol := InferBonds(atoms)
	role, ringSize := mol.classifyRing()
	if role == RoleCyclo || role == RoleMethyl {
		return Identity{
			Key:      Key(fmt.Sprintf("%s/%d", role, ringSize)),
			Role:     role,
			RingSize: ringSize,
		}, true
	}
	return Identity{
		Key:  Key("mol/" + mol.graphFingerprint()),
		Role: RoleOther,
	}, true
}

// classifyName is the deterministic fallback when no geometry is readable.
// Ring names and CnHm formulas are recognized; anything else groups by the
// lowercased folder name.
func classifyName(name string) Identity {
	lower := strings.ToLower(name)
	methyl := reMethyl.MatchString(lower)

	for prefix, ringSize := range ringNames {
		if !strings.Contains(lower, prefix) {
			continue
		}
		if methyl {
			return Identity{
				Key:      Key(fmt.Sprintf("%s/%d", RoleMethyl, ringSize)),
				Role:     RoleMethyl,
				RingSize: ringSize,
			}
		}
		return Identity{
			Key:      Key(fmt.Sprintf("%s/%d", RoleCyclo, ringSize)),
			Role:     RoleCyclo,
			RingSize: ringSize,
		}
	}

	if m := reFormula.FindStringSubmatch(lower); m != nil {
		carbons, err := strconv.Atoi(m[1])
		if err == nil && carbons >= 3 {
			if methyl {
				// A methyl carbon sits outside the ring.
				return Identity{
					Key:      Key(fmt.Sprintf("%s/%d", RoleMethyl, carbons-1)),
					Role:     RoleMethyl,
					RingSize: carbons - 1,
				}
			}
			return Identity{
				Key:      Key(fmt.Sprintf("%s/%d", RoleCyclo, carbons)),
				Role:     RoleCyclo,
				RingSize: carbons,
			}
		}
	}

	return Identity{Key: Key("name/" + lower), Role: RoleOther}
}
