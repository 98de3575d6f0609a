package structure

import (
	"sort"

	"chemgrade/internal/inventory"
)

// MinimumProbe reports whether a folder's output shows an all-real
// vibrational spectrum: true for a confirmed minimum, false for an
// imaginary mode, nil when no spectrum is readable.
type MinimumProbe func(inventory.Folder) *bool

// SelectRepresentatives groups folders by structure key and keeps one folder
// per group. Preference within a group: folders holding a non-diagnostic
// output, then folders probed as a real minimum, then the lexicographically
// first path. The order is total, so repeated runs over the same input set
// pick identical representatives.
func SelectRepresentatives(folders []inventory.Folder, probe MinimumProbe) []inventory.Folder {
	groups := make(map[Key][]inventory.Folder)
	for _, folder := range folders {
		key := Classify(folder).Key
		groups[key] = append(groups[key], folder)
	}

	keys := make([]Key, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	representatives := make([]inventory.Folder, 0, len(keys))
	for _, key := range keys {
		representatives = append(representatives, pickRepresentative(groups[key], probe))
	}
	return representatives
}

func pickRepresentative(group []inventory.Folder, probe MinimumProbe) inventory.Folder {
	sort.Slice(group, func(i, j int) bool { return group[i].Path < group[j].Path })

	pool := group
	var withOutput []inventory.Folder
	for _, folder := range group {
		if folder.HasOutput() {
			withOutput = append(withOutput, folder)
		}
	}
	if len(withOutput) > 0 {
		pool = withOutput
	}

	if probe != nil {
		for _, folder := range pool {
			if real := probe(folder); real != nil && *real {
				return folder
			}
		}
	}
	return pool[0]
}
