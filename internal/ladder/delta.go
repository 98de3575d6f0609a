// Package ladder reconstructs relative ring-strain series from pairwise
// reaction energies. Strain is only meaningful relative to an anchor ring
// size, so the series is built by chained sums of adjacent reaction deltas
// walking outward from the anchor; a missing delta breaks the chain and
// every index beyond the break stays undefined.
package ladder

// HartreeToKcalPerMol converts atomic-unit energies to kcal/mol. Conversion
// happens exactly once, when a delta is formed, never at display time.
const HartreeToKcalPerMol = 627.5094740631

// Energies holds per-structure total enthalpy and free energy in atomic
// units. Nil means the value was absent from the output.
type Energies struct {
	H *float64
	G *float64
}

// Delta is the directed reaction energy cyclo(n) -> methyl(n-1) in kcal/mol.
type Delta struct {
	H *float64
	G *float64
}

// AdjacentDeltas computes Delta(n) = (methyl(n-1) - cyclo(n)) * conversion
// for every ring size n where both records exist. Enthalpy and free energy
// are converted independently; a missing operand leaves that component nil.
func AdjacentDeltas(cyclo, methyl map[int]Energies, conversion float64) map[int]Delta {
	deltas := make(map[int]Delta)
	for n, ring := range cyclo {
		open, ok := methyl[n-1]
		if !ok {
			continue
		}
		var delta Delta
		if open.H != nil && ring.H != nil {
			v := (*open.H - *ring.H) * conversion
			delta.H = &v
		}
		if open.G != nil && ring.G != nil {
			v := (*open.G - *ring.G) * conversion
			delta.G = &v
		}
		if delta.H != nil || delta.G != nil {
			deltas[n] = delta
		}
	}
	return deltas
}
