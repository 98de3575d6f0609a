package ladder

// Config bounds a strain series and fixes its anchor.
type Config struct {
	Anchor  int
	MinRing int
	MaxRing int
}

// DefaultConfig covers the cycloalkane benchmark domain, rings 3 through 8
// anchored at the conventionally strain-free six-membered ring.
var DefaultConfig = Config{Anchor: 6, MinRing: 3, MaxRing: 8}

// Point is one cumulative strain value pair in kcal/mol. Nil marks an
// undefined value: the chain from the anchor to this index is broken.
type Point struct {
	H *float64
	G *float64
}

// Series maps ring size to cumulative strain relative to the anchor.
type Series map[int]Point

// BuildSeries chains adjacent deltas into cumulative strain. The anchor is
// exactly zero by definition. Above the anchor, series[n] = series[n-1] +
// delta(n); below, series[n] = series[n+1] - delta(n+1). An undefined delta
// or an undefined prior value keeps the result nil, and the gap propagates
// outward in that direction; absence is never patched with zero.
func BuildSeries(deltas map[int]Delta, cfg Config) Series {
	series := make(Series, cfg.MaxRing-cfg.MinRing+1)
	zeroH, zeroG := 0.0, 0.0
	series[cfg.Anchor] = Point{H: &zeroH, G: &zeroG}

	for n := cfg.Anchor + 1; n <= cfg.MaxRing; n++ {
		prev := series[n-1]
		delta := deltas[n]
		series[n] = Point{
			H: chainAdd(prev.H, delta.H),
			G: chainAdd(prev.G, delta.G),
		}
	}
	for n := cfg.Anchor - 1; n >= cfg.MinRing; n-- {
		next := series[n+1]
		delta := deltas[n+1]
		series[n] = Point{
			H: chainSubtract(next.H, delta.H),
			G: chainSubtract(next.G, delta.G),
		}
	}
	return series
}

func chainAdd(prior, delta *float64) *float64 {
	if prior == nil || delta == nil {
		return nil
	}
	v := *prior + *delta
	return &v
}

func chainSubtract(prior, delta *float64) *float64 {
	if prior == nil || delta == nil {
		return nil
	}
	v := *prior - *delta
	return &v
}
