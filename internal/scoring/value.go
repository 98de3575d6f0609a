package scoring

// Value carries one extracted metric, numeric or boolean. A nil field means
// the metric was not measurable; absence is preserved, never defaulted.
type Value struct {
	Number *float64 `json:"number,omitempty"`
	Bool   *bool    `json:"bool,omitempty"`
}

// Num wraps a float64 into a numeric Value.
func Num(v float64) Value {
	return Value{Number: &v}
}

// Flag wraps a bool into a boolean Value.
func Flag(v bool) Value {
	return Value{Bool: &v}
}

// Missing is the zero Value; both fields are nil.
func Missing() Value {
	return Value{}
}
