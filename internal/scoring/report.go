package scoring

// ItemScore records the award for a single rubric item.
type ItemScore struct {
	Name    string  `json:"name"`
	Section string  `json:"section"`
	Awarded float64 `json:"awarded"`
	Max     float64 `json:"max"`
	Status  Status  `json:"status"`
}

// SectionTotal records a section subtotal after capping.
type SectionTotal struct {
	Name    string  `json:"name"`
	Awarded float64 `json:"awarded"`
	Max     float64 `json:"max"`
}

// Total is the capped grand total of an evaluation.
type Total struct {
	Awarded float64 `json:"awarded"`
	Max     float64 `json:"max"`
}

// Report is the sole output of the rubric engine. It is immutable after
// construction and safe to serialize.
type Report struct {
	Rubric        string         `json:"rubric"`
	PerItem       []ItemScore    `json:"per_item"`
	SectionTotals []SectionTotal `json:"section_totals"`
	GrandTotal    Total          `json:"grand_total"`
}
