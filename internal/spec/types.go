package spec

// Rubric is the declarative grading rubric schema loaded from YAML.
type Rubric struct {
	Version   int       `yaml:"version"`
	Name      string    `yaml:"name"`
	MaxPoints float64   `yaml:"max_points"`
	Sections  []Section `yaml:"sections"`
}

// Section groups rubric items under a shared point cap.
type Section struct {
	Name      string  `yaml:"name"`
	MaxPoints float64 `yaml:"max_points"`
	Items     []Item  `yaml:"items"`
}

// Item is one scoreable rubric unit, either boolean or numeric.
type Item struct {
	Name     string  `yaml:"name"`
	Kind     string  `yaml:"kind"`
	Weight   float64 `yaml:"weight"`
	AwardOn  *bool   `yaml:"award_on,omitempty"`
	Error    string  `yaml:"error,omitempty"`
	Bands    []Band  `yaml:"bands,omitempty"`
	Required bool    `yaml:"required,omitempty"`
}

// Band maps a maximum error to the fraction of the item weight awarded.
type Band struct {
	MaxError float64 `yaml:"max_error"`
	Fraction float64 `yaml:"fraction"`
}

// Item kinds.
const (
	KindBoolean = "boolean"
	KindNumeric = "numeric"
)

// Error modes for numeric items.
const (
	ErrorAbsolute = "absolute"
	ErrorRelative = "relative"
)
