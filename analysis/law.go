package analysis

import "strings"

// LawType represents the type of error scaling law.
type LawType int

const (
	// LawTypeLinear represents the linear law: error = k*h
	LawTypeLinear LawType = iota
	// LawTypeQuadratic represents the quadratic law: error = k*h²
	LawTypeQuadratic
	// LawTypeCubic represents the cubic law: error = k*h³
	LawTypeCubic
)

// lawTypeNames maps LawType to their string representations.
var lawTypeNames = map[LawType]string{
	LawTypeLinear:    "linear",
	LawTypeQuadratic: "quadratic",
	LawTypeCubic:     "cubic",
}

// lawTypeTerms maps LawType to the offset term in their formulas.
var lawTypeTerms = map[LawType]string{
	LawTypeLinear:    "h",
	LawTypeQuadratic: "h²",
	LawTypeCubic:     "h³",
}

// String returns the string representation of the law type.
func (lt LawType) String() string {
	if name, exists := lawTypeNames[lt]; exists {
		return name
	}

	return "unknown"
}

// lawTypeFromString maps string names to LawType.
var lawTypeFromString = map[string]LawType{
	"linear":    LawTypeLinear,
	"quadratic": LawTypeQuadratic,
	"cubic":     LawTypeCubic,
}

// LawTypeFromString returns the LawType for a given string name.
// Returns LawType(-1) for unknown names.
func LawTypeFromString(name string) LawType {
	if lawType, exists := lawTypeFromString[strings.ToLower(name)]; exists {
		return lawType
	}

	return LawType(-1) // Invalid LawType
}

// raise returns h lifted to the law's power.
func (lt LawType) raise(h float64) float64 {
	switch lt {
	case LawTypeLinear:
		return h
	case LawTypeQuadratic:
		return h * h
	case LawTypeCubic:
		return h * h * h
	default:
		return h
	}
}
