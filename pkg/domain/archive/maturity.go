package archive

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Maturity is the review lifecycle state of an archived document.
type Maturity string

const (
	MaturityDraft    Maturity = "Draft"
	MaturityReviewed Maturity = "Reviewed"
	MaturityReleased Maturity = "Released"
	MaturityObsolete Maturity = "Obsolete"
)

// AllMaturities returns all valid maturities in lifecycle order.
func AllMaturities() []Maturity {
	return []Maturity{MaturityDraft, MaturityReviewed, MaturityReleased, MaturityObsolete}
}

func (m Maturity) IsValid() bool {
	switch m {
	case MaturityDraft, MaturityReviewed, MaturityReleased, MaturityObsolete:
		return true
	default:
		return false
	}
}

func (m Maturity) String() string { return string(m) }

// Token returns the lowercase form used in canonical filenames.
func (m Maturity) Token() string { return strings.ToLower(string(m)) }

// IsFinal returns true once no further transition is possible.
func (m Maturity) IsFinal() bool { return m == MaturityObsolete }

// CanTransitionTo reports whether the lifecycle allows moving to the target.
// The answer comes from the document maturity state machine, so the edge set
// lives in exactly one place.
func (m Maturity) CanTransitionTo(target Maturity) bool {
	if !m.IsValid() || !target.IsValid() {
		return false
	}
	event, ok := EventForTarget(target)
	if !ok {
		return false
	}
	machine, err := NewMaturityStateMachine(m, "")
	if err != nil {
		return false
	}
	return machine.Transition(event) == nil
}

// ParseMaturity parses a string into a Maturity, case-insensitively.
func ParseMaturity(str string) (Maturity, error) {
	for _, m := range AllMaturities() {
		if strings.EqualFold(str, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid maturity: %s", str)
}

// MustParseMaturity parses a string into a Maturity, panicking on error.
func MustParseMaturity(str string) Maturity {
	m, err := ParseMaturity(str)
	if err != nil {
		panic(err)
	}
	return m
}

// DefaultMaturity returns the maturity a new document starts in.
func DefaultMaturity() Maturity { return MaturityDraft }

// MarshalJSON implements json.Marshaler.
func (m Maturity) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Maturity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMaturity(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
