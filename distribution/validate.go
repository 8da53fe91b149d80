package distribution

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/teatak/charstat/alphabet"
	"github.com/teatak/charstat/frequency"
)

// Tolerance is the allowed distance of a distribution's mass from 1.
const Tolerance = 1e-7

// ErrNoObservations marks a distribution whose history was never observed.
var ErrNoObservations = errors.New("history has no observed continuation")

// MassError reports a distribution whose probabilities do not sum to 1.
type MassError struct {
	History string
	Sum     float64
	err     error
}

func (e *MassError) Error() string {
	msg := fmt.Sprintf("distribution for history %q sums to %.10f", e.History, e.Sum)
	if e.err != nil {
		return msg + ": " + e.err.Error()
	}
	return msg
}

// Cause returns ErrNoObservations for an empty distribution, nil otherwise.
func (e *MassError) Cause() error { return e.err }

// Unwrap supports errors.Is from the standard library.
func (e *MassError) Unwrap() error { return e.err }

// CheckMass returns a *MassError when the mass of d is not within Tolerance of 1.
func CheckMass(d Distribution) error {
	sum := d.Sum()
	if math.Abs(1-sum) <= Tolerance {
		return nil
	}
	e := &MassError{History: d.History, Sum: sum}
	if d.Empty() {
		e.err = ErrNoObservations
	}
	return e
}

// Validate asserts that d sums to 1 and panics with a *MassError otherwise.
// An empty distribution always fails, so callers branch on Empty first.
func Validate(d Distribution) {
	if err := CheckMass(d); err != nil {
		panic(err)
	}
}

// CheckCoverage reports characters counted in t that the alphabet lacks.
// Such characters can never be predicted by Estimate.
func CheckCoverage(t *frequency.Table, a alphabet.Alphabet) error {
	var missing []string
	for _, c := range t.Characters() {
		if !a.Contains(c) {
			missing = append(missing, string(c))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &alphabet.ConfigurationError{
		Field:  "alphabet",
		Reason: "corpus characters not covered: " + strings.Join(missing, " "),
	}
}
