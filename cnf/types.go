package cnf

import (
	"errors"
	"fmt"
)

// Sentinel errors for formula validation and generator parameters.
var (
	// ErrEmptyFormula indicates a formula with no clauses.
	ErrEmptyFormula = errors.New("cnf: formula has no clauses")

	// ErrEmptyClause indicates a clause with no literals.
	ErrEmptyClause = errors.New("cnf: clause has no literals")

	// ErrZeroLiteral indicates the invalid literal 0 inside a clause.
	ErrZeroLiteral = errors.New("cnf: literal 0 is not valid")

	// ErrTooFewVariables indicates a generator variable count below 1.
	ErrTooFewVariables = errors.New("cnf: variable count too small")

	// ErrBadClauseCount indicates a generator clause count below 1.
	ErrBadClauseCount = errors.New("cnf: clause count too small")
)

// Clause is an ordered sequence of non-zero literals; -k negates variable k.
type Clause []int

// Formula is an ordered sequence of clauses, interpreted as their AND.
type Formula []Clause

// Assignment maps variable id (1-based) to its truth value. Variables
// absent from the map are treated as false.
type Assignment map[int]bool

// Validate checks the structural invariants of f: at least one clause, no
// empty clause, no zero literal. Malformed formulas are configuration
// errors for every consumer in this module.
//
// Complexity: O(total literals).
func (f Formula) Validate() error {
	if len(f) == 0 {
		return ErrEmptyFormula
	}
	for ci, clause := range f {
		if len(clause) == 0 {
			return fmt.Errorf("clause %d: %w", ci, ErrEmptyClause)
		}
		for pi, lit := range clause {
			if lit == 0 {
				return fmt.Errorf("clause %d, position %d: %w", ci, pi, ErrZeroLiteral)
			}
		}
	}

	return nil
}

// Variables returns the largest variable id referenced by f
// (0 for an empty formula).
//
// Complexity: O(total literals).
func (f Formula) Variables() int {
	maxVar := 0
	for _, clause := range f {
		for _, lit := range clause {
			v := lit
			if v < 0 {
				v = -v
			}
			if v > maxVar {
				maxVar = v
			}
		}
	}

	return maxVar
}

// Satisfied reports whether a satisfies every clause of f: each clause must
// contain at least one literal that is true under a.
//
// Complexity: O(total literals).
func (f Formula) Satisfied(a Assignment) bool {
	for _, clause := range f {
		ok := false
		for _, lit := range clause {
			if (lit > 0 && a[lit]) || (lit < 0 && !a[-lit]) {
				ok = true

				break
			}
		}
		if !ok {
			return false
		}
	}

	return true
}
