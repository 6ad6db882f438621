// SPDX-License-Identifier: MIT
// Package: cliquegen/cnf
//
// random.go — seeded formula generators feeding the reduction:
//   - RandomFormula: uniform random k-CNF (optionally crypto-style mixed widths).
//   - PlantedFormula: random 3-CNF with a known satisfying assignment, so the
//     reduced graph is guaranteed a clique of size = clause count.
//
// Determinism: each call owns its rand.Rand (seed 0 ⇒ fixed default), and
// variable sampling goes through rng.Perm, never map iteration.

package cnf

import (
	"fmt"
	"math/rand"
)

const (
	methodRandomFormula  = "RandomFormula"
	methodPlantedFormula = "PlantedFormula"

	// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
	defaultRNGSeed int64 = 1

	// plantedSkipProbability is the chance a planted-formula literal is left
	// random instead of forced to satisfy its clause (original suite value).
	plantedSkipProbability = 0.3
)

// cryptoWidths is the mixed clause-width pool used when RandomFormula is
// asked for width ≤ 0: 3-SAT dominates, with 2- and 4-literal clauses mixed
// in the proportions of realistic hash-circuit encodings.
var cryptoWidths = []int{2, 3, 3, 3, 4}

// RandomFormula generates a random CNF over vars variables with the given
// clause count. width > 0 fixes the clause width (capped at vars);
// width ≤ 0 draws each clause's width from the crypto-style pool.
//
// Complexity: O(clauses × vars) time (distinct-variable sampling via Perm).
func RandomFormula(vars, clauses, width int, seed int64) (Formula, error) {
	if vars < 1 {
		return nil, fmt.Errorf("%s: vars=%d: %w", methodRandomFormula, vars, ErrTooFewVariables)
	}
	if clauses < 1 {
		return nil, fmt.Errorf("%s: clauses=%d: %w", methodRandomFormula, clauses, ErrBadClauseCount)
	}

	rng := formulaRNG(seed)
	f := make(Formula, 0, clauses)
	for i := 0; i < clauses; i++ {
		w := width
		if w <= 0 {
			w = cryptoWidths[rng.Intn(len(cryptoWidths))]
		}
		if w > vars {
			w = vars
		}

		clause := make(Clause, 0, w)
		for _, v := range sampleVars(rng, vars, w) {
			if rng.Float64() > 0.5 {
				clause = append(clause, v)
			} else {
				clause = append(clause, -v)
			}
		}
		f = append(f, clause)
	}

	return f, nil
}

// PlantedFormula generates a satisfiable random 3-CNF together with the
// planted assignment that satisfies it. Every clause is forced to contain
// at least one literal true under the assignment, so Reduce on the result
// is guaranteed a clique of size = clauses.
//
// Complexity: O(clauses × vars) time.
func PlantedFormula(vars, clauses int, seed int64) (Formula, Assignment, error) {
	if vars < 1 {
		return nil, nil, fmt.Errorf("%s: vars=%d: %w", methodPlantedFormula, vars, ErrTooFewVariables)
	}
	if clauses < 1 {
		return nil, nil, fmt.Errorf("%s: clauses=%d: %w", methodPlantedFormula, clauses, ErrBadClauseCount)
	}

	rng := formulaRNG(seed)

	// Plant a uniform random assignment first; clauses are built around it.
	assignment := make(Assignment, vars)
	for v := 1; v <= vars; v++ {
		assignment[v] = rng.Float64() < 0.5
	}

	width := 3
	if width > vars {
		width = vars
	}

	f := make(Formula, 0, clauses)
	for i := 0; i < clauses; i++ {
		picked := sampleVars(rng, vars, width)
		clause := make(Clause, 0, width)
		satisfied := false
		for _, v := range picked {
			if rng.Float64() > plantedSkipProbability && !satisfied {
				// Emit the literal the planted assignment makes true.
				if assignment[v] {
					clause = append(clause, v)
				} else {
					clause = append(clause, -v)
				}
				satisfied = true

				continue
			}
			// Otherwise the polarity is a coin flip.
			if rng.Float64() > 0.5 {
				clause = append(clause, v)
			} else {
				clause = append(clause, -v)
			}
		}
		if !satisfied && !clauseSatisfied(clause, assignment) {
			// Force the first literal to agree with the assignment.
			v := picked[0]
			if assignment[v] {
				clause[0] = v
			} else {
				clause[0] = -v
			}
		}
		f = append(f, clause)
	}

	return f, assignment, nil
}

// formulaRNG returns the per-call RNG; seed 0 maps to the fixed default.
func formulaRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// clauseSatisfied reports whether at least one literal of clause is true
// under a (single-clause view of Formula.Satisfied).
func clauseSatisfied(clause Clause, a Assignment) bool {
	for _, lit := range clause {
		if (lit > 0 && a[lit]) || (lit < 0 && !a[-lit]) {
			return true
		}
	}

	return false
}

// sampleVars draws w distinct variable ids from 1..vars via a seeded
// permutation; ids are returned in permutation order (stable per rng state).
func sampleVars(rng *rand.Rand, vars, w int) []int {
	perm := rng.Perm(vars)
	out := make([]int, w)
	for i := 0; i < w; i++ {
		out[i] = perm[i] + 1
	}

	return out
}
