// SPDX-License-Identifier: MIT
// Package: cliquegen/sat3
//
// formula.go — hash-derived clause generation.
//
// Every clause is a pure function of (index, nVars): the sha256 digest of
// the string "clause_<index>_<nVars>" is sliced into three candidate
// variables and three polarity bits. No RNG, no shared state, no call-order
// dependence: two processes derive the same formula forever.

package sat3

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/cliquegen/cnf"
)

// Digest slice layout (byte offsets into the sha256 sum).
const (
	varBytesA = 0 // [0:2) → first variable
	varBytesB = 2 // [2:4) → second variable
	varBytesC = 4 // [4:6) → third variable
	polByteA  = 6 // parity → first polarity
	polByteB  = 7 // parity → second polarity
	polByteC  = 8 // parity → third polarity
)

// DeriveFormula returns the synthetic 3-CNF with nClauses clauses over
// nVars variables. nVars must be ≥ 3 so linear probing can always reach
// three distinct variables.
//
// Complexity: O(nClauses) time (one sha256 per clause), O(nClauses) space.
func DeriveFormula(nVars, nClauses int) (cnf.Formula, error) {
	if nVars < clauseWidth {
		return nil, fmt.Errorf("%s: nVars=%d < %d: %w",
			methodDeriveFormula, nVars, clauseWidth, ErrTooFewVariables)
	}
	if nClauses < 1 {
		return nil, fmt.Errorf("%s: nClauses=%d: %w",
			methodDeriveFormula, nClauses, cnf.ErrBadClauseCount)
	}

	f := make(cnf.Formula, 0, nClauses)
	for i := 0; i < nClauses; i++ {
		f = append(f, deriveClause(i, nVars))
	}

	return f, nil
}

// deriveClause computes clause i over nVars variables from its digest.
func deriveClause(i, nVars int) cnf.Clause {
	sum := sha256.Sum256([]byte(fmt.Sprintf("clause_%d_%d", i, nVars)))

	// Three candidate variables from fixed big-endian digest slices.
	v1 := int(binary.BigEndian.Uint16(sum[varBytesA:varBytesA+2]))%nVars + 1
	v2 := int(binary.BigEndian.Uint16(sum[varBytesB:varBytesB+2]))%nVars + 1
	v3 := int(binary.BigEndian.Uint16(sum[varBytesC:varBytesC+2]))%nVars + 1

	// Deterministic linear probing: increment and re-reduce until distinct.
	v2 = distinctVariable(v2, nVars, v1)
	v3 = distinctVariable(v3, nVars, v1, v2)

	return cnf.Clause{
		signLiteral(v1, sum[polByteA]),
		signLiteral(v2, sum[polByteB]),
		signLiteral(v3, sum[polByteC]),
	}
}

// distinctVariable resolves a candidate collision by the deterministic
// linear probe (increment and re-reduce). The probe step advances by two
// modulo nVars, so the walk is confined to one residue class; after nVars
// fruitless steps it falls back to the smallest unused variable. Inputs
// whose walk already succeeded are unaffected: the walk cycles within its
// class, so any escape happens within nVars steps.
func distinctVariable(v, nVars int, taken ...int) int {
	for i := 0; i < nVars && isTaken(v, taken); i++ {
		v = (v+1)%nVars + 1
	}
	if !isTaken(v, taken) {
		return v
	}
	for u := 1; u <= nVars; u++ {
		if !isTaken(u, taken) {
			return u
		}
	}

	// Unreachable: nVars ≥ clauseWidth leaves at least one free variable.
	return v
}

// isTaken reports whether v is among the already-chosen variables.
func isTaken(v int, taken []int) bool {
	for _, t := range taken {
		if v == t {
			return true
		}
	}

	return false
}

// signLiteral applies the parity of b as polarity: even ⇒ positive.
func signLiteral(v int, b byte) int {
	if b%2 == 0 {
		return v
	}

	return -v
}
