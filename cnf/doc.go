// Package cnf models CNF (Conjunctive Normal Form) formulas and implements
// the SAT-to-clique reduction that turns a formula into a k-partite graph
// with a provable maximum-clique guarantee.
//
// Model:
//
//   - A Clause is an ordered sequence of non-zero integer literals; literal
//     -k is the negation of variable k; variables are 1..Variables().
//   - A Formula is an ordered sequence of clauses. It is the sole
//     interchange type between SAT-instance sources (sat3, the random and
//     planted generators here) and the reduction.
//
// Reduction (Reduce):
//
//	One vertex per literal occurrence, in clause order then position order;
//	the vertex's partition is its clause index. Vertices u and v are
//	adjacent iff they come from different clauses AND their literals are
//	not complementary. The scan is a deliberate one-pass O(V²) pairwise
//	test; the resulting density is inherent to the construction.
//
// Guarantee (by construction, exercised in the tests):
//
//	Picking one true literal per clause of any satisfying assignment yields
//	a clique of size = clause count; no edge ever joins two vertices of the
//	same partition; the maximum clique size equals the largest number of
//	simultaneously satisfiable clauses.
//
// Errors:
//
//	ErrEmptyFormula    - formula has no clauses.
//	ErrEmptyClause     - a clause has no literals.
//	ErrZeroLiteral     - a clause contains literal 0.
//	ErrTooFewVariables - a generator was asked for < 1 variables.
//	ErrBadClauseCount  - a generator was asked for < 1 clauses.
package cnf
