// Package toddcoxeter implements Todd-Coxeter coset enumeration over a
// present.Presentation: HLT and Felsch strategies sharing one coset
// table and coincidence work-list, with shortlex/lex/recursive
// standardisation of the resulting coset numbering. There is no
// separate deduction queue and no lookahead pass.
package toddcoxeter
