// Package smc evaluates a veteran's conditions against the eight Special
// Monthly Compensation tiers (K, L, M, N, O, R1, R2, S).
//
// K is additive per qualifying loss and stacks on top of whichever of S, L,
// M and O pays the most; those four substitute for one another. N, R1 and R2
// depend on facts structured input cannot establish, so they are reported as
// potential levels with a recommendation rather than as eligibility.
package smc
