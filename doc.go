// Package mddbb is a branch-and-bound solver over bounded-width multi-
// valued decision diagrams (MDDs) for discrete maximization problems.
//
// 🧩 What is mddbb?
//
//	A single-threaded, pure-Go core that compiles a user-supplied Problem
//	into bounded-width MDDs — layer by layer — yielding both feasible
//	solutions (restricted diagrams) and upper bounds (relaxed diagrams). A
//	best-first search over these compilations converges on a proven
//	optimum, or returns the best incumbent found within a time budget.
//
// ✨ Core pieces:
//
//   - state    — the opaque Representation contract a Problem's payload must satisfy
//   - node     — the MDD node: state, value, relaxed bound, assignment prefix
//   - layer    — a state-deduplicated collection of nodes
//   - selector — pluggable VariableSelector / MergeSelector / DeleteSelector policies
//   - mdd      — the compile engine: restricted (delete) and relaxed (merge) modes
//   - queue    — the Solver's priority queue, ascending by relaxed value
//   - solver   — the best-first branch-and-bound driver
//   - problem  — the Problem contract external encodings implement
//
// Two reference problem adapters live alongside the core without being
// part of it:
//
//	minla/    — Minimum Linear Arrangement over a weighted graph
//	examples/ — small end-to-end scenarios (sum-maximization, MinLA on K3)
//
// Quick ASCII sketch of one compile step:
//
//	L_pos:      [u1]   [u2]   [u3]
//	              |      |      |
//	          successors(u, v) for the branching variable v
//	              |      |      |
//	L_pos+1:   [s1 s2] [s3]  [s4 s5 s6]   <- deduplicated by state
//	              \_____ width > W? merge or delete _____/
//
// See SPEC_FULL.md for the full component contract and DESIGN.md for how
// each package is grounded.
package mddbb
