// Package ca compiles cellular-automaton search problems into CNF formulas.
//
// A search problem describes a rectangular region of space-time, decomposed
// into sub-patterns that are either fully known or carry symmetry
// constraints over unknown cells. Composing the sub-patterns over the
// region and walking every rule-bound transition yields a CNF instance
// whose satisfying assignments correspond to concrete patterns obeying the
// cellular-automaton rule.
package ca
