// Package analysis composes the GF(2) engine into the reports shown next to
// the puzzle: how many boards are solvable, how the identity shapes repeat,
// and how many presses the hardest board needs.
//
// Solvability and Periodicity are cheap for the widths a puzzle uses.
// IdentitySearch and VerifyPeriodicity evaluate many operators and accept a
// context; GodsNumber walks the reachable state space breadth first and
// refuses spaces larger than 2^WithMaxRank states.
package analysis
