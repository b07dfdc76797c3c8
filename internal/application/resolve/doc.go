// Package resolve turns an operator-typed fragment into concrete pod names.
//
// Resolution runs in two phases. Pods whose name contains the fragment win
// outright and keep their listing order. Only when none do, every pod is
// ranked by a similarity distance and the closest few become candidates.
// When more than one candidate remains, a Disambiguator asks the operator to
// pick one by letter, or 'z' for all of the displayed ones.
package resolve
