// Package bitvec provides a dynamically sized bit vector used as the hash
// code of a random-projection LSH hasher.
//
// Unlike a machine-word integer, a BitVec supports arbitrary lengths, so
// hasher plane counts are not limited to 64. Its canonical Key form makes
// it usable as a map key with value semantics: two codes collide exactly
// when their length and bit content match.
package bitvec
