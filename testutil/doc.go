// Package testutil provides reference implementations for verifying the
// approximate indexes: an exact brute-force nearest-neighbor search and a
// recall measure against it.
package testutil
