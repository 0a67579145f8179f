// Package internalcheck holds source-level policy tests for MiniRSA.
//
// The tests load the minirsa packages with golang.org/x/tools/go/packages and
// inspect their syntax: the numeric core must not delegate to math/big's
// built-in number theory, and key material must not reach the logs.
// It exports nothing.
package internalcheck
