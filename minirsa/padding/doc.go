// Package padding packs a payload integer into a fixed-width carrier integer.
//
// For a width of bits the carrier has W = bits/4 - 2 hex digits:
//
//	f <payload hex> f <payload hex> ... <length header>
//	|<------------- W-4 digits ----------->|<- 4 ->|
//
// The unit "f" + hex(payload) is repeated and cut to W-4 digits, then a
// 4-digit big-endian header with the unit length is appended. The carrier
// stays below 16^W, so it can be fed to cipher.Encrypt under any modulus of
// at least bits-7 bits. The marker digit f guarantees the carrier's own hex
// rendering starts exactly at the unit.
package padding
