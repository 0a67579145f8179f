// Package random supplies the random integers MiniRSA samples primes and
// Miller-Rabin witnesses from.
//
// Every consumer depends only on the Source interface, so the weak default
// can be replaced without touching any algorithm:
//   - HexSource: math/rand/v2 hex digits (default, NOT cryptographically secure)
//   - ReaderSource: any io.Reader; NewCryptoSource wraps crypto/rand
//   - NewStreamSource: HKDF-SHA256 seeded ChaCha20 keystream, deterministic
//     for a given seed and suitable for reproducible tests
package random
