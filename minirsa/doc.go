// Package minirsa provides a minimal RSA cryptosystem built from first principles.
//
// MiniRSA is meant for experimentation and learning. It generates probable primes with
// trial division and Miller-Rabin, derives exponents with the extended Euclidean algorithm,
// encrypts with square-and-multiply exponentiation, and packs payloads into fixed-width
// carriers with a length-tagged repetition padding. It is not constant time and its default
// random source is not cryptographically secure.
package minirsa
