// Package keys builds RSA key pairs from two generated primes.
//
// The public exponent is fixed (65537 unless configured otherwise) and the
// private exponent is its inverse modulo the totient (p-1)(q-1), found with
// arith.ExtendedGCD. An attempt whose exponent is not coprime to the totient
// (only possible after a primality false positive, or when p = q) is retried
// with fresh primes up to Config.MaxAttempts times.
package keys
