// Package arith provides the integer arithmetic that MiniRSA is built on.
//
// Everything here works on *big.Int but only uses it as a container for
// arbitrary-precision values:
//   - ModPow: right-to-left square-and-multiply exponentiation
//   - SplitPowerOfTwo: n = 2^k * m with m odd (Miller-Rabin setup)
//   - ExtendedGCD: iterative Bezout coefficients
//   - ModInverse: modular inverse derived from ExtendedGCD
//
// Functions never modify their arguments.
package arith
