// Package prime tests and generates probable primes.
//
// The combined predicate is trial division by the primes below 100 followed
// by DefaultRounds rounds of Miller-Rabin. Miller-Rabin witnesses are drawn
// with one hex digit less than the candidate, i.e. from a range bounded by
// the candidate's own bit length rather than [2, n-2]. This keeps the
// observable behaviour of the scheme MiniRSA reproduces; it is weaker than
// textbook practice.
package prime
