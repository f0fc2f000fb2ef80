// Package numtower implements the numeric tower of a dynamic-language
// runtime: fixed-width integers, arbitrary-precision integers, exact
// rationals, IEEE-754 binary64 floats, and rectangular complex numbers,
// unified under one family of arithmetic, comparison, and I/O
// operations.
//
// A [Number] is a tagged sum over five variants (see [Kind]). Values
// are immutable after construction; every constructor enforces the
// tower's canonicalization invariants (no Bignum that fits a Fixint,
// no Ratnum with denominator 1, no Compnum with a zero imaginary
// part).
package numtower
