// Package wiegand implements the 26-bit Wiegand badge word format:
// encoding a (facility code, card number) pair into a parity-carrying
// 26-bit word, decoding such words back into their fields, and parsing
// the textual forms badge words travel in.
//
// The package is pure computation over value types. It performs no I/O
// and holds no state, so everything here is safe for concurrent use.
package wiegand
