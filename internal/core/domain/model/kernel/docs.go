// Package kernel provides the domain primitives shared by rules and packages.
//
// The package includes:
//   - Millimeters and Grams: finite, non-negative measurements
//   - Dimensions: an immutable measurement triple with rotation-invariant accessors
//     (Largest, Middle, Smallest, Girth, LengthPlusGirth)
//   - UUID: the identity of a stored service rule
//
// Primitives validate on construction and are immutable afterwards, so they are safe to share
// between goroutines evaluating the same rule table.
package kernel
