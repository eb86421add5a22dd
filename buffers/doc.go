// Package buffers marshals tuples into byte buffers.
//
// Byte storage always comes from an explicitly injected Factory; there is no
// package-level default. A Util bundles a factory with a byte order and a
// compression codec, creates typed buffers and tracks how much it allocated.
//
// Tuples are always written and read in component index order: x, y, then z
// and w when present.
package buffers
