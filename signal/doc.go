// Package signal provides pure scalar and vector transforms for conditioning
// input values: clamping, wrapping, normalizing, deadzoning, decaying,
// inverting and scaling.
//
// Every function is total over its stated domain and has no side effects.
// Vector variants apply the scalar function to each component
// independently. Invalid ranges are reported as ErrInvalidRange; a function
// never substitutes a clamped or "nearest" range on the caller's behalf.
//
// NaN inputs propagate: a NaN x yields NaN (or fails range validation when
// it appears in a bound).
package signal
