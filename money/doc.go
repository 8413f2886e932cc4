// Package money provides exact fixed-point monetary amounts.
//
// An Amount is an int64 count of minor units scaled by 10^4, so every value
// carries four fractional digits exactly. Decimal strings are converted at
// the boundary via Parse and rendered via String; all arithmetic inside is
// checked integer arithmetic, and overflow is reported as a typed error
// rather than wrapping silently.
package money
