// Package scramble generates random move sequences, inverts them, and
// converts between cube.Move values and the external move-token notation
// (a face letter, optionally followed by ` for a counter-clockwise quarter
// turn or 2 for a half turn).
package scramble
