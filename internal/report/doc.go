// Package report writes the per-color usage summary of a palette run.
//
// The same rows render in three forms: a tab-separated text file for the
// parts list, a JSON array for tooling, and a color-swatched table for
// the terminal. Rows arrive ordered by descending stud count and keep
// that order everywhere.
package report
