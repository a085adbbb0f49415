// Package app contains the gnomes command logic: it turns a Config into a
// grid, runs the selected solver(s) and writes a report. It is decoupled from
// flag parsing so that it can be driven directly from tests.
package app
