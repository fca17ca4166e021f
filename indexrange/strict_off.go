//go:build !strict

package indexrange

// strictChecks is disabled by default; build with -tags strict to enable.
const strictChecks = false
