//go:build strict

package indexrange

// strictChecks enables order and direction assertions on list insertion.
const strictChecks = true
