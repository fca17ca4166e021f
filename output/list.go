package output

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/hupe1980/hybridize/interaction"
)

// InteractionList keeps the best K distinct interactions ever reported.
//
// Entries are sorted ascending by interaction.Compare, so the best
// interaction is at index 0. The list owns deep copies of everything it
// stores; callers may reuse the interactions they pass to Add.
type InteractionList struct {
	// mu guards the whole Add transaction: count, search, duplicate
	// check, eviction and insertion.
	mu       sync.Mutex
	capacity int
	reported uint64
	stored   []interaction.Interaction

	opts options
}

var _ Handler = (*InteractionList)(nil)

const (
	// MaxCapacity is the largest number of interactions a list may keep.
	MaxCapacity = 1 << 24

	// The backing slice grows on demand beyond this size.
	preallocLimit = 1024
)

// New creates a list that stores at most maxToStore interactions,
// 1 <= maxToStore <= MaxCapacity.
func New(maxToStore int, optFns ...Option) (*InteractionList, error) {
	if maxToStore < 1 || maxToStore > MaxCapacity {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, maxToStore)
	}
	return &InteractionList{
		capacity: maxToStore,
		stored:   make([]interaction.Interaction, 0, min(maxToStore, preallocLimit)),
		opts:     applyOptions(optFns),
	}, nil
}

// Add reports an interaction. Empty interactions only count as reported.
// A candidate that ranks equal to a stored entry is a duplicate and dropped.
func (l *InteractionList) Add(in *interaction.Interaction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.reported++

	if in.IsEmpty() {
		return
	}

	n := len(l.stored)
	if n == l.capacity && interaction.Compare(in, &l.stored[n-1]) >= 0 {
		return
	}

	pos, found := slices.BinarySearchFunc(l.stored, in, compareStored)
	if found {
		return
	}

	if n == l.capacity {
		l.stored[n-1] = interaction.Interaction{}
		l.stored = l.stored[:n-1]
		pos = min(pos, len(l.stored))
	}

	l.stored = slices.Insert(l.stored, pos, *in.Clone())
}

func compareStored(e interaction.Interaction, target *interaction.Interaction) int {
	return interaction.Compare(&e, target)
}

// AddRange always fails: a range carries no base pairs to store.
func (l *InteractionList) AddRange(r interaction.Range) error {
	return fmt.Errorf("%w: interaction list cannot store range %s", ErrUnsupported, r)
}

// Reported returns how many interactions were reported, including empty
// and discarded ones.
func (l *InteractionList) Reported() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reported
}

// Len returns the number of stored interactions.
func (l *InteractionList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.stored)
}

// Cap returns the maximal number of stored interactions.
func (l *InteractionList) Cap() int {
	return l.capacity
}

// At returns a copy of the i-th best interaction.
func (l *InteractionList) At(i int) (*interaction.Interaction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i < 0 || i >= len(l.stored) {
		return nil, false
	}
	return l.stored[i].Clone(), true
}

// Interactions returns copies of all stored interactions, best first.
func (l *InteractionList) Interactions() []*interaction.Interaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*interaction.Interaction, len(l.stored))
	for i := range l.stored {
		out[i] = l.stored[i].Clone()
	}
	return out
}

// All iterates over copies of the stored interactions, best first.
// The copies are taken when iteration starts.
func (l *InteractionList) All() iter.Seq2[int, *interaction.Interaction] {
	return func(yield func(int, *interaction.Interaction) bool) {
		for i, in := range l.Interactions() {
			if !yield(i, in) {
				return
			}
		}
	}
}

// Reset drops all stored interactions and the report count.
func (l *InteractionList) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	clear(l.stored)
	l.stored = l.stored[:0]
	l.reported = 0
}
