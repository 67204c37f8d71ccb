package navigation

import "iter"

// backStack holds the navigation history. The last entry is visible.
// Every mutation replaces the backing slice so snapshots taken earlier keep
// seeing the entries they were taken with.
type backStack struct {
	entries []*Entry
	version uint64
}

// push appends an entry.
func (s *backStack) push(e *Entry) {
	next := make([]*Entry, len(s.entries), len(s.entries)+1)
	copy(next, s.entries)
	s.entries = append(next, e)
	s.version++
}

// pop removes and returns the top entry. The bottom entry is never removed;
// nil is returned when only it remains.
func (s *backStack) pop() *Entry {
	if len(s.entries) <= 1 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	next := make([]*Entry, len(s.entries)-1)
	copy(next, s.entries)
	s.entries = next
	s.version++
	return top
}

// peek returns the top entry without removing it.
func (s *backStack) peek() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

func (s *backStack) len() int {
	return len(s.entries)
}

func (s *backStack) clear() {
	s.entries = nil
	s.version++
}

func (s *backStack) snapshot() Snapshot {
	return Snapshot{entries: s.entries, version: s.version}
}

// Snapshot is a read-only view of the back-stack at one point in time.
type Snapshot struct {
	entries []*Entry
	version uint64
}

// Len returns the number of entries, which is also the host's page count.
func (s Snapshot) Len() int {
	return len(s.entries)
}

// At returns the entry at index i, where 0 is the start entry.
func (s Snapshot) At(i int) *Entry {
	if i < 0 || i >= len(s.entries) {
		return nil
	}
	return s.entries[i]
}

// Top returns the visible entry, or nil for an empty snapshot.
func (s Snapshot) Top() *Entry {
	return s.At(len(s.entries) - 1)
}

// IndexOf returns the stack position of the entry with the given id, or -1.
func (s Snapshot) IndexOf(id string) int {
	for i, e := range s.entries {
		if e.id == id {
			return i
		}
	}
	return -1
}

// Version increases with every back-stack mutation.
func (s Snapshot) Version() uint64 {
	return s.version
}

// All yields the entries in stack order. It may be ranged over any number of times.
func (s Snapshot) All() iter.Seq2[int, *Entry] {
	return func(yield func(int, *Entry) bool) {
		for i, e := range s.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in stack order.
func (s Snapshot) Entries() []*Entry {
	return append([]*Entry(nil), s.entries...)
}
