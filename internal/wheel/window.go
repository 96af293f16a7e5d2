package wheel

import "github.com/iburimskiy/raffle-wheel/internal/raffle"

// Window is the bounded slice of the participant index that is actually on
// screen. A wheel that "holds" thousands of tickets only ever materializes one
// of these; swapping in a new Window mid-spin is what keeps the illusion up.
//
// Windows are never mutated after construction. The renderer and the physics
// both treat the entry slice as read-only, so replacing the whole Window is
// the only publication mechanism the animation needs.
type Window struct {
	entries []raffle.Participant
}

func (w *Window) Len() int {
	return len(w.entries)
}

func (w *Window) At(i int) raffle.Participant {
	return w.entries[i]
}

// InitialWindow builds the window shown while the wheel idles and during the
// first flight of a spin, before the winner's neighborhood is known.
//
// Small datasets are repeated wrap-around until the window is full, so the
// cyclic scroll math always has a full-length cycle and never loops over a
// visibly short list. Large datasets contribute their first and last
// capacity/2 entries: the operator watching the idle wheel sees both the
// lowest and the highest real ticket numbers, which reads as "it loaded my
// whole file" at a glance.
func InitialWindow(idx *raffle.Index, capacity int) *Window {
	n := idx.Len()
	if n == 0 || capacity <= 0 {
		return &Window{}
	}

	entries := make([]raffle.Participant, capacity)
	if n <= capacity {
		for i := range entries {
			entries[i] = idx.At(i % n)
		}
		return &Window{entries: entries}
	}

	head := capacity / 2
	for i := 0; i < head; i++ {
		entries[i] = idx.At(i)
	}
	for i := head; i < capacity; i++ {
		entries[i] = idx.At(n - (capacity - i))
	}
	return &Window{entries: entries}
}

// WinnerWindow builds the window swapped in at the retarget checkpoint. It is
// centered on the target ticket so the physics can land on it, and the second
// return value is the winner's offset inside the window, which the retarget
// math needs to convert into a scroll position.
//
// The neighborhood wraps circularly at both ends of the index. A plain slice
// would silently lose a winner sitting within capacity/2 of either boundary,
// which is exactly the case an operator will hit with the first or last
// ticket sold.
//
// If the ticket is not in the index the initial pattern is returned with
// found=false; the caller decides how to surface that, the wheel itself keeps
// something sensible on screen.
func WinnerWindow(idx *raffle.Index, capacity int, targetTicket string) (*Window, int, bool) {
	n := idx.Len()
	if n == 0 || capacity <= 0 {
		return &Window{}, 0, false
	}

	_, pos, found := idx.FindByTicket(targetTicket)
	if !found {
		return InitialWindow(idx, capacity), 0, false
	}

	if n <= capacity {
		// InitialWindow already repeats the full index, winner included at
		// its index position in the first repetition.
		return InitialWindow(idx, capacity), pos, true
	}

	before := capacity / 2
	entries := make([]raffle.Participant, capacity)
	start := pos - before
	for i := range entries {
		entries[i] = idx.At(((start+i)%n + n) % n)
	}
	return &Window{entries: entries}, before, true
}
