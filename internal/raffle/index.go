package raffle

import "sort"

// Index is an immutable, ticket-ordered view over the full participant list.
// It is built once per competition load and shared read-only for its lifetime;
// the animation layer only ever sees bounded windows cut from it.
type Index struct {
	participants []Participant
	keys         []string // normalized ticket keys, parallel to participants
}

// NewIndex copies and sorts the participants ascending by normalized ticket
// key. The sort is stable, so entries with colliding keys keep their input
// order.
func NewIndex(participants []Participant) *Index {
	n := len(participants)
	keys := make([]string, n)
	for i, p := range participants {
		keys[i] = NormalizeTicket(p.TicketNumber)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return compareKeys(keys[order[i]], keys[order[j]]) < 0
	})
	idx := &Index{
		participants: make([]Participant, n),
		keys:         make([]string, n),
	}
	for i, o := range order {
		idx.participants[i] = participants[o]
		idx.keys[i] = keys[o]
	}
	return idx
}

func (idx *Index) Len() int {
	return len(idx.participants)
}

func (idx *Index) At(i int) Participant {
	return idx.participants[i]
}

// FindByTicket locates the participant whose normalized key equals the raw
// ticket's normalized key. Binary search over the sorted keys keeps lookups
// cheap even for indexes with tens of thousands of entries.
func (idx *Index) FindByTicket(raw string) (Participant, int, bool) {
	key := NormalizeTicket(raw)
	i := sort.Search(len(idx.keys), func(i int) bool {
		return compareKeys(idx.keys[i], key) >= 0
	})
	if i < len(idx.keys) && idx.keys[i] == key {
		return idx.participants[i], i, true
	}
	return Participant{}, 0, false
}
