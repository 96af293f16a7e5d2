package raffle

import (
	"fmt"
	"testing"
)

func TestNewIndexSortsByNormalizedKey(t *testing.T) {
	participants := []Participant{
		{FirstName: "Cara", TicketNumber: "100"},
		{FirstName: "Abe", TicketNumber: "TK-007"},
		{FirstName: "Bea", TicketNumber: "018"},
		{FirstName: "Dan", TicketNumber: "9"},
	}
	idx := NewIndex(participants)

	wantOrder := []string{"Abe", "Dan", "Bea", "Cara"} // keys 7, 9, 18, 100
	for i, want := range wantOrder {
		if got := idx.At(i).FirstName; got != want {
			t.Errorf("position %d: got %s, want %s", i, got, want)
		}
	}
}

func TestNewIndexStableForEqualKeys(t *testing.T) {
	participants := []Participant{
		{FirstName: "First", TicketNumber: "018"},
		{FirstName: "Second", TicketNumber: "18"},
		{FirstName: "Third", TicketNumber: "A18"},
	}
	idx := NewIndex(participants)

	for i, want := range []string{"First", "Second", "Third"} {
		if got := idx.At(i).FirstName; got != want {
			t.Errorf("equal keys reordered: position %d got %s, want %s", i, got, want)
		}
	}
}

func TestNewIndexDoesNotAliasInput(t *testing.T) {
	participants := []Participant{
		{FirstName: "A", TicketNumber: "2"},
		{FirstName: "B", TicketNumber: "1"},
	}
	idx := NewIndex(participants)
	participants[0] = Participant{FirstName: "mutated", TicketNumber: "0"}

	if idx.At(1).FirstName != "A" {
		t.Errorf("index aliases caller slice: got %s", idx.At(1).FirstName)
	}
}

func TestFindByTicket(t *testing.T) {
	participants := []Participant{
		{FirstName: "Abe", TicketNumber: "7"},
		{FirstName: "Bea", TicketNumber: "018"},
		{FirstName: "Cara", TicketNumber: "100"},
	}
	idx := NewIndex(participants)

	tests := []struct {
		name      string
		raw       string
		wantName  string
		wantPos   int
		wantFound bool
	}{
		{"Exact", "7", "Abe", 0, true},
		{"Zero padded query", "0018", "Bea", 1, true},
		{"Prefixed query", "TK-100", "Cara", 2, true},
		{"Missing", "55", "", 0, false},
		{"No digits", "???", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, pos, found := idx.FindByTicket(tt.raw)
			if found != tt.wantFound {
				t.Fatalf("FindByTicket(%q) found = %v, want %v", tt.raw, found, tt.wantFound)
			}
			if !found {
				return
			}
			if p.FirstName != tt.wantName || pos != tt.wantPos {
				t.Errorf("FindByTicket(%q) = %s at %d, want %s at %d",
					tt.raw, p.FirstName, pos, tt.wantName, tt.wantPos)
			}
		})
	}
}

func TestFindByTicketLargeIndex(t *testing.T) {
	participants := make([]Participant, 5000)
	for i := range participants {
		participants[i] = Participant{
			FirstName:    fmt.Sprintf("P%d", i),
			TicketNumber: fmt.Sprintf("%05d", i+1),
		}
	}
	idx := NewIndex(participants)

	for _, raw := range []string{"1", "02500", "5000"} {
		if _, _, found := idx.FindByTicket(raw); !found {
			t.Errorf("ticket %q not found in 5000-entry index", raw)
		}
	}
	if _, _, found := idx.FindByTicket("5001"); found {
		t.Error("ticket 5001 should not be present")
	}
}

func TestParticipantFullName(t *testing.T) {
	tests := []struct {
		name string
		p    Participant
		want string
	}{
		{"Both names", Participant{FirstName: "Ada", LastName: "Byron"}, "Ada Byron"},
		{"First only", Participant{FirstName: "Ada"}, "Ada"},
		{"Last only", Participant{LastName: "Byron"}, "Byron"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}
