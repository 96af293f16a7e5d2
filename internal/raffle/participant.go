package raffle

import "errors"

var (
	ErrEmptyParticipants = errors.New("raffle: no participants loaded")
	ErrTicketNotFound    = errors.New("raffle: ticket not found")
)

// Participant is a single raffle entry. Records arrive already deduplicated
// and validated; they are never mutated after loading.
type Participant struct {
	FirstName    string
	LastName     string
	TicketNumber string
}

func (p Participant) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
