package game

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/iburimskiy/raffle-wheel/internal/raffle"
)

// LoadParticipantsCSV reads a participant file with columns
// first name, last name, ticket (or just name, ticket). A header row is
// skipped when its ticket column contains no digits. Deduplication and
// validation of ticket uniqueness are the uploader's problem, not ours.
func LoadParticipantsCSV(path string) ([]raffle.Participant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open participants file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	participants := make([]raffle.Participant, 0, len(records))
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d: need at least a name and a ticket column", i+1)
		}
		var p raffle.Participant
		if len(rec) >= 3 {
			p = raffle.Participant{
				FirstName:    strings.TrimSpace(rec[0]),
				LastName:     strings.TrimSpace(rec[1]),
				TicketNumber: strings.TrimSpace(rec[2]),
			}
		} else {
			p = raffle.Participant{
				FirstName:    strings.TrimSpace(rec[0]),
				TicketNumber: strings.TrimSpace(rec[1]),
			}
		}
		if i == 0 && !strings.ContainsAny(p.TicketNumber, "0123456789") {
			continue // header row
		}
		if p.TicketNumber == "" {
			return nil, fmt.Errorf("row %d: empty ticket number", i+1)
		}
		participants = append(participants, p)
	}

	if len(participants) == 0 {
		return nil, raffle.ErrEmptyParticipants
	}
	return participants, nil
}
