package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/raffle-wheel/internal/raffle"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "participants.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadParticipantsCSV(t *testing.T) {
	path := writeCSV(t, "first_name,last_name,ticket\nAda,Byron,001\nAlan,Turing,TK-42\n")

	got, err := LoadParticipantsCSV(path)
	if err != nil {
		t.Fatalf("LoadParticipantsCSV: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d participants, want 2 (header skipped)", len(got))
	}
	if got[0].FirstName != "Ada" || got[0].TicketNumber != "001" {
		t.Errorf("first participant = %+v", got[0])
	}
	if got[1].LastName != "Turing" || got[1].TicketNumber != "TK-42" {
		t.Errorf("second participant = %+v", got[1])
	}
}

func TestLoadParticipantsCSVTwoColumns(t *testing.T) {
	path := writeCSV(t, "Ada,001\nAlan,002\n")

	got, err := LoadParticipantsCSV(path)
	if err != nil {
		t.Fatalf("LoadParticipantsCSV: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d participants, want 2", len(got))
	}
	if got[0].FirstName != "Ada" || got[0].LastName != "" || got[0].TicketNumber != "001" {
		t.Errorf("first participant = %+v", got[0])
	}
}

func TestLoadParticipantsCSVTrimsWhitespace(t *testing.T) {
	path := writeCSV(t, " Ada , Byron , 001 \n")

	got, err := LoadParticipantsCSV(path)
	if err != nil {
		t.Fatalf("LoadParticipantsCSV: %v", err)
	}
	if got[0].FirstName != "Ada" || got[0].TicketNumber != "001" {
		t.Errorf("whitespace not trimmed: %+v", got[0])
	}
}

func TestLoadParticipantsCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Single column row", "just-a-name\n"},
		{"Empty ticket", "Ada,Byron,001\nAlan,Turing,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, tt.content)
			if _, err := LoadParticipantsCSV(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadParticipantsCSVHeaderOnly(t *testing.T) {
	path := writeCSV(t, "first_name,last_name,ticket\n")
	_, err := LoadParticipantsCSV(path)
	if !errors.Is(err, raffle.ErrEmptyParticipants) {
		t.Errorf("err = %v, want ErrEmptyParticipants", err)
	}
}

func TestLoadParticipantsCSVMissingFile(t *testing.T) {
	if _, err := LoadParticipantsCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
