package models

import "fmt"

// Personident is the 11 digit national identity number of a citizen.
type Personident string

func NewPersonident(value string) (Personident, error) {
	ident := Personident(value)
	if err := ident.Validate(); err != nil {
		return "", err
	}
	return ident, nil
}

func (p Personident) Validate() error {
	if len(p) != 11 || !isDigits(string(p)) {
		return NewValidationError("invalid personident: must be 11 digits")
	}
	return nil
}

func (p Personident) String() string {
	return string(p)
}

// JournalpostID references a journalpost in the records archive.
type JournalpostID string

func NewJournalpostID(value string) (JournalpostID, error) {
	id := JournalpostID(value)
	if len(id) == 0 || !isDigits(string(id)) {
		return "", fmt.Errorf("invalid journalpostId: %q is not numeric", value)
	}
	return id, nil
}

func (j JournalpostID) String() string {
	return string(j)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
