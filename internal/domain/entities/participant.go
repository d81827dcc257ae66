package entities

import "time"

// Participant is a person registered for an event.
type Participant struct {
	ID           int // 0 = not persisted yet
	Name         string
	Gender       string
	Email        string
	Contact      string
	EventName    string
	Role         string
	Organization string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsNew reports whether the participant has never been saved.
func (p *Participant) IsNew() bool {
	return p.ID == 0
}
