//go:generate go run go.uber.org/mock/mockgen -source=participant_repo.go -destination=../../mocks/mock_participant_repo.go -package=mocks

package output

import (
	"context"

	"participantbot/internal/domain/entities"
)

// ParticipantRepository persists participants in the relational store.
//
// FindByID, FindByEmail and FindByContact return domain.ErrParticipantNotFound
// (possibly wrapped) when nothing matches. DeleteByID on an unknown id is a no-op.
type ParticipantRepository interface {
	// Save inserts the participant when it has no id, otherwise overwrites the
	// row with that id (inserting it if it does not exist yet).
	Save(ctx context.Context, participant *entities.Participant) (*entities.Participant, error)
	FindByID(ctx context.Context, id int) (*entities.Participant, error)
	FindAll(ctx context.Context) ([]entities.Participant, error)
	DeleteByID(ctx context.Context, id int) error
	// FindByEmail returns domain.ErrParticipantNotUnique when several rows share the email.
	FindByEmail(ctx context.Context, email string) (*entities.Participant, error)
	// FindByContact returns domain.ErrParticipantNotUnique when several rows share the contact.
	FindByContact(ctx context.Context, contact string) (*entities.Participant, error)
}
