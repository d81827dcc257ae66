//go:generate go run go.uber.org/mock/mockgen -source=participant.go -destination=../../mocks/mock_participant_usecase.go -package=mocks

package input

import (
	"context"

	"participantbot/internal/domain/entities"
)

// ParticipantUseCase is what inbound adapters call. Lookups return (nil, nil)
// when no participant matches.
type ParticipantUseCase interface {
	AddParticipant(ctx context.Context, participant *entities.Participant) (*entities.Participant, error)
	GetAllParticipants(ctx context.Context) ([]entities.Participant, error)
	GetParticipantByID(ctx context.Context, id int) (*entities.Participant, error)
	GetParticipantByEmail(ctx context.Context, email string) (*entities.Participant, error)
	GetParticipantByContact(ctx context.Context, contact string) (*entities.Participant, error)
	UpdateParticipant(ctx context.Context, participant *entities.Participant) (*entities.Participant, error)
	DeleteParticipantByID(ctx context.Context, id int) error
}
