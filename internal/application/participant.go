package application

import (
	"context"
	"errors"

	"participantbot/internal/domain"
	"participantbot/internal/domain/entities"
	"participantbot/internal/ports/input"
	"participantbot/internal/ports/output"
)

var _ input.ParticipantUseCase = (*ParticipantService)(nil)

// ParticipantService exposes participant CRUD on top of the repository.
type ParticipantService struct {
	participantRepo output.ParticipantRepository
}

func NewParticipantService(participantRepo output.ParticipantRepository) *ParticipantService {
	return &ParticipantService{participantRepo: participantRepo}
}

func (s *ParticipantService) AddParticipant(ctx context.Context, participant *entities.Participant) (*entities.Participant, error) {
	return s.participantRepo.Save(ctx, participant)
}

func (s *ParticipantService) GetAllParticipants(ctx context.Context) ([]entities.Participant, error) {
	return s.participantRepo.FindAll(ctx)
}

// GetParticipantByID returns (nil, nil) when no participant has this id.
func (s *ParticipantService) GetParticipantByID(ctx context.Context, id int) (*entities.Participant, error) {
	return orNil(s.participantRepo.FindByID(ctx, id))
}

// GetParticipantByEmail returns (nil, nil) when no participant has this email.
func (s *ParticipantService) GetParticipantByEmail(ctx context.Context, email string) (*entities.Participant, error) {
	return orNil(s.participantRepo.FindByEmail(ctx, email))
}

// GetParticipantByContact returns (nil, nil) when no participant has this contact.
func (s *ParticipantService) GetParticipantByContact(ctx context.Context, contact string) (*entities.Participant, error) {
	return orNil(s.participantRepo.FindByContact(ctx, contact))
}

// UpdateParticipant goes through the same save path as AddParticipant.
func (s *ParticipantService) UpdateParticipant(ctx context.Context, participant *entities.Participant) (*entities.Participant, error) {
	return s.participantRepo.Save(ctx, participant)
}

func (s *ParticipantService) DeleteParticipantByID(ctx context.Context, id int) error {
	return s.participantRepo.DeleteByID(ctx, id)
}

func orNil(p *entities.Participant, err error) (*entities.Participant, error) {
	if errors.Is(err, domain.ErrParticipantNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
