package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"participantbot/internal/domain"
	"participantbot/internal/domain/entities"
	"participantbot/internal/mocks"
)

func newService(t *testing.T) (*ParticipantService, *mocks.MockParticipantRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockParticipantRepository(ctrl)
	return NewParticipantService(repo), repo
}

func TestParticipantService_AddParticipant(t *testing.T) {
	req := require.New(t)
	svc, repo := newService(t)
	ctx := context.Background()

	in := &entities.Participant{Email: "a@x.com", Contact: "555-0100"}
	saved := &entities.Participant{ID: 1, Email: "a@x.com", Contact: "555-0100"}
	// Given the repository assigns id 1
	repo.EXPECT().Save(ctx, in).Return(saved, nil).Times(1)

	// When the participant is added
	got, err := svc.AddParticipant(ctx, in)

	// Then the saved record is returned unchanged
	req.NoError(err)
	req.Equal(saved, got)
}

func TestParticipantService_AddParticipant_PropagatesStoreError(t *testing.T) {
	req := require.New(t)
	svc, repo := newService(t)
	ctx := context.Background()

	storeErr := errors.New("duplicate key value violates unique constraint")
	repo.EXPECT().Save(ctx, gomock.Any()).Return(nil, storeErr)

	got, err := svc.AddParticipant(ctx, &entities.Participant{})
	req.ErrorIs(err, storeErr)
	req.Nil(got)
}

func TestParticipantService_UpdateParticipant_UsesSave(t *testing.T) {
	req := require.New(t)
	svc, repo := newService(t)
	ctx := context.Background()

	p := &entities.Participant{ID: 7, Email: "new@x.com"}
	repo.EXPECT().Save(ctx, p).Return(p, nil).Times(1)

	got, err := svc.UpdateParticipant(ctx, p)
	req.NoError(err)
	req.Equal(7, got.ID)
	req.Equal("new@x.com", got.Email)
}

func TestParticipantService_GetAllParticipants(t *testing.T) {
	req := require.New(t)
	svc, repo := newService(t)
	ctx := context.Background()

	all := []entities.Participant{{ID: 1}, {ID: 2}}
	repo.EXPECT().FindAll(ctx).Return(all, nil)

	got, err := svc.GetAllParticipants(ctx)
	req.NoError(err)
	req.Len(got, 2)
}

func TestParticipantService_GetParticipantByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		req := require.New(t)
		svc, repo := newService(t)
		p := &entities.Participant{ID: 1, Email: "a@x.com"}
		repo.EXPECT().FindByID(ctx, 1).Return(p, nil)

		got, err := svc.GetParticipantByID(ctx, 1)
		req.NoError(err)
		req.Equal(p, got)
	})

	t.Run("missing id is not an error", func(t *testing.T) {
		req := require.New(t)
		svc, repo := newService(t)
		repo.EXPECT().FindByID(ctx, 42).
			Return(nil, fmt.Errorf("get participant by id: %w", domain.ErrParticipantNotFound))

		got, err := svc.GetParticipantByID(ctx, 42)
		req.NoError(err)
		req.Nil(got)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		req := require.New(t)
		svc, repo := newService(t)
		boom := errors.New("connection refused")
		repo.EXPECT().FindByID(ctx, 1).Return(nil, boom)

		got, err := svc.GetParticipantByID(ctx, 1)
		req.ErrorIs(err, boom)
		req.Nil(got)
	})
}

func TestParticipantService_LookupsByField(t *testing.T) {
	ctx := context.Background()

	t.Run("email not found", func(t *testing.T) {
		req := require.New(t)
		svc, repo := newService(t)
		repo.EXPECT().FindByEmail(ctx, "nobody@x.com").Return(nil, domain.ErrParticipantNotFound)

		got, err := svc.GetParticipantByEmail(ctx, "nobody@x.com")
		req.NoError(err)
		req.Nil(got)
	})

	t.Run("email shared by several rows", func(t *testing.T) {
		req := require.New(t)
		svc, repo := newService(t)
		repo.EXPECT().FindByEmail(ctx, "dup@x.com").
			Return(nil, fmt.Errorf("find participant by email: %w", domain.ErrParticipantNotUnique))

		got, err := svc.GetParticipantByEmail(ctx, "dup@x.com")
		req.ErrorIs(err, domain.ErrParticipantNotUnique)
		req.Nil(got)
	})

	t.Run("contact found", func(t *testing.T) {
		req := require.New(t)
		svc, repo := newService(t)
		p := &entities.Participant{ID: 3, Contact: "555-0100"}
		repo.EXPECT().FindByContact(ctx, "555-0100").Return(p, nil)

		got, err := svc.GetParticipantByContact(ctx, "555-0100")
		req.NoError(err)
		req.Equal(p, got)
	})
}

func TestParticipantService_DeleteParticipantByID_Twice(t *testing.T) {
	req := require.New(t)
	svc, repo := newService(t)
	ctx := context.Background()

	// Given the repository treats unknown ids as a no-op
	repo.EXPECT().DeleteByID(ctx, 1).Return(nil).Times(2)

	// When the same id is deleted twice
	req.NoError(svc.DeleteParticipantByID(ctx, 1))

	// Then the second call does not fail either
	req.NoError(svc.DeleteParticipantByID(ctx, 1))
}
