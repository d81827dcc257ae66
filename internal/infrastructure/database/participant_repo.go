package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"participantbot/internal/domain"
	"participantbot/internal/domain/entities"
	"participantbot/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

const participantColumns = "id, name, gender, email, contact, event_name, role, organization, created_at, updated_at"

const (
	insertParticipant = `INSERT INTO participants (name, gender, email, contact, event_name, role, organization)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + participantColumns

	upsertParticipant = `INSERT INTO participants (id, name, gender, email, contact, event_name, role, organization)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    gender = EXCLUDED.gender,
    email = EXCLUDED.email,
    contact = EXCLUDED.contact,
    event_name = EXCLUDED.event_name,
    role = EXCLUDED.role,
    organization = EXCLUDED.organization,
    updated_at = now()
RETURNING ` + participantColumns

	// Explicit ids bypass the identity sequence. Only ever move it forward.
	syncParticipantSequence = `SELECT setval('participants_id_seq', GREATEST($1::BIGINT, last_value)) FROM participants_id_seq`

	getParticipantByID      = `SELECT ` + participantColumns + ` FROM participants WHERE id = $1`
	listParticipants        = `SELECT ` + participantColumns + ` FROM participants ORDER BY id`
	deleteParticipant       = `DELETE FROM participants WHERE id = $1`
	getParticipantByEmail   = `SELECT ` + participantColumns + ` FROM participants WHERE email = $1 ORDER BY id LIMIT 2`
	getParticipantByContact = `SELECT ` + participantColumns + ` FROM participants WHERE contact = $1 ORDER BY id LIMIT 2`
)

// ParticipantRepository implements output.ParticipantRepository using pgx.
type ParticipantRepository struct {
	db DBTX
}

// NewParticipantRepository creates a ParticipantRepository.
func NewParticipantRepository(db DBTX) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) Save(ctx context.Context, participant *entities.Participant) (*entities.Participant, error) {
	if participant.IsNew() {
		row, err := scanParticipantRow(r.db.QueryRow(ctx, insertParticipant,
			participant.Name,
			participant.Gender,
			participant.Email,
			participant.Contact,
			participant.EventName,
			participant.Role,
			participant.Organization,
		))
		if err != nil {
			return nil, fmt.Errorf("create participant: %w", err)
		}
		p := participantToDomain(row)
		return &p, nil
	}

	var row participantRow
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		row, err = scanParticipantRow(tx.QueryRow(ctx, upsertParticipant,
			int64(participant.ID),
			participant.Name,
			participant.Gender,
			participant.Email,
			participant.Contact,
			participant.EventName,
			participant.Role,
			participant.Organization,
		))
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, syncParticipantSequence, row.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("save participant %d: %w", participant.ID, err)
	}
	p := participantToDomain(row)
	return &p, nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id int) (*entities.Participant, error) {
	row, err := scanParticipantRow(r.db.QueryRow(ctx, getParticipantByID, int64(id)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get participant by id %d: %w", id, domain.ErrParticipantNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get participant by id: %w", err)
	}
	p := participantToDomain(row)
	return &p, nil
}

func (r *ParticipantRepository) FindAll(ctx context.Context) ([]entities.Participant, error) {
	rows, err := r.collect(ctx, listParticipants)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participantsToDomain(rows), nil
}

func (r *ParticipantRepository) DeleteByID(ctx context.Context, id int) error {
	if _, err := r.db.Exec(ctx, deleteParticipant, int64(id)); err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	return nil
}

func (r *ParticipantRepository) FindByEmail(ctx context.Context, email string) (*entities.Participant, error) {
	p, err := r.findOne(ctx, getParticipantByEmail, email)
	if err != nil {
		return nil, fmt.Errorf("get participant by email: %w", err)
	}
	return p, nil
}

func (r *ParticipantRepository) FindByContact(ctx context.Context, contact string) (*entities.Participant, error) {
	p, err := r.findOne(ctx, getParticipantByContact, contact)
	if err != nil {
		return nil, fmt.Errorf("get participant by contact: %w", err)
	}
	return p, nil
}

// findOne runs a query limited to two rows and expects exactly one.
func (r *ParticipantRepository) findOne(ctx context.Context, query string, args ...any) (*entities.Participant, error) {
	rows, err := r.collect(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	switch len(rows) {
	case 0:
		return nil, domain.ErrParticipantNotFound
	case 1:
		p := participantToDomain(rows[0])
		return &p, nil
	default:
		return nil, domain.ErrParticipantNotUnique
	}
}

func (r *ParticipantRepository) collect(ctx context.Context, query string, args ...any) ([]participantRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (participantRow, error) {
		return scanParticipantRow(row)
	})
}
