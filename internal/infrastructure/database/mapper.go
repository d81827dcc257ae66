package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"participantbot/internal/domain/entities"
)

// participantRow mirrors a row of the participants table.
type participantRow struct {
	ID           int64
	Name         string
	Gender       string
	Email        string
	Contact      string
	EventName    string
	Role         string
	Organization string
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

// rowScanner is satisfied by pgx.Row and pgx.CollectableRow.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanParticipantRow(row rowScanner) (participantRow, error) {
	var r participantRow
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Gender,
		&r.Email,
		&r.Contact,
		&r.EventName,
		&r.Role,
		&r.Organization,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func participantToDomain(p participantRow) entities.Participant {
	return entities.Participant{
		ID:           int(p.ID),
		Name:         p.Name,
		Gender:       p.Gender,
		Email:        p.Email,
		Contact:      p.Contact,
		EventName:    p.EventName,
		Role:         p.Role,
		Organization: p.Organization,
		CreatedAt:    pgtypeTimestamptzToTime(p.CreatedAt),
		UpdatedAt:    pgtypeTimestamptzToTime(p.UpdatedAt),
	}
}

func participantsToDomain(rows []participantRow) []entities.Participant {
	out := make([]entities.Participant, len(rows))
	for i := range rows {
		out[i] = participantToDomain(rows[i])
	}
	return out
}
