package leave

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct {
	DB *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{DB: db}
}

func (s *PGStore) ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, type, reason, start_date::text, end_date::text, duration, status
    FROM leave_requests
    WHERE user_id = $1
    ORDER BY created_at
  `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []LeaveRequest
	for rows.Next() {
		var rec LeaveRequest
		if err := rows.Scan(&rec.ID, &rec.Type, &rec.Reason, &rec.StartDate, &rec.EndDate, &rec.Duration, &rec.Status); err != nil {
			return nil, err
		}
		requests = append(requests, rec)
	}
	return requests, rows.Err()
}

func (s *PGStore) Get(ctx context.Context, id string) (LeaveRequest, error) {
	var rec LeaveRequest
	err := s.DB.QueryRow(ctx, `
    SELECT id, type, reason, start_date::text, end_date::text, duration, status
    FROM leave_requests
    WHERE id = $1
  `, id).Scan(&rec.ID, &rec.Type, &rec.Reason, &rec.StartDate, &rec.EndDate, &rec.Duration, &rec.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return LeaveRequest{}, ErrNotFound
	}
	if err != nil {
		return LeaveRequest{}, err
	}
	return rec, nil
}

func (s *PGStore) Create(ctx context.Context, userID string, rec LeaveRequest) (LeaveRequest, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (user_id, type, reason, start_date, end_date, duration, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, userID, rec.Type, rec.Reason, rec.StartDate, rec.EndDate, rec.Duration, rec.Status).Scan(&rec.ID)
	if err != nil {
		return LeaveRequest{}, err
	}
	return rec, nil
}

func (s *PGStore) Update(ctx context.Context, id string, rec LeaveRequest) (LeaveRequest, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE leave_requests
    SET type = $2, reason = $3, start_date = $4, end_date = $5, duration = $6, status = $7
    WHERE id = $1
  `, id, rec.Type, rec.Reason, rec.StartDate, rec.EndDate, rec.Duration, rec.Status)
	if err != nil {
		return LeaveRequest{}, err
	}
	if tag.RowsAffected() == 0 {
		return LeaveRequest{}, ErrNotFound
	}
	rec.ID = id
	return rec, nil
}

func (s *PGStore) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
