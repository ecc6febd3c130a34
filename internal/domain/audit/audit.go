package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Service records who changed which leave request. With a database it writes
// audit rows; in demo mode (nil pool) entries go to the structured log so
// mutations are still traceable.
type Service struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Service {
	return &Service{DB: db}
}

func (s *Service) Record(ctx context.Context, actorID, action, entityID, requestID string, before, after any) error {
	var beforeJSON, afterJSON []byte
	if before != nil {
		payload, err := json.Marshal(before)
		if err != nil {
			return err
		}
		beforeJSON = payload
	}
	if after != nil {
		payload, err := json.Marshal(after)
		if err != nil {
			return err
		}
		afterJSON = payload
	}

	if s == nil || s.DB == nil {
		slog.Info("audit",
			"actor", actorID,
			"action", action,
			"entity", entityID,
			"requestId", requestID,
		)
		return nil
	}

	_, err := s.DB.Exec(ctx, `
    INSERT INTO audit_events (actor_user_id, action, entity_id, before_json, after_json, request_id)
    VALUES ($1,$2,$3,$4,$5,$6)
  `, actorID, action, entityID, beforeJSON, afterJSON, requestID)
	return err
}
