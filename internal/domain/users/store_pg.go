package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct {
	DB *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{DB: db}
}

func (s *PGStore) List(ctx context.Context) ([]User, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, email, role, status
    FROM users
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (s *PGStore) Get(ctx context.Context, id string) (User, error) {
	var u User
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, email, role, status
    FROM users
    WHERE id = $1
  `, id).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *PGStore) FindByEmail(ctx context.Context, email string) (User, string, error) {
	var u User
	var hash string
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, email, role, status, password_hash
    FROM users
    WHERE email = $1
  `, email).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, "", ErrNotFound
	}
	if err != nil {
		return User{}, "", err
	}
	return u, hash, nil
}

func (s *PGStore) Create(ctx context.Context, user User, passwordHash string) (User, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (name, email, role, status, password_hash)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, user.Name, user.Email, user.Role, user.Status, passwordHash).Scan(&user.ID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return User{}, ErrEmailTaken
	}
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *PGStore) Update(ctx context.Context, id string, payload UpdatePayload) (User, error) {
	var u User
	err := s.DB.QueryRow(ctx, `
    UPDATE users
    SET name = $2, email = $3, role = COALESCE(NULLIF($4, ''), role)
    WHERE id = $1
    RETURNING id, name, email, role, status
  `, id, payload.Name, payload.Email, payload.Role).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *PGStore) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
