package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/verba/internal/models"
)

// stamp returns a creation time strictly later than every earlier one, so
// listing order never depends on clock resolution.
func (s *implStore) stamp() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.now().UTC().UnixNano()
	if n <= s.last {
		n = s.last + 1
	}
	s.last = n
	return n
}

// Create persists a new session and returns its identifier.
func (s *implStore) Create(ctx context.Context, transcript string, summary models.Summary) (string, error) {
	payload, err := json.Marshal(summary.Normalize())
	if err != nil {
		return "", storageErr("create", fmt.Errorf("encode summary: %w", err))
	}

	id := s.newID()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, created_at, transcript, summary_json) VALUES (?, ?, ?, ?)`,
		id, s.stamp(), transcript, string(payload))
	if err != nil {
		return "", storageErr("create", err)
	}

	return id, nil
}

// List returns up to limit previews ordered by creation time, newest first.
func (s *implStore) List(ctx context.Context, limit int) ([]models.Preview, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, transcript
		FROM sessions
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, storageErr("list", err)
	}
	defer rows.Close()

	previews := []models.Preview{}
	for rows.Next() {
		var (
			id         string
			createdAt  int64
			transcript string
		)
		if err := rows.Scan(&id, &createdAt, &transcript); err != nil {
			return nil, storageErr("list", fmt.Errorf("scan session: %w", err))
		}
		previews = append(previews, models.NewPreview(id, timeFromUnixNano(createdAt), transcript))
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list", err)
	}

	return previews, nil
}

// Get returns the full session with its reconstructed summary.
func (s *implStore) Get(ctx context.Context, id string) (models.Session, error) {
	var (
		sess      models.Session
		createdAt int64
		payload   string
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, transcript, summary_json FROM sessions WHERE id = ?`,
		id).Scan(&sess.ID, &createdAt, &sess.Transcript, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrNotFound
	}
	if err != nil {
		return models.Session{}, storageErr("get", err)
	}

	if err := json.Unmarshal([]byte(payload), &sess.Summary); err != nil {
		return models.Session{}, storageErr("get", fmt.Errorf("decode summary: %w", err))
	}
	sess.Summary = sess.Summary.Normalize()
	sess.CreatedAt = timeFromUnixNano(createdAt)

	return sess, nil
}

// Delete removes the session with the given id.
func (s *implStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return false, storageErr("delete", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, storageErr("delete", err)
	}

	return n > 0, nil
}

func timeFromUnixNano(ns int64) time.Time {
	return time.Unix(0, ns).UTC()
}
