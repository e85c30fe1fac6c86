package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// SQLStore persists results in the sqlite/postgres schema created by
// internal/db. Answers are stored as a JSON column.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Append(ctx context.Context, r StoredResult) error {
	aj, err := json.Marshal(r.Answers)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO results (id,session_file,score,total,percentage,answers_json,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		uuid.NewString(), r.SessionFilename, r.Score, r.Total, r.Percentage,
		string(aj), r.Date.UnixNano())
	return err
}

func (s *SQLStore) Latest(ctx context.Context, sessionFilename string) (StoredResult, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT session_file,score,total,percentage,answers_json,created_at
		 FROM results WHERE session_file=$1
		 ORDER BY created_at DESC LIMIT 1`, sessionFilename)
	r, err := scanResult(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredResult{}, ErrNotFound
	}
	return r, err
}

func (s *SQLStore) All(ctx context.Context) ([]StoredResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_file,score,total,percentage,answers_json,created_at
		 FROM results ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []StoredResult
	for rows.Next() {
		r, err := scanResult(rows.Scan)
		if err != nil {
			return nil, err
		}
		all = append(all, r)
	}
	return all, rows.Err()
}

func scanResult(scan func(...any) error) (StoredResult, error) {
	var (
		r     StoredResult
		aj    string
		nanos int64
	)
	if err := scan(&r.SessionFilename, &r.Score, &r.Total, &r.Percentage, &aj, &nanos); err != nil {
		return StoredResult{}, err
	}
	r.Date = timeFromNanos(nanos)
	if err := json.Unmarshal([]byte(aj), &r.Answers); err != nil {
		r.Answers = map[int]string{}
	}
	return r, nil
}
