package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SQLStore works with both sqlite and postgres; the queries use $n
// placeholders, which both drivers accept.
type SQLStore struct {
	db      *sql.DB
	nowFunc func() time.Time
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, nowFunc: time.Now}
}

const selectCols = `id,user_id,game_id,score,lower_is_better,meta_json,created_at`

func (s *SQLStore) Append(ctx context.Context, r GameResult) (GameResult, error) {
	if err := Validate(r); err != nil {
		return GameResult{}, err
	}
	r = prepare(r, s.nowFunc)
	mj, err := json.Marshal(r.Meta)
	if err != nil {
		return GameResult{}, fmt.Errorf("%w: meta: %v", ErrInvalid, err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO game_results (id,user_id,game_id,score,lower_is_better,meta_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		r.ID, r.UserID, r.GameID, r.Score, boolInt(r.LowerIsBetter), string(mj), r.CreatedAt.UnixMilli())
	if err != nil {
		return GameResult{}, fmt.Errorf("insert game result: %w", err)
	}
	return r, nil
}

func (s *SQLStore) History(ctx context.Context, userID string) ([]GameResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectCols+` FROM game_results WHERE user_id=$1 ORDER BY created_at ASC, seq ASC`, userID)
	if err != nil {
		return nil, err
	}
	return scanAll(rows)
}

func (s *SQLStore) ListByGame(ctx context.Context, userID, gameID string, limit int) ([]GameResult, error) {
	q := `SELECT ` + selectCols + ` FROM game_results WHERE user_id=$1 AND game_id=$2 ORDER BY created_at DESC, seq DESC`
	args := []any{userID, gameID}
	if limit > 0 {
		q += ` LIMIT $3`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return scanAll(rows)
}

func (s *SQLStore) Latest(ctx context.Context, userID, gameID string) (GameResult, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+selectCols+` FROM game_results WHERE user_id=$1 AND game_id=$2 ORDER BY created_at DESC, seq DESC LIMIT 1`,
		userID, gameID)
	r, err := scanOne(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GameResult{}, ErrNotFound
	}
	return r, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOne(sc scanner) (GameResult, error) {
	var (
		r       GameResult
		lower   int
		mjson   string
		created int64
	)
	if err := sc.Scan(&r.ID, &r.UserID, &r.GameID, &r.Score, &lower, &mjson, &created); err != nil {
		return GameResult{}, err
	}
	r.LowerIsBetter = lower != 0
	r.CreatedAt = time.UnixMilli(created).UTC()
	if err := json.Unmarshal([]byte(mjson), &r.Meta); err != nil || r.Meta == nil {
		// meta is opaque to the engine
		r.Meta = map[string]any{}
	}
	return r, nil
}

func scanAll(rows *sql.Rows) ([]GameResult, error) {
	defer rows.Close()
	var out []GameResult
	for rows.Next() {
		r, err := scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
