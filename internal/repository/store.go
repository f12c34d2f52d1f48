package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS game_results (
	id             UUID PRIMARY KEY,
	finished_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	winner_id      TEXT,
	turn_count     INT NOT NULL,
	state_checksum TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_game_results_finished_at ON game_results(finished_at DESC);
CREATE TABLE IF NOT EXISTS game_replays (
	game_id     UUID PRIMARY KEY,
	recorded_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	state_count INT NOT NULL,
	data        BYTEA NOT NULL
);
CREATE TABLE IF NOT EXISTS cards (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	set_code    TEXT NOT NULL,
	card_number TEXT NOT NULL,
	mana_cost   TEXT NOT NULL DEFAULT '',
	card_type   TEXT NOT NULL DEFAULT '',
	rules_text  TEXT NOT NULL DEFAULT '',
	UNIQUE (set_code, card_number)
);
CREATE INDEX IF NOT EXISTS idx_cards_name ON cards(name);
`

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("repository: not found")

// GameResult is the persisted outcome of a finished game.
type GameResult struct {
	GameID        string
	FinishedAt    time.Time
	WinnerID      string
	TurnCount     int
	StateChecksum string
}

// Card is a card definition row.
type Card struct {
	Name       string
	SetCode    string
	CardNumber string
	ManaCost   string
	CardType   string
	RulesText  string
}

// Store persists game results, replay blobs and card definitions.
// A nil *Store is valid and makes every method a no-op, so callers
// never have to branch on whether persistence is configured.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewStore wraps an existing pool. Returns nil when pool is nil.
func NewStore(pool *pgxpool.Pool, logger *zap.Logger) *Store {
	if pool == nil {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{pool: pool, logger: logger}
}

// EnsureSchema creates the tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if s == nil {
		return nil
	}
	if _, err := s.pool.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SaveResult records the outcome of a finished game.
func (s *Store) SaveResult(ctx context.Context, r GameResult) error {
	if s == nil {
		return nil
	}
	finishedAt := r.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = time.Now()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO game_results (id, finished_at, winner_id, turn_count, state_checksum)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			finished_at    = EXCLUDED.finished_at,
			winner_id      = EXCLUDED.winner_id,
			turn_count     = EXCLUDED.turn_count,
			state_checksum = EXCLUDED.state_checksum
	`, r.GameID, finishedAt, r.WinnerID, r.TurnCount, r.StateChecksum)
	if err != nil {
		return fmt.Errorf("save result for game %s: %w", r.GameID, err)
	}
	s.logger.Debug("game result saved", zap.String("game_id", r.GameID))
	return nil
}

// SaveReplay stores an encoded replay blob for a game.
func (s *Store) SaveReplay(ctx context.Context, gameID string, stateCount int, data []byte) error {
	if s == nil {
		return nil
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO game_replays (game_id, recorded_at, state_count, data)
		VALUES ($1, now(), $2, $3)
		ON CONFLICT (game_id) DO UPDATE SET
			recorded_at = now(),
			state_count = EXCLUDED.state_count,
			data        = EXCLUDED.data
	`, gameID, stateCount, data)
	if err != nil {
		return fmt.Errorf("save replay for game %s: %w", gameID, err)
	}
	s.logger.Debug("replay saved",
		zap.String("game_id", gameID),
		zap.Int("state_count", stateCount),
		zap.Int("bytes", len(data)),
	)
	return nil
}

// LoadReplay fetches the encoded replay blob for a game.
func (s *Store) LoadReplay(ctx context.Context, gameID string) ([]byte, error) {
	if s == nil {
		return nil, ErrNotFound
	}
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM game_replays WHERE game_id = $1`, gameID,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load replay for game %s: %w", gameID, err)
	}
	return data, nil
}

// UpsertCard inserts or updates a card definition keyed by set and number.
func (s *Store) UpsertCard(ctx context.Context, c Card) error {
	if s == nil {
		return nil
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO cards (name, set_code, card_number, mana_cost, card_type, rules_text)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (set_code, card_number) DO UPDATE SET
			name       = EXCLUDED.name,
			mana_cost  = EXCLUDED.mana_cost,
			card_type  = EXCLUDED.card_type,
			rules_text = EXCLUDED.rules_text
	`, c.Name, c.SetCode, c.CardNumber, c.ManaCost, c.CardType, c.RulesText)
	if err != nil {
		return fmt.Errorf("upsert card %s (%s %s): %w", c.Name, c.SetCode, c.CardNumber, err)
	}
	return nil
}

// CardCount returns the number of card definitions.
func (s *Store) CardCount(ctx context.Context) (int64, error) {
	if s == nil {
		return 0, nil
	}
	var n int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cards`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return n, nil
}

// Close closes the underlying pool.
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}
