package item

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"curio/internal/registry/models"
	"curio/pkg/domain"
	"curio/pkg/platform/sentinel"
)

// PostgresStore implements Store on database/sql. Item ids and payloads are
// stored as hex text; amounts as BIGINT (token amounts fit uint63 in this
// deployment, checked on write).
type PostgresStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS registry_items (
    id          TEXT PRIMARY KEY,
    data        TEXT NOT NULL,
    owner       TEXT NOT NULL,
    stake       BIGINT NOT NULL,
    unlock_time TIMESTAMPTZ NOT NULL
)`

// NewPostgresStore creates the store and ensures the schema exists.
func NewPostgresStore(ctx context.Context, db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure registry_items schema: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Create(ctx context.Context, it models.Item) error {
	stake, err := stakeValue(it.Stake)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO registry_items (id, data, owner, stake, unlock_time) VALUES ($1, $2, $3, $4, $5)`,
		it.ID.String(), encodeData(it.Data), it.Owner.String(), stake, it.UnlockTime.UTC(),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, it models.Item) error {
	stake, err := stakeValue(it.Stake)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE registry_items SET data = $2, owner = $3, stake = $4, unlock_time = $5 WHERE id = $1`,
		it.ID.String(), encodeData(it.Data), it.Owner.String(), stake, it.UnlockTime.UTC(),
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update item rows: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id domain.ItemID) (models.Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, data, owner, stake, unlock_time FROM registry_items WHERE id = $1`,
		id.String(),
	)
	return scanItem(row)
}

func (s *PostgresStore) Delete(ctx context.Context, id domain.ItemID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM registry_items WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item rows: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]models.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, data, owner, stake, unlock_time FROM registry_items`,
	)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []models.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var (
		idHex, dataHex, owner string
		stake                 int64
		unlockTime            time.Time
	)
	if err := row.Scan(&idHex, &dataHex, &owner, &stake, &unlockTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, sentinel.ErrNotFound
		}
		return models.Item{}, fmt.Errorf("scan item: %w", err)
	}

	id, err := domain.ParseItemID(idHex)
	if err != nil {
		return models.Item{}, fmt.Errorf("stored item id %q: %w", idHex, err)
	}
	data, err := decodeData(dataHex)
	if err != nil {
		return models.Item{}, fmt.Errorf("stored item data %q: %w", dataHex, err)
	}
	return models.Item{
		ID:         id,
		Data:       data,
		Owner:      domain.Address(owner),
		Stake:      uint64(stake),
		UnlockTime: unlockTime,
	}, nil
}

func stakeValue(stake uint64) (int64, error) {
	if stake > 1<<62 {
		return 0, fmt.Errorf("stake %d exceeds storable range", stake)
	}
	return int64(stake), nil
}
