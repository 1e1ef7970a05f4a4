package cache

import (
	"advocacy-dispatch-service/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite backed cache mapping zip codes to state resolutions. Zip keys are
// expected to be normalized (5 digits, no whitespace) by the caller.
type SqliteResolutionCache struct {
	DB *sql.DB
}

func NewSqliteResolutionCache(db *sql.DB) *SqliteResolutionCache {
	return &SqliteResolutionCache{DB: db}
}

// Get fetches the cached resolution for a zip.
func (s *SqliteResolutionCache) Get(ctx context.Context, zip string) (ports.Resolution, bool, error) {
	if s.DB == nil {
		return ports.Resolution{}, false, errors.New("resolution cache: db is nil")
	}

	zip = strings.TrimSpace(zip)
	if zip == "" {
		return ports.Resolution{}, false, nil
	}

	q := `
	SELECT state_abbrev, state_name, city
	FROM resolution_cache
	WHERE zip = ?;
	`

	var res ports.Resolution
	err := s.DB.QueryRowContext(ctx, q, zip).Scan(&res.StateAbbrev, &res.StateName, &res.City)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.Resolution{}, false, nil
	}
	if err != nil {
		return ports.Resolution{}, false, fmt.Errorf("get resolution cache: query zip %q: %w", zip, err)
	}

	return res, true, nil
}

// Put stores a zip -> resolution mapping, replacing any previous entry.
func (s *SqliteResolutionCache) Put(ctx context.Context, zip string, res ports.Resolution) error {
	if s.DB == nil {
		return errors.New("resolution cache: db is nil")
	}

	zip = strings.TrimSpace(zip)
	if zip == "" {
		return errors.New("insert resolution cache: empty zip key")
	}

	q := `
	INSERT INTO resolution_cache (zip, state_abbrev, state_name, city)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (zip) DO UPDATE
	SET state_abbrev = EXCLUDED.state_abbrev,
		state_name = EXCLUDED.state_name,
		city = EXCLUDED.city;
	`

	if _, err := s.DB.ExecContext(ctx, q, zip, res.StateAbbrev, res.StateName, res.City); err != nil {
		return fmt.Errorf("insert resolution cache zip=%q: %w", zip, err)
	}

	return nil
}
