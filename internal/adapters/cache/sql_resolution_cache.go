package cache

import (
	"advocacy-dispatch-service/internal/platform/obs"
	"advocacy-dispatch-service/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLResolutionCache is a Postgres-backed cache mapping zip codes to state
// resolutions, for deployments that share one cache across instances.
type SQLResolutionCache struct {
	DB *sql.DB
}

func NewSQLResolutionCache(db *sql.DB) *SQLResolutionCache {
	return &SQLResolutionCache{DB: db}
}

// Get fetches the cached resolution for a zip.
func (s *SQLResolutionCache) Get(ctx context.Context, zip string) (_ ports.Resolution, _ bool, err error) {
	defer obs.Time(ctx, "resolution.cache.Get")(&err)

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
	WHERE zip = $1;
	`

	var res ports.Resolution
	scanErr := s.DB.QueryRowContext(ctx, q, zip).Scan(&res.StateAbbrev, &res.StateName, &res.City)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return ports.Resolution{}, false, nil
	}
	if scanErr != nil {
		return ports.Resolution{}, false, fmt.Errorf("get resolution cache: query zip %q: %w", zip, scanErr)
	}

	return res, true, nil
}

// Put stores a zip -> resolution mapping, replacing any previous entry.
func (s *SQLResolutionCache) Put(ctx context.Context, zip string, res ports.Resolution) error {
	if s.DB == nil {
		return errors.New("resolution cache: db is nil")
	}

	zip = strings.TrimSpace(zip)
	if zip == "" {
		return errors.New("insert resolution cache: empty zip key")
	}

	q := `
	INSERT INTO resolution_cache (zip, state_abbrev, state_name, city)
	VALUES ($1, $2, $3, $4)
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
