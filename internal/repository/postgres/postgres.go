package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/weatherdash/backend/internal/domain"
)

const schema = `
	CREATE TABLE IF NOT EXISTS weather_lookups (
		id           TEXT PRIMARY KEY,
		location     TEXT NOT NULL,
		latitude     DOUBLE PRECISION NOT NULL,
		longitude    DOUBLE PRECISION NOT NULL,
		weather_code INTEGER NOT NULL,
		weather_type TEXT NOT NULL,
		temperature  DOUBLE PRECISION NOT NULL,
		timestamp    TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS weather_lookups_timestamp_idx ON weather_lookups (timestamp DESC);
`

// PostgresRepository implements domain.LookupRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Migrate creates the lookup table if it does not exist yet
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to migrate: %w", err)
	}
	return nil
}

// SaveLookup persists a dashboard lookup to PostgreSQL
func (r *PostgresRepository) SaveLookup(ctx context.Context, data domain.Lookup) error {
	query := `
		INSERT INTO weather_lookups (
			id, location, latitude, longitude, weather_code, weather_type, temperature, timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		data.ID, data.Location, data.Latitude, data.Longitude,
		data.WeatherCode, data.WeatherType, data.Temperature, data.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save lookup: %w", err)
	}

	return nil
}

// GetLookupHistory retrieves lookup history from PostgreSQL
func (r *PostgresRepository) GetLookupHistory(ctx context.Context, from, to time.Time) ([]domain.Lookup, error) {
	query := `
		SELECT id, location, latitude, longitude, weather_code, weather_type, temperature, timestamp
		FROM weather_lookups
		WHERE timestamp BETWEEN $1 AND $2
		ORDER BY timestamp DESC
		LIMIT 100
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query lookups: %w", err)
	}
	defer rows.Close()

	results := []domain.Lookup{}
	for rows.Next() {
		var l domain.Lookup
		err := rows.Scan(
			&l.ID, &l.Location, &l.Latitude, &l.Longitude,
			&l.WeatherCode, &l.WeatherType, &l.Temperature, &l.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan lookup row: %w", err)
		}
		results = append(results, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to iterate lookups: %w", err)
	}

	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

var _ domain.LookupRepository = (*PostgresRepository)(nil)
