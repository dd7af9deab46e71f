package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"mdde-hq/tycho/pkg/obs"
	"mdde-hq/tycho/pkg/obs/tensor"
)

// Config contains configuration for an observation store.
type Config struct {
	// Path is the SQLite file path. The file must already exist.
	Path string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultConfig returns the default store configuration for path.
func DefaultConfig(path string) *Config {
	return &Config{
		Path:        path,
		BusyTimeout: 5 * time.Second,
	}
}

// SQLiteStore reads observation records from a SQLite store file.
type SQLiteStore struct {
	db        *sql.DB
	config    *Config
	logger    *slog.Logger
	closeOnce sync.Once

	countStmt   *sql.Stmt
	resolveStmt *sql.Stmt
	listStmt    *sql.Stmt
	agentsStmt  *sql.Stmt
	fetchStmt   *sql.Stmt
}

// Open opens an existing observation store read-only. It fails with
// obs.NotFoundError if the file does not exist.
func Open(cfg *Config) (*SQLiteStore, error) {
	if cfg == nil || cfg.Path == "" {
		return nil, obs.NewStorageError("open", fmt.Errorf("store path cannot be empty"))
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	// Stat before open: the driver would create an empty database at a
	// missing path.
	info, err := os.Stat(cfg.Path)
	if err != nil || info.IsDir() {
		return nil, &obs.NotFoundError{Path: cfg.Path}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, obs.NewStorageError("open", err)
	}

	// Single reader, single connection: the whole invocation is sequential.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &SQLiteStore{
		db:     db,
		config: cfg,
		logger: slog.Default().With("component", "obs.storage.sqlite"),
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}

	s.logger.Debug("observation store opened",
		"path", cfg.Path,
		"busy_timeout", cfg.BusyTimeout,
	)

	return s, nil
}

// initialize applies connection pragmas and verifies the store layout.
func (s *SQLiteStore) initialize() error {
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", s.config.BusyTimeout.Milliseconds())); err != nil {
		return obs.NewStorageError("set_busy_timeout", err)
	}

	// The store is an input; refuse writes for the whole connection.
	if _, err := s.db.Exec("PRAGMA query_only=ON;"); err != nil {
		return obs.NewStorageError("set_query_only", err)
	}

	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'observations';",
	).Scan(&name)
	if err == sql.ErrNoRows {
		return obs.NewStorageError("verify_schema",
			fmt.Errorf("store has no observations table: %s", s.config.Path))
	}
	if err != nil {
		return obs.NewStorageError("verify_schema", err)
	}

	return nil
}

// prepareStatements prepares the query statements for reuse.
func (s *SQLiteStore) prepareStatements() error {
	var err error

	if s.countStmt, err = s.db.Prepare(countSamplesQuery); err != nil {
		return obs.NewStorageError("prepare_count", err)
	}
	if s.resolveStmt, err = s.db.Prepare(resolveSampleQuery); err != nil {
		return obs.NewStorageError("prepare_resolve", err)
	}
	if s.listStmt, err = s.db.Prepare(listSamplesQuery); err != nil {
		return obs.NewStorageError("prepare_list", err)
	}
	if s.agentsStmt, err = s.db.Prepare(sampleAgentsQuery); err != nil {
		return obs.NewStorageError("prepare_agents", err)
	}
	if s.fetchStmt, err = s.db.Prepare(fetchRecordQuery); err != nil {
		return obs.NewStorageError("prepare_fetch", err)
	}

	return nil
}

// CountObservations returns the number of distinct (episode, step) samples
// in the store.
func (s *SQLiteStore) CountObservations(ctx context.Context) (int, error) {
	var count int
	if err := s.countStmt.QueryRowContext(ctx).Scan(&count); err != nil {
		return 0, obs.NewStorageError("count", err)
	}
	return count, nil
}

// ResolveSample returns the (episode, step) pair at the 1-based index into
// the ascending (episode, step) enumeration. It fails with
// obs.InvalidIndexError for index < 1 and obs.OutOfRangeError for an index
// beyond the number of samples.
func (s *SQLiteStore) ResolveSample(ctx context.Context, index int) (obs.SampleKey, error) {
	if index < 1 {
		return obs.SampleKey{}, &obs.InvalidIndexError{Index: index}
	}

	var key obs.SampleKey
	err := s.resolveStmt.QueryRowContext(ctx, index-1).Scan(&key.Episode, &key.Step)
	if err == sql.ErrNoRows {
		count, countErr := s.CountObservations(ctx)
		if countErr != nil {
			return obs.SampleKey{}, countErr
		}
		return obs.SampleKey{}, &obs.OutOfRangeError{Index: index, Count: count}
	}
	if err != nil {
		return obs.SampleKey{}, obs.NewStorageError("resolve", err)
	}

	return key, nil
}

// ListSamples returns up to limit (episode, step) pairs in ascending order,
// skipping offset pairs. A negative limit returns all remaining pairs.
func (s *SQLiteStore) ListSamples(ctx context.Context, limit, offset int) ([]obs.SampleKey, error) {
	if offset < 0 {
		offset = 0
	}

	rows, err := s.listStmt.QueryContext(ctx, limit, offset)
	if err != nil {
		return nil, obs.NewStorageError("list", err)
	}
	defer rows.Close()

	var keys []obs.SampleKey
	for rows.Next() {
		var key obs.SampleKey
		if err := rows.Scan(&key.Episode, &key.Step); err != nil {
			return nil, obs.NewStorageError("list", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, obs.NewStorageError("list", err)
	}

	return keys, nil
}

// Agents returns the identifiers of all agents with a record in the sample,
// sorted ascending so per-file iteration order is stable across runs.
func (s *SQLiteStore) Agents(ctx context.Context, key obs.SampleKey) ([]string, error) {
	rows, err := s.agentsStmt.QueryContext(ctx, key.Episode, key.Step)
	if err != nil {
		return nil, obs.NewStorageError("agents", err)
	}
	defer rows.Close()

	var agents []string
	for rows.Next() {
		var agent string
		if err := rows.Scan(&agent); err != nil {
			return nil, obs.NewStorageError("agents", err)
		}
		agents = append(agents, agent)
	}
	if err := rows.Err(); err != nil {
		return nil, obs.NewStorageError("agents", err)
	}

	return agents, nil
}

// FetchRecord returns the raw observation record for one agent in a sample.
func (s *SQLiteStore) FetchRecord(ctx context.Context, key obs.SampleKey, agent string) (*obs.Record, error) {
	record := &obs.Record{
		Episode: key.Episode,
		Step:    key.Step,
		Agent:   agent,
	}

	err := s.fetchStmt.QueryRowContext(ctx, key.Episode, key.Step, agent).Scan(&record.Shape, &record.Obs)
	if err == sql.ErrNoRows {
		return nil, obs.NewStorageError("fetch",
			fmt.Errorf("no record for agent %s in sample %s", agent, key))
	}
	if err != nil {
		return nil, obs.NewStorageError("fetch", err)
	}

	return record, nil
}

// LoadTensor fetches one agent's record and reconstructs its observation
// tensor: decompress the payload, decode the shape, reinterpret the raw
// bytes as float64 values, and reshape row-major. Reconstruction failures
// surface as obs.CorruptRecordError.
func (s *SQLiteStore) LoadTensor(ctx context.Context, key obs.SampleKey, agent string) (*tensor.Tensor, error) {
	record, err := s.FetchRecord(ctx, key, agent)
	if err != nil {
		return nil, err
	}

	t, err := tensor.Decode(record.Shape, record.Obs)
	if err != nil {
		return nil, &obs.CorruptRecordError{
			Episode: key.Episode,
			Step:    key.Step,
			Agent:   agent,
			Cause:   err,
		}
	}

	s.logger.Debug("tensor loaded",
		"sample", key.String(),
		"agent", agent,
		"shape", t.Shape(),
	)

	return t, nil
}

// Close releases the prepared statements and the database handle. Close is
// idempotent and safe to call multiple times.
func (s *SQLiteStore) Close() error {
	var closeErr error

	s.closeOnce.Do(func() {
		for _, stmt := range []*sql.Stmt{s.countStmt, s.resolveStmt, s.listStmt, s.agentsStmt, s.fetchStmt} {
			if stmt != nil {
				stmt.Close()
			}
		}
		if s.db != nil {
			closeErr = s.db.Close()
		}
	})

	return closeErr
}
