package providers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/ja-he/propedit/internal/model"
	"github.com/ja-he/propedit/internal/storage"
)

const createSettingsTable = `
CREATE TABLE IF NOT EXISTS settings (
	object TEXT NOT NULL,
	key    TEXT NOT NULL,
	value  TEXT NOT NULL,
	PRIMARY KEY (object, key)
)`

// SQLiteProvider stores settings in an SQLite database, one row per setting
// with the value encoded as JSON.
// The namespace is the object column, so one database can hold the tables of
// many objects.
type SQLiteProvider struct {
	mtx sync.Mutex

	path   string
	object string
	db     *sql.DB

	dataVersion int64

	log zerolog.Logger
}

// NewSQLiteProvider opens (and if necessary creates) the database at the given
// path.
func NewSQLiteProvider(ctx context.Context, path, namespace string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("could not open database '%s' (%w)", path, err)
	}
	// data_version is per connection, it has to stay the same one
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createSettingsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create settings table in '%s' (%w)", path, err)
	}

	return &SQLiteProvider{
		path:   path,
		object: namespace,
		db:     db,
		log:    log.With().Str("source", "sqlite-provider").Str("file", path).Str("object", namespace).Logger(),
	}, nil
}

// Location returns the database's path.
func (p *SQLiteProvider) Location() string { return p.path }

// Load reads the object's settings.
func (p *SQLiteProvider) Load() (model.SettingsTable, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	ctx := context.Background()

	table, err := p.query(ctx)
	if err != nil {
		return nil, err
	}

	if p.dataVersion, err = p.queryDataVersion(ctx); err != nil {
		return nil, err
	}
	p.log.Debug().Msgf("loaded %d settings", len(table))
	return table, nil
}

func (p *SQLiteProvider) query(ctx context.Context) (model.SettingsTable, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT key, value FROM settings WHERE object = ?`, p.object)
	if err != nil {
		return nil, fmt.Errorf("could not query settings (%w)", err)
	}
	defer rows.Close()

	table := model.SettingsTable{}
	for rows.Next() {
		var key, encoded string
		if err := rows.Scan(&key, &encoded); err != nil {
			return nil, fmt.Errorf("could not scan setting (%w)", err)
		}
		var value any
		if err := json.Unmarshal([]byte(encoded), &value); err != nil {
			p.log.Warn().Err(err).Msgf("skipping undecodable setting '%s'", key)
			continue
		}
		table[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read settings (%w)", err)
	}
	return table, nil
}

// Save replaces the object's settings in a single transaction.
// Settings set to nil are not stored.
func (p *SQLiteProvider) Save(table model.SettingsTable) error {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	ctx := context.Background()

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction (%w)", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM settings WHERE object = ?`, p.object); err != nil {
		return fmt.Errorf("could not clear settings (%w)", err)
	}
	for key, value := range table {
		if value == nil {
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("could not encode setting '%s' (%w)", key, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO settings (object, key, value) VALUES (?, ?, ?)`,
			p.object, key, string(encoded),
		); err != nil {
			return fmt.Errorf("could not store setting '%s' (%w)", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit settings (%w)", err)
	}

	if p.dataVersion, err = p.queryDataVersion(ctx); err != nil {
		return err
	}
	p.log.Debug().Msgf("saved %d settings", len(table))
	return nil
}

// Changed reports whether another connection committed to the database since
// the settings were last loaded or saved.
func (p *SQLiteProvider) Changed() (bool, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	version, err := p.queryDataVersion(context.Background())
	if err != nil {
		return false, err
	}
	return version != p.dataVersion, nil
}

// Close closes the database.
func (p *SQLiteProvider) Close() error { return p.db.Close() }

func (p *SQLiteProvider) queryDataVersion(ctx context.Context) (int64, error) {
	var version int64
	if err := p.db.QueryRowContext(ctx, `PRAGMA data_version`).Scan(&version); err != nil {
		return 0, fmt.Errorf("could not query data version (%w)", err)
	}
	return version, nil
}

var _ storage.SettingsProvider = &SQLiteProvider{}
