package manifest

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/kofuk/bungie/apierror"
	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/factory"
	"github.com/kofuk/bungie/iterator"
	_ "modernc.org/sqlite"
)

var tableName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Reader reads definitions from a downloaded SQLite manifest.
type Reader struct {
	db *sql.DB
}

// Open opens the database at path read-only.
func Open(path string) (*Reader, error) {
	dsn := "file:" + (&url.URL{Path: path}).EscapedPath() + "?mode=ro"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, apierror.IO(err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, apierror.IO(err)
	}
	return &Reader{db: db}, nil
}

func (r *Reader) Close() error {
	return r.db.Close()
}

func (r *Reader) Tables(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name")
	if err != nil {
		return nil, apierror.IO(err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, apierror.IO(err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, apierror.IO(err)
	}
	return tables, nil
}

// RowID maps a definition hash to the row id the manifest stores it under.
func RowID(hash uint32) int64 {
	return int64(int32(hash))
}

func (r *Reader) Definition(ctx context.Context, table string, hash uint32) (json.RawMessage, error) {
	if !tableName.MatchString(table) {
		return nil, apierror.InvalidArgument("invalid table name %q", table)
	}

	var data string
	err := r.db.QueryRowContext(ctx, fmt.Sprintf("SELECT json FROM %s WHERE id = ?", table), RowID(hash)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &apierror.Error{
			Kind:    apierror.KindNotFound,
			Message: fmt.Sprintf("%s has no definition %d", table, hash),
		}
	}
	if err != nil {
		return nil, apierror.IO(err)
	}
	return json.RawMessage(data), nil
}

type Row struct {
	ID   int64
	JSON json.RawMessage
}

// Definitions iterates over every row of table. The iterator holds a
// database connection until it is exhausted.
func (r *Reader) Definitions(ctx context.Context, table string) (*iterator.Iterator[Row], error) {
	if !tableName.MatchString(table) {
		return nil, apierror.InvalidArgument("invalid table name %q", table)
	}
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("SELECT id, json FROM %s", table))
	if err != nil {
		return nil, apierror.IO(err)
	}

	return iterator.New(func() (Row, error) {
		if !rows.Next() {
			err := rows.Err()
			rows.Close()
			if err != nil {
				return Row{}, apierror.IO(err)
			}
			return Row{}, iterator.ErrStopIteration
		}
		var row Row
		var data string
		if err := rows.Scan(&row.ID, &data); err != nil {
			rows.Close()
			return Row{}, apierror.IO(err)
		}
		row.JSON = json.RawMessage(data)
		return row, nil
	}), nil
}

func (r *Reader) InventoryItem(ctx context.Context, hash uint32) (entity.InventoryEntity, error) {
	raw, err := r.Definition(ctx, "DestinyInventoryItemDefinition", hash)
	if err != nil {
		return entity.InventoryEntity{}, err
	}
	return factory.DeserializeInventoryEntity(raw)
}
