package passphrase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/entropykit/internal/platform/db"
)

// SQLRepository stores wordlists in Postgres, one row per word with a stable
// position so samples stay index-addressable.
type SQLRepository struct {
	db    *sql.DB
	txMgr db.TxManager
}

var _ Repository = (*SQLRepository)(nil)

func NewSQLRepository(dbConn *sql.DB, txMgr db.TxManager) *SQLRepository {
	return &SQLRepository{db: dbConn, txMgr: txMgr}
}

// executor picks the context transaction when one is active.
func (r *SQLRepository) executor(ctx context.Context) db.Executor {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

const QueryWords = `
SELECT word FROM wordlist_entries
WHERE list_name = $1
ORDER BY position
`

func (r *SQLRepository) Words(ctx context.Context, list string) ([]string, error) {
	rows, err := r.executor(ctx).QueryContext(ctx, QueryWords, list)
	if err != nil {
		return nil, fmt.Errorf("%w: words of list %s: %v", ErrQueryFailed, list, err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("passphrase repository: scan row: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("passphrase repository: iterate rows: %w", err)
	}

	if len(words) == 0 {
		return nil, ErrListNotFound
	}
	return words, nil
}

const (
	QueryDeleteList = "DELETE FROM wordlist_entries WHERE list_name = $1"
	QueryInsertWord = "INSERT INTO wordlist_entries (list_name, position, word) VALUES ($1, $2, $3)"
)

func (r *SQLRepository) ReplaceList(ctx context.Context, list string, words []string) error {
	return r.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		ex := r.executor(txCtx)
		if _, err := ex.ExecContext(txCtx, QueryDeleteList, list); err != nil {
			return fmt.Errorf("%w: purge list %s: %v", ErrQueryFailed, list, err)
		}
		for i, w := range words {
			if _, err := ex.ExecContext(txCtx, QueryInsertWord, list, i, w); err != nil {
				return fmt.Errorf("%w: insert word %d of list %s: %v", ErrQueryFailed, i, list, err)
			}
		}
		return nil
	})
}

const QueryListInfo = `
SELECT COUNT(*) FROM wordlist_entries
WHERE list_name = $1
`

func (r *SQLRepository) Info(ctx context.Context, list string) (ListInfo, error) {
	row := r.executor(ctx).QueryRowContext(ctx, QueryListInfo, list)

	var count int
	if err := row.Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ListInfo{}, ErrListNotFound
		}
		return ListInfo{}, fmt.Errorf("%w: info of list %s: %v", ErrQueryFailed, list, err)
	}
	if count == 0 {
		return ListInfo{}, ErrListNotFound
	}

	return ListInfo{Name: list, WordCount: count}, nil
}
