package dataset

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Load observation rows from a MySQL table instead of a CSV export.  The
// table is read once per Load call; there is no sampling loop.
type LiveLoader struct {
	db    *sql.DB
	table string
}

// Connect with the given client config.  The caller owns Close.
func NewLiveLoader(config *mysql.Config, table string) (*LiveLoader, error) {
	db, err := sql.Open("mysql", config.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("error connecting to mysql: %v", err)
	}
	return &LiveLoader{db: db, table: table}, nil
}

func (l *LiveLoader) Close() error {
	return l.db.Close()
}

// Select the given columns from the table, in insertion order, and build a
// Table from the result.  Every value comes back as its string form; numeric
// columns are re-typed by the frame loader.
func (l *LiveLoader) Load(columns []string) (Table, error) {
	if len(columns) == 0 {
		return Table{}, fmt.Errorf("no columns requested from %s", l.table)
	}

	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = fmt.Sprintf("`%s`", col)
	}
	query := fmt.Sprintf("SELECT %s FROM `%s`", strings.Join(quoted, `, `), l.table)

	rows, err := l.db.Query(query)
	if err != nil {
		return Table{}, fmt.Errorf("error querying %s: %v", l.table, err)
	}
	defer rows.Close()

	records := [][]string{columns}

	raw := make([]sql.RawBytes, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range raw {
		dest[i] = &raw[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return Table{}, fmt.Errorf("error scanning %s: %v", l.table, err)
		}
		record := make([]string, len(columns))
		for i, val := range raw {
			record[i] = string(val)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return Table{}, fmt.Errorf("error reading %s: %v", l.table, err)
	}

	t := FromRecords(records)
	return t, t.Err()
}
