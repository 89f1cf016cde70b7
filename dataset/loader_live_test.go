package dataset

import (
	"testing"

	"github.com/go-sql-driver/mysql"
)

func getTestLiveLoader(t testing.TB) *LiveLoader {
	config := mysql.NewConfig()
	config.User = `kcov`
	config.Net = `tcp`
	config.Addr = `127.0.0.1:3306`
	config.DBName = `kdca`

	// sql.Open does not dial, so this works without a server
	l, err := NewLiveLoader(config, `regional`)
	if err != nil {
		t.Fatalf(`loader error: %v`, err)
	}
	return l
}

func TestNewLiveLoader(t *testing.T) {
	l := getTestLiveLoader(t)
	defer l.Close()

	if l.table != `regional` {
		t.Errorf(`unexpected table: %s`, l.table)
	}
}

// - no requested columns is caught before any query is sent
func TestLiveLoaderNoColumns(t *testing.T) {
	l := getTestLiveLoader(t)
	defer l.Close()

	_, err := l.Load(nil)
	if err == nil {
		t.Error("No error!")
	}
}
