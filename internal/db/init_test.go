package db_test

import (
	"strings"
	"testing"

	"github.com/atinyakov/fakeforge/internal/db"
)

func TestInitPostgres_Unreachable(t *testing.T) {
	cases := map[string]string{
		"garbage DSN":     "some=random",
		"empty DSN":       "",
		"closed port URL": "postgres://fakeforge@127.0.0.1:1/fakeforge?sslmode=disable&connect_timeout=1",
	}

	for name, dsn := range cases {
		t.Run(name, func(t *testing.T) {
			conn, err := db.InitPostgres(dsn)
			if err == nil {
				conn.Close()
				t.Fatalf("InitPostgres(%q) did not return error", dsn)
			}
			if !strings.Contains(err.Error(), "ping postgres") {
				t.Errorf("InitPostgres(%q) error = %q; want ping failure", dsn, err.Error())
			}
		})
	}
}
