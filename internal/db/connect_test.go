package db

import (
	"context"
	"testing"
)

func TestOpenSQLiteCreatesSchema(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, DriverSQLite, "file:connect_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	for _, table := range []string{"game_results", "event_log"} {
		var name string
		err := conn.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type='table' AND name=$1`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s: %v", table, err)
		}
	}
	// idempotent
	if err := EnsureSchema(ctx, conn, DriverSQLite); err != nil {
		t.Fatalf("ensure schema twice: %v", err)
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	if _, err := Open(context.Background(), Driver("mysql"), ""); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
