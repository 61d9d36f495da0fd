package config

import (
	"strings"
	"testing"
)

// An UPDATE that writes identical values back must still count as a matched
// row, or a no-op edit save reads as a missing post. That depends on the
// clientFoundRows connection flag, so pin it in the DSN.
func TestDSN_CountsMatchedRows(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost:3306",
		User:     "inkpost",
		Password: "inkpost",
		Name:     "inkpost",
	}

	dsn := cfg.DSN()
	if !strings.Contains(dsn, "clientFoundRows=true") {
		t.Errorf("DSN must enable clientFoundRows, got %q", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Errorf("DSN must enable parseTime, got %q", dsn)
	}
}

// The flag is forced onto a DATABASE_URL override too.
func TestDSN_OverrideCountsMatchedRows(t *testing.T) {
	cfg := DatabaseConfig{
		dsnOverride: "user:pass@tcp(db:3306)/inkpost?parseTime=true",
	}

	dsn := cfg.DSN()
	if !strings.Contains(dsn, "clientFoundRows=true") {
		t.Errorf("override DSN must enable clientFoundRows, got %q", dsn)
	}
}

func TestDSN_HostDefaultPort(t *testing.T) {
	cfg := DatabaseConfig{Host: "mydb", User: "u", Password: "p", Name: "n"}

	if dsn := cfg.DSN(); !strings.Contains(dsn, "tcp(mydb:3306)") {
		t.Errorf("expected default port appended, got %q", dsn)
	}
}
