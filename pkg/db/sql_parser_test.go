package db

import (
	"strings"
	"testing"
)

func TestSplitSQLStatementsHandlesDollarQuotedBlocks(t *testing.T) {
	content := `
-- Enable extension
CREATE EXTENSION IF NOT EXISTS timescaledb;

DO $$
BEGIN
    PERFORM set_config('search_path', 'public', false);
    PERFORM do_something();
END $$;

SELECT 1;
`

	statements := splitSQLStatements(content)

	if len(statements) != 3 {
		t.Fatalf("expected 3 statements, got %d: %#v", len(statements), statements)
	}

	if statements[1] == "" || statements[1][:2] != "DO" {
		t.Fatalf("expected DO block as second statement, got %q", statements[1])
	}

	if statements[2] != "SELECT 1" {
		t.Fatalf("unexpected tail statement: %q", statements[2])
	}
}

func TestSplitSQLStatementsIgnoresSemicolonsInQuotes(t *testing.T) {
	content := `
INSERT INTO device_events(message) VALUES('overvoltage;phase;A');
DO $tag$
BEGIN
    PERFORM do_something('value;with;semicolons');
END $tag$;
`

	statements := splitSQLStatements(content)

	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %#v", len(statements), statements)
	}

	if !strings.HasPrefix(statements[0], "INSERT") {
		t.Fatalf("unexpected first statement: %q", statements[0])
	}

	if !strings.HasPrefix(statements[1], "DO") || !strings.HasSuffix(statements[1], "$tag$") {
		t.Fatalf("unexpected DO statement: %q", statements[1])
	}
}

func TestSplitSQLStatementsKeepsBindPlaceholders(t *testing.T) {
	content := `SELECT * FROM telemetry_raw WHERE device_id = $1 AND time < $2; DELETE FROM device_events WHERE time < $1;`

	statements := splitSQLStatements(content)

	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %#v", len(statements), statements)
	}

	if !strings.Contains(statements[0], "$1") || !strings.Contains(statements[0], "$2") {
		t.Fatalf("placeholders must survive splitting: %q", statements[0])
	}
}

func TestSplitSQLStatementsDropsBlockComments(t *testing.T) {
	content := `
/* header comment; with a semicolon */
CREATE TABLE t (id TEXT);
`

	statements := splitSQLStatements(content)

	if len(statements) != 1 {
		t.Fatalf("expected 1 statement, got %d: %#v", len(statements), statements)
	}

	if strings.Contains(statements[0], "header") {
		t.Fatalf("block comment leaked into statement: %q", statements[0])
	}
}

func TestScanDollarTag(t *testing.T) {
	tag, advance := scanDollarTag("$body$ BEGIN END $body$")
	if tag != "$body$" || advance != 6 {
		t.Fatalf("unexpected tag %q advance %d", tag, advance)
	}

	tag, advance = scanDollarTag("$$ BEGIN END $$")
	if tag != "$$" || advance != 2 {
		t.Fatalf("unexpected anonymous tag %q advance %d", tag, advance)
	}

	if tag, _ := scanDollarTag("$1, $2"); tag != "" {
		t.Fatalf("bind placeholder misread as dollar tag: %q", tag)
	}

	if tag, _ := scanDollarTag("$unclosed"); tag != "" {
		t.Fatalf("unterminated tag misread: %q", tag)
	}
}

func TestMigrationVersion(t *testing.T) {
	if v := migrationVersion("0001_init.up.sql"); v != "0001" {
		t.Fatalf("unexpected version: %q", v)
	}

	if v := migrationVersion("noversion.up.sql"); v != "noversion.up.sql" {
		t.Fatalf("unexpected fallback: %q", v)
	}
}
