package db

import (
	"database/sql"
	"fmt"
)

// migrations are executed in order on every open. Statements are written to
// be idempotent (IF NOT EXISTS / INSERT OR IGNORE) so re-running is safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS date_groups (
		date       TEXT PRIMARY KEY,
		position   INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS diagnosis_records (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL REFERENCES date_groups(date) ON DELETE CASCADE,
		seq        INTEGER NOT NULL,
		name       TEXT NOT NULL,
		title      TEXT NOT NULL,
		summary    TEXT NOT NULL,
		table_rows TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE(date, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS action_records (
		id           TEXT PRIMARY KEY,
		diagnosis_id TEXT NOT NULL REFERENCES diagnosis_records(id) ON DELETE CASCADE,
		seq          INTEGER NOT NULL,
		name         TEXT NOT NULL,
		title        TEXT NOT NULL,
		summary      TEXT NOT NULL,
		table_rows   TEXT NOT NULL,
		created_at   TEXT NOT NULL,
		UNIQUE(diagnosis_id, seq)
	)`,

	// Per-scope sequence allocators. scope_kind is 'date' for diagnosis
	// numbering and 'diagnosis' for action numbering.
	`CREATE TABLE IF NOT EXISTS record_sequences (
		scope_kind TEXT NOT NULL,
		scope_id   TEXT NOT NULL,
		next_seq   INTEGER NOT NULL,
		PRIMARY KEY (scope_kind, scope_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_diagnosis_records_date ON diagnosis_records(date)`,
	`CREATE INDEX IF NOT EXISTS idx_action_records_diagnosis ON action_records(diagnosis_id)`,

	`CREATE TABLE IF NOT EXISTS vuln_checks (
		code        TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		status      TEXT NOT NULL,
		result      TEXT NOT NULL,
		order_index INTEGER NOT NULL
	)`,

	// Placeholder check items carried over until real inspection logic lands.
	`INSERT OR IGNORE INTO vuln_checks (code, name, status, result, order_index) VALUES
		('V-001', '불필요한 서비스 비활성화', '대기', '-', 1),
		('V-002', '최신 보안 패치 적용', '대기', '-', 2),
		('V-003', '로그 정책 설정', '대기', '-', 3)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
