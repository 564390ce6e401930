package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/wevomedia/wevo_media_app/internal/core/ports/repositories"
)

// schemaStatements is the full DDL batch, in dependency order: base tables
// first, then join tables, then the columns and foreign keys that close the
// cycles between the base tables. Every statement is individually guarded
// (IF NOT EXISTS, or a pg_constraint lookup where PostgreSQL has no IF NOT
// EXISTS form), so running the batch against an already-provisioned database
// changes nothing.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS leads (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		phone VARCHAR(20),
		email VARCHAR(100),
		origin VARCHAR(50),
		funnel_status VARCHAR(50),
		tax_id VARCHAR(14) UNIQUE
	);`,

	`CREATE TABLE IF NOT EXISTS clients (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		phone VARCHAR(20),
		email VARCHAR(100),
		tax_id VARCHAR(14) UNIQUE,
		active_plan BOOLEAN DEFAULT FALSE,
		lead_id INTEGER REFERENCES leads(id) ON DELETE SET NULL
	);`,

	`CREATE TABLE IF NOT EXISTS support_tickets (
		id SERIAL PRIMARY KEY,
		subject VARCHAR(200) NOT NULL,
		requester VARCHAR(100),
		description TEXT,
		opened_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		client_id INTEGER NOT NULL REFERENCES clients(id) ON DELETE CASCADE
	);`,

	`CREATE TABLE IF NOT EXISTS users (
		tax_id VARCHAR(14) PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(100) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(10) DEFAULT 'normal' CHECK (role IN ('admin', 'normal'))
	);`,

	`CREATE TABLE IF NOT EXISTS projects (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		status VARCHAR(50) DEFAULT 'In progress'
	);`,

	`CREATE TABLE IF NOT EXISTS contracts (
		id SERIAL PRIMARY KEY,
		start_date DATE NOT NULL,
		end_date DATE,
		amount DECIMAL(10,2) NOT NULL,
		status VARCHAR(30) DEFAULT 'Active'
	);`,

	`CREATE TABLE IF NOT EXISTS financial_entries (
		id SERIAL PRIMARY KEY,
		description VARCHAR(200),
		amount DECIMAL(10,2) NOT NULL,
		entry_date DATE DEFAULT CURRENT_DATE,
		entry_type VARCHAR(10) CHECK (entry_type IN ('Revenue', 'Expense'))
	);`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id SERIAL PRIMARY KEY,
		responsible VARCHAR(100),
		status VARCHAR(30) DEFAULT 'Pending',
		priority VARCHAR(10) CHECK (priority IN ('Low', 'Medium', 'High')),
		description TEXT
	);`,

	`CREATE TABLE IF NOT EXISTS payables (
		id SERIAL PRIMARY KEY,
		beneficiary VARCHAR(100),
		due_date DATE NOT NULL,
		amount DECIMAL(10,2) NOT NULL,
		description VARCHAR(200),
		status VARCHAR(30) DEFAULT 'Pending'
	);`,

	`CREATE TABLE IF NOT EXISTS receivables (
		id SERIAL PRIMARY KEY,
		received_at DATE,
		amount DECIMAL(10,2) NOT NULL,
		description VARCHAR(200),
		client_id INTEGER REFERENCES clients(id) ON DELETE SET NULL,
		status VARCHAR(30) DEFAULT 'Pending'
	);`,

	`CREATE TABLE IF NOT EXISTS client_contracts (
		client_id INTEGER NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		contract_id INTEGER NOT NULL REFERENCES contracts(id) ON DELETE CASCADE,
		PRIMARY KEY (client_id, contract_id)
	);`,

	`CREATE TABLE IF NOT EXISTS user_projects (
		user_tax_id VARCHAR(14) NOT NULL REFERENCES users(tax_id) ON DELETE CASCADE,
		project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		PRIMARY KEY (user_tax_id, project_id)
	);`,

	`CREATE TABLE IF NOT EXISTS user_tasks (
		user_tax_id VARCHAR(14) NOT NULL REFERENCES users(tax_id) ON DELETE CASCADE,
		task_id INTEGER NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		PRIMARY KEY (user_tax_id, task_id)
	);`,

	`ALTER TABLE financial_entries ADD COLUMN IF NOT EXISTS project_id INTEGER;`,

	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint WHERE conname = 'fk_financial_entries_project'
		) THEN
			ALTER TABLE financial_entries
				ADD CONSTRAINT fk_financial_entries_project
				FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE SET NULL;
		END IF;
	END $$;`,

	`ALTER TABLE contracts ADD COLUMN IF NOT EXISTS responsible_tax_id VARCHAR(14);`,

	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint WHERE conname = 'fk_contracts_responsible'
		) THEN
			ALTER TABLE contracts
				ADD CONSTRAINT fk_contracts_responsible
				FOREIGN KEY (responsible_tax_id) REFERENCES users(tax_id) ON DELETE SET NULL;
		END IF;
	END $$;`,

	`ALTER TABLE tasks ADD COLUMN IF NOT EXISTS project_id INTEGER;`,

	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint WHERE conname = 'fk_tasks_project'
		) THEN
			ALTER TABLE tasks
				ADD CONSTRAINT fk_tasks_project
				FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE;
		END IF;
	END $$;`,
}

type PgxSchemaManager struct {
	db *pgxpool.Pool
}

func NewSchemaManager(db *pgxpool.Pool) portsrepo.SchemaManager {
	return &PgxSchemaManager{db: db}
}

var _ portsrepo.SchemaManager = (*PgxSchemaManager)(nil)

// Provision creates the whole relational schema inside a single transaction.
// A failure in any statement rolls back everything already applied in this
// run; a second call against a provisioned database is a no-op.
func (m *PgxSchemaManager) Provision(ctx context.Context) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schema transaction: %w", err)
	}
	return nil
}
