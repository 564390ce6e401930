package pgsql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every statement in the batch must be individually idempotent so Provision
// can run on every startup.
func TestSchemaStatements_AllGuarded(t *testing.T) {
	for i, stmt := range schemaStatements {
		guarded := strings.Contains(stmt, "IF NOT EXISTS")
		assert.True(t, guarded, "statement %d is not idempotent:\n%s", i, stmt)
	}
}

func TestSchemaStatements_BaseTablesBeforeJoinTables(t *testing.T) {
	indexOf := func(fragment string) int {
		for i, stmt := range schemaStatements {
			if strings.Contains(stmt, fragment) {
				return i
			}
		}
		t.Fatalf("no statement contains %q", fragment)
		return -1
	}

	// Join tables reference their base tables, so order matters within the
	// single transaction.
	assert.Less(t, indexOf("CREATE TABLE IF NOT EXISTS clients"), indexOf("client_contracts"))
	assert.Less(t, indexOf("CREATE TABLE IF NOT EXISTS contracts"), indexOf("client_contracts"))
	assert.Less(t, indexOf("CREATE TABLE IF NOT EXISTS users"), indexOf("user_projects"))
	assert.Less(t, indexOf("CREATE TABLE IF NOT EXISTS projects"), indexOf("user_projects"))
	assert.Less(t, indexOf("CREATE TABLE IF NOT EXISTS tasks"), indexOf("user_tasks"))

	// Leads precede clients because of the lead_id reference.
	assert.Less(t, indexOf("CREATE TABLE IF NOT EXISTS leads"), indexOf("CREATE TABLE IF NOT EXISTS clients"))

	// Columns are added before the constraints that bind them.
	assert.Less(t, indexOf("ALTER TABLE financial_entries ADD COLUMN"), indexOf("fk_financial_entries_project"))
	assert.Less(t, indexOf("ALTER TABLE contracts ADD COLUMN"), indexOf("fk_contracts_responsible"))
	assert.Less(t, indexOf("ALTER TABLE tasks ADD COLUMN"), indexOf("fk_tasks_project"))
}

func TestSchemaStatements_AllTablesPresent(t *testing.T) {
	tables := []string{
		"leads", "clients", "support_tickets", "users", "projects",
		"contracts", "financial_entries", "tasks", "payables", "receivables",
		"client_contracts", "user_projects", "user_tasks",
	}
	batch := strings.Join(schemaStatements, "\n")
	for _, table := range tables {
		assert.Contains(t, batch, "CREATE TABLE IF NOT EXISTS "+table, "missing table %s", table)
	}
}

func TestSchemaStatements_LateConstraintsUseGuard(t *testing.T) {
	for _, stmt := range schemaStatements {
		if !strings.Contains(stmt, "ADD CONSTRAINT") {
			continue
		}
		// PostgreSQL has no ADD CONSTRAINT IF NOT EXISTS, so each late
		// foreign key needs the pg_constraint lookup.
		assert.Contains(t, stmt, "pg_constraint", "unguarded constraint:\n%s", stmt)
	}
}
