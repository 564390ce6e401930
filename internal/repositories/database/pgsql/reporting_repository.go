package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wevomedia/wevo_media_app/internal/apperrors"
	"github.com/wevomedia/wevo_media_app/internal/core/domain"
	portsrepo "github.com/wevomedia/wevo_media_app/internal/core/ports/repositories"
)

type reportDefinition struct {
	name        string
	title       string
	description string
	query       string
}

// reportCatalog is the fixed set of canned analytical queries. None of them
// take arguments, so there is no user-controlled text anywhere near the SQL.
var reportCatalog = []reportDefinition{
	{
		name:        domain.ReportClientsAboveAvgTickets,
		title:       "Clients With Above-Average Support Tickets",
		description: "Clients that have more support tickets than the average per client",
		query: `
			SELECT c.id AS client_id, c.name, COALESCE(c.email, '') AS email, COUNT(s.id) AS total_tickets
			FROM clients c
			LEFT JOIN support_tickets s ON c.id = s.client_id
			GROUP BY c.id, c.name, c.email
			HAVING COUNT(s.id) > (
				SELECT AVG(tickets_per_client)
				FROM (
					SELECT COUNT(*) AS tickets_per_client
					FROM support_tickets
					GROUP BY client_id
				) AS per_client
			)
			ORDER BY total_tickets DESC;
		`,
	},
	{
		name:        domain.ReportProjectsHighPriorityTasks,
		title:       "Projects With High-Priority Tasks",
		description: "Projects that have at least one task marked as high priority",
		query: `
			SELECT p.id AS project_id, p.name, p.status,
			       (SELECT COUNT(*)
			        FROM tasks t
			        WHERE t.project_id = p.id
			          AND t.priority = 'High') AS high_priority_tasks
			FROM projects p
			WHERE EXISTS (
				SELECT 1
				FROM tasks t
				WHERE t.project_id = p.id
				  AND t.priority = 'High'
			)
			ORDER BY high_priority_tasks DESC;
		`,
	},
	{
		name:        domain.ReportProjectFinancialSummary,
		title:       "Financial Summary By Project",
		description: "Revenue, expense, balance and average amount per project",
		query: `
			SELECT
				p.id AS project_id,
				p.name,
				COUNT(f.id) AS total_entries,
				SUM(CASE WHEN f.entry_type = 'Revenue' THEN f.amount ELSE 0 END) AS total_revenue,
				SUM(CASE WHEN f.entry_type = 'Expense' THEN f.amount ELSE 0 END) AS total_expense,
				SUM(CASE WHEN f.entry_type = 'Revenue' THEN f.amount ELSE -f.amount END) AS balance,
				AVG(f.amount) AS average_amount
			FROM projects p
			LEFT JOIN financial_entries f ON p.id = f.project_id
			GROUP BY p.id, p.name
			HAVING COUNT(f.id) > 0
			ORDER BY balance DESC;
		`,
	},
	{
		name:        domain.ReportClientSupportStats,
		title:       "Support Statistics By Client",
		description: "Top 10 clients by ticket volume with first and last ticket dates",
		query: `
			SELECT
				c.id AS client_id,
				c.name,
				COALESCE(c.email, '') AS email,
				COUNT(s.id) AS total_tickets,
				MAX(s.opened_at) AS last_ticket,
				MIN(s.opened_at) AS first_ticket
			FROM clients c
			LEFT JOIN support_tickets s ON c.id = s.client_id
			GROUP BY c.id, c.name, c.email
			ORDER BY total_tickets DESC
			LIMIT 10;
		`,
	},
	{
		name:        domain.ReportPendingAccountsUnion,
		title:       "Pending Accounts",
		description: "All pending payables and receivables merged into a single list",
		query: `
			SELECT
				'Payable' AS account_type,
				id AS account_id,
				COALESCE(description, '') AS description,
				amount,
				due_date AS date,
				status
			FROM payables
			WHERE status = 'Pending'

			UNION ALL

			SELECT
				'Receivable' AS account_type,
				id AS account_id,
				COALESCE(description, '') AS description,
				amount,
				received_at AS date,
				status
			FROM receivables
			WHERE status = 'Pending'

			ORDER BY date;
		`,
	},
	{
		name:        domain.ReportCommonTaxIDs,
		title:       "Tax IDs In Both Leads And Clients",
		description: "Tax ids that appear in the leads table and in the clients table",
		query: `
			SELECT tax_id, 'Lead and Client' AS kind
			FROM leads
			WHERE tax_id IS NOT NULL

			INTERSECT

			SELECT tax_id, 'Lead and Client' AS kind
			FROM clients
			WHERE tax_id IS NOT NULL

			ORDER BY tax_id;
		`,
	},
}

type PgxReportingRepository struct {
	db *pgxpool.Pool
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{db: db}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) ListReports() []domain.ReportInfo {
	infos := make([]domain.ReportInfo, 0, len(reportCatalog))
	for _, def := range reportCatalog {
		infos = append(infos, domain.ReportInfo{
			Name:        def.name,
			Title:       def.title,
			Description: def.description,
		})
	}
	return infos
}

func (r *PgxReportingRepository) RunReport(ctx context.Context, name string) (*domain.ReportResult, error) {
	var def *reportDefinition
	for i := range reportCatalog {
		if reportCatalog[i].name == name {
			def = &reportCatalog[i]
			break
		}
	}
	if def == nil {
		return nil, fmt.Errorf("%w: no report named %q", apperrors.ErrNotFound, name)
	}

	rows, err := r.db.Query(ctx, def.query)
	if err != nil {
		return nil, fmt.Errorf("failed to run report %s: %w", name, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, fd := range fields {
		columns[i] = fd.Name
	}

	result := &domain.ReportResult{
		Name:    def.name,
		Title:   def.title,
		Columns: columns,
		Rows:    []domain.ReportRow{},
	}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read report %s row: %w", name, err)
		}
		row := make(domain.ReportRow, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		result.Rows = append(result.Rows, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating report %s rows: %w", name, rows.Err())
	}
	return result, nil
}

func (r *PgxReportingRepository) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM leads),
			(SELECT COUNT(*) FROM clients),
			(SELECT COUNT(*) FROM projects),
			(SELECT COUNT(*) FROM tasks);
	`
	var summary domain.DashboardSummary
	err := r.db.QueryRow(ctx, query).Scan(
		&summary.TotalLeads,
		&summary.TotalClients,
		&summary.TotalProjects,
		&summary.TotalTasks,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard summary: %w", err)
	}
	return &summary, nil
}
