package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/wevomedia/wevo_media_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository onto the shared pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		LeadRepo:       newPgxLeadRepository(db),
		ClientRepo:     newPgxClientRepository(db),
		SupportRepo:    newPgxSupportRepository(db),
		UserRepo:       newPgxUserRepository(db),
		ProjectRepo:    newPgxProjectRepository(db),
		TaskRepo:       newPgxTaskRepository(db),
		ContractRepo:   newPgxContractRepository(db),
		EntryRepo:      newPgxFinancialEntryRepository(db),
		PayableRepo:    newPgxPayableRepository(db),
		ReceivableRepo: newPgxReceivableRepository(db),
		ReportingRepo:  newPgxReportingRepository(db),
	}
}
