package pgsql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wevomedia/wevo_media_app/internal/core/domain"
)

func TestReportCatalog_KnownNames(t *testing.T) {
	want := []string{
		domain.ReportClientsAboveAvgTickets,
		domain.ReportProjectsHighPriorityTasks,
		domain.ReportProjectFinancialSummary,
		domain.ReportClientSupportStats,
		domain.ReportPendingAccountsUnion,
		domain.ReportCommonTaxIDs,
	}

	got := make([]string, 0, len(reportCatalog))
	for _, def := range reportCatalog {
		got = append(got, def.name)
	}
	assert.ElementsMatch(t, want, got)
}

func TestReportCatalog_EntriesComplete(t *testing.T) {
	seen := make(map[string]bool, len(reportCatalog))
	for _, def := range reportCatalog {
		assert.NotEmpty(t, def.name)
		assert.NotEmpty(t, def.title, "report %s needs a title", def.name)
		assert.NotEmpty(t, def.description, "report %s needs a description", def.name)
		assert.NotEmpty(t, def.query, "report %s needs a query", def.name)
		assert.False(t, seen[def.name], "report name %s appears twice", def.name)
		seen[def.name] = true
	}
}

func TestReportCatalog_QueriesTakeNoArguments(t *testing.T) {
	for _, def := range reportCatalog {
		assert.NotContains(t, def.query, "$1", "report %s must not take parameters", def.name)
	}
}

func TestReportCatalog_QueriesAreReadOnly(t *testing.T) {
	for _, def := range reportCatalog {
		query := strings.ToUpper(def.query)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(query), "SELECT"),
			"report %s must be a SELECT", def.name)
		for _, verb := range []string{"INSERT ", "UPDATE ", "DELETE ", "DROP ", "ALTER "} {
			assert.NotContains(t, query, verb, "report %s must be read-only", def.name)
		}
	}
}
