package reporting

import (
	"time"

	"github.com/vfg2006/delivery-manager-api/internal/domain"
)

// Reporter define a interface das agregações do dashboard
type Reporter interface {
	// Dashboard monta a grade do trimestre com os períodos agrupados por
	// mês e o status efetivo de cada (conta, semana)
	Dashboard(quarter string, managerID *string) (*Dashboard, error)

	// WeekSummary calcula as estatísticas do cabeçalho para uma semana
	WeekSummary(week string, managerID *string, status *domain.Status) (*domain.WeekSummary, error)

	// MonthlyBilling soma o faturamento de todas as contas em um mês
	MonthlyBilling(month string) (float64, error)

	// ManagerSummary agrupa as contas por gerente em um (ano, mês)
	ManagerSummary(year int, month time.Month) ([]*domain.ManagerRollup, error)

	// YearComparison compara faturamento e pessoas entre anos, mês a mês
	YearComparison(years []int, accountID *string) ([]*domain.YearComparison, error)

	// AccountAnalytics gera a série semanal de uma conta em um trimestre
	AccountAnalytics(accountID, quarter string) ([]*domain.AnalyticsPoint, error)

	// SatisfactionOverview monta a visão anual de satisfação de uma conta
	SatisfactionOverview(accountID string, year int) (*domain.YearlyAverage, error)
}
