package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/delivery-manager-api/internal/domain"
)

func intPtr(v int) *int {
	return &v
}

func strPtr(s string) *string {
	return &s
}

func TestSummarizeWeek(t *testing.T) {
	accounts := []*domain.Account{
		{ID: "ACC001", Name: "Conta A"},
		{ID: "ACC002", Name: "Conta B"},
		{ID: "ACC003", Name: "Conta C"},
	}

	snapshot := domain.NewSnapshot(nil, accounts, []*domain.WeeklyStatus{
		// ACC001 tem registro explícito na própria semana
		{ID: "W1", AccountID: "ACC001", Week: "2025-03-17", Status: domain.StatusCritical, People: 4},
		// ACC002 herda o registro de 03/03 por carry-forward
		{ID: "W2", AccountID: "ACC002", Week: "2025-03-03", Status: domain.StatusAttention, People: 6},
		// ACC003 não tem nada no mês e resolve para o estado limpo
	}, []*domain.ActionItem{
		{ID: "A1", AccountID: "ACC001", DueDate: "2025-03-19", Completed: false},
		{ID: "A2", AccountID: "ACC001", DueDate: "2025-03-23", Completed: false},
		{ID: "A3", AccountID: "ACC002", DueDate: "2025-03-24", Completed: false}, // fora da janela
		{ID: "A4", AccountID: "ACC002", DueDate: "2025-03-18", Completed: true},  // concluído
	}, nil, nil)

	summary := summarizeWeek(snapshot, accounts, "2025-03-17")

	assert.Equal(t, "2025-03-17", summary.Week)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Healthy)
	assert.Equal(t, 1, summary.Attention)
	assert.Equal(t, 1, summary.Critical)
	assert.Equal(t, 10, summary.TotalPeople)

	// A janela de pendências é [semana, semana+6d]: 19 e 23 de março
	// entram, 24 de março fica de fora e itens concluídos não contam
	assert.Equal(t, 2, summary.PendingActions)
}

func TestMonthlyBillingTotal(t *testing.T) {
	accounts := []*domain.Account{
		{ID: "ACC001", Name: "Conta A"},
		{ID: "ACC002", Name: "Conta B"},
		{ID: "ACC003", Name: "Conta C"},
	}

	snapshot := domain.NewSnapshot(nil, accounts, nil, nil, nil, []*domain.BillingRecord{
		{ID: "B1", AccountID: "ACC001", BillingMonth: "2025-03-01", BilledAmount: 1000},
		// ACC002 só tem registro em fevereiro: vale o carry de um passo
		{ID: "B2", AccountID: "ACC002", BillingMonth: "2025-02-01", BilledAmount: 500},
		// ACC003 só tem registro em janeiro: dois meses atrás não encadeia
		{ID: "B3", AccountID: "ACC003", BillingMonth: "2025-01-01", BilledAmount: 900},
	})

	assert.Equal(t, 1500.0, monthlyBillingTotal(snapshot, accounts, "2025-03"))
}

func TestYearlySatisfactionAverage(t *testing.T) {
	snapshot := domain.NewSnapshot(nil, nil, nil, nil, []*domain.SatisfactionScore{
		{ID: "S1", AccountID: "ACC001", Year: 2025, Quarter: 1, Score: intPtr(80)},
		{ID: "S2", AccountID: "ACC001", Year: 2025, Quarter: 2, Score: nil},
		{ID: "S3", AccountID: "ACC001", Year: 2025, Quarter: 3, Score: intPtr(60)},
		// Outro ano não entra na média
		{ID: "S4", AccountID: "ACC001", Year: 2024, Quarter: 4, Score: intPtr(10)},
	}, nil)

	// Trimestres sem nota ficam fora do denominador: (80+60)/2
	avg, ok := yearlySatisfactionAverage(snapshot, "ACC001", 2025)
	assert.True(t, ok)
	assert.Equal(t, 70.0, avg)

	_, ok = yearlySatisfactionAverage(snapshot, "ACC002", 2025)
	assert.False(t, ok)
}

func TestYearlyAverageFor(t *testing.T) {
	snapshot := domain.NewSnapshot(nil, nil, nil, nil, []*domain.SatisfactionScore{
		{ID: "S1", AccountID: "ACC001", Year: 2025, Quarter: 1, Score: intPtr(80)},
		{ID: "S3", AccountID: "ACC001", Year: 2025, Quarter: 3, Score: intPtr(60)},
	}, nil)

	average := yearlyAverageFor(snapshot, "ACC001", 2025)

	assert.Equal(t, 2025, average.Year)
	assert.Equal(t, 70.0, average.Average)
	assert.Equal(t, map[string]int{"Q1-2025": 80, "Q3-2025": 60}, average.Quarters)
}

func TestLatestStatusInMonth(t *testing.T) {
	snapshot := domain.NewSnapshot(nil, nil, []*domain.WeeklyStatus{
		{ID: "W1", AccountID: "ACC001", Week: "2025-03-03", Status: domain.StatusCritical, People: 10},
		{ID: "W2", AccountID: "ACC001", Week: "2025-03-17", Status: domain.StatusHealthy, People: 2},
		{ID: "W3", AccountID: "ACC001", Week: "2025-04-07", Status: domain.StatusAttention, People: 7},
	}, nil, nil, nil)

	latest := latestStatusInMonth(snapshot, "ACC001", 2025, time.March)

	assert.NotNil(t, latest)
	assert.Equal(t, "W2", latest.ID)

	assert.Nil(t, latestStatusInMonth(snapshot, "ACC001", 2025, time.February))
}

func TestManagerRollups(t *testing.T) {
	managers := []*domain.Manager{
		{ID: "MGR001", Name: "Carla Souza"},
		{ID: "MGR002", Name: "André Prado"},
	}

	accounts := []*domain.Account{
		{ID: "ACC001", Name: "Conta A", ManagerID: strPtr("MGR001")},
		{ID: "ACC002", Name: "Conta B", ManagerID: strPtr("MGR001")},
		{ID: "ACC003", Name: "Conta C"}, // sem gerente
	}

	statuses := []*domain.WeeklyStatus{
		// ACC001 tem dois registros em março: vale apenas o de 17/03, sem
		// carry-forward entre eles
		{ID: "W1", AccountID: "ACC001", Week: "2025-03-03", Status: domain.StatusCritical, People: 10},
		{ID: "W2", AccountID: "ACC001", Week: "2025-03-17", Status: domain.StatusHealthy, People: 3},
		{ID: "W3", AccountID: "ACC002", Week: "2025-03-10", Status: domain.StatusAttention, People: 5},
		{ID: "W4", AccountID: "ACC003", Week: "2025-03-24", Status: domain.StatusCritical, People: 2},
	}

	scores := []*domain.SatisfactionScore{
		{ID: "S1", AccountID: "ACC001", Year: 2025, Quarter: 1, Score: intPtr(80)},
		{ID: "S2", AccountID: "ACC001", Year: 2025, Quarter: 2, Score: intPtr(60)},
		// ACC002 sem notas: fora do denominador da média do grupo
	}

	snapshot := domain.NewSnapshot(managers, accounts, statuses, nil, scores, nil)

	rollups := managerRollups(snapshot, 2025, time.March)

	// Ordenado por nome: André Prado não tem contas e é descartado
	assert.Len(t, rollups, 2)
	assert.Equal(t, "Carla Souza", rollups[0].Manager.Name)
	assert.Equal(t, domain.UnassignedManagerName, rollups[1].Manager.Name)

	carla := rollups[0]
	assert.Equal(t, 2, carla.AccountCount)
	assert.Equal(t, 8, carla.TotalPeople) // 3 (registro de 17/03) + 5
	assert.Equal(t, 1, carla.HealthyCount)
	assert.Equal(t, 1, carla.AttentionCount)
	assert.Equal(t, 0, carla.CriticalCount)

	// A média do grupo considera só ACC001: (80+60)/2
	assert.Equal(t, 70.0, carla.AverageSatisfaction)

	unassigned := rollups[1]
	assert.Equal(t, 1, unassigned.AccountCount)
	assert.Equal(t, 2, unassigned.TotalPeople)
	assert.Equal(t, 1, unassigned.CriticalCount)
	assert.Equal(t, 0.0, unassigned.AverageSatisfaction)
}

func TestYearComparison(t *testing.T) {
	accounts := []*domain.Account{
		{ID: "ACC001", Name: "Conta A"},
		{ID: "ACC002", Name: "Conta B"},
	}

	snapshot := domain.NewSnapshot(nil, accounts, []*domain.WeeklyStatus{
		{ID: "W1", AccountID: "ACC001", Week: "2025-03-03", Status: domain.StatusHealthy, People: 4},
		{ID: "W2", AccountID: "ACC001", Week: "2025-03-31", Status: domain.StatusHealthy, People: 6},
		{ID: "W3", AccountID: "ACC002", Week: "2025-03-10", Status: domain.StatusHealthy, People: 2},
	}, nil, nil, []*domain.BillingRecord{
		{ID: "B1", AccountID: "ACC001", BillingMonth: "2025-03-01", BilledAmount: 1000},
		{ID: "B2", AccountID: "ACC002", BillingMonth: "2025-03-01", BilledAmount: 250},
		// Fevereiro não vaza para março: a comparação anual casa o mês
		// de cobrança exato, sem carry
		{ID: "B3", AccountID: "ACC002", BillingMonth: "2025-02-01", BilledAmount: 999},
	})

	comparison := yearComparison(snapshot, 2025, nil)

	assert.Equal(t, 2025, comparison.Year)
	assert.Len(t, comparison.Months, 12)

	march := comparison.Months[2]
	assert.Equal(t, "2025-03", march.Month)
	assert.Equal(t, 1250.0, march.Billing)
	assert.Equal(t, 8, march.People) // 6 (último registro de ACC001) + 2

	february := comparison.Months[1]
	assert.Equal(t, 999.0, february.Billing)
	assert.Equal(t, 0, february.People)

	assert.Equal(t, 2249.0, comparison.TotalBilling)
	assert.Equal(t, 0.67, comparison.AvgPeople)
}

func TestYearComparison_FiltradaPorConta(t *testing.T) {
	accounts := []*domain.Account{
		{ID: "ACC001", Name: "Conta A"},
		{ID: "ACC002", Name: "Conta B"},
	}

	snapshot := domain.NewSnapshot(nil, accounts, nil, nil, nil, []*domain.BillingRecord{
		{ID: "B1", AccountID: "ACC001", BillingMonth: "2025-03-01", BilledAmount: 1000},
		{ID: "B2", AccountID: "ACC002", BillingMonth: "2025-03-01", BilledAmount: 250},
	})

	comparison := yearComparison(snapshot, 2025, strPtr("ACC002"))

	assert.Equal(t, 250.0, comparison.TotalBilling)
}

func TestAnalyticsSeries(t *testing.T) {
	snapshot := domain.NewSnapshot(nil, nil, []*domain.WeeklyStatus{
		{ID: "W1", AccountID: "ACC001", Week: "2025-01-06", Status: domain.StatusAttention, People: 5},
	}, nil, nil, []*domain.BillingRecord{
		{ID: "B1", AccountID: "ACC001", BillingMonth: "2025-01-01", BilledAmount: 1000},
		// Março herda o valor de fevereiro por um passo
		{ID: "B2", AccountID: "ACC001", BillingMonth: "2025-02-01", BilledAmount: 700},
	})

	points, err := analyticsSeries(snapshot, "ACC001", "Q1-2025")

	assert.NoError(t, err)
	assert.NotEmpty(t, points)

	byWeek := make(map[string]*domain.AnalyticsPoint)
	for _, point := range points {
		byWeek[point.Week] = point
	}

	// Janeiro: people herdado da primeira semana, faturamento do mês
	assert.Equal(t, 5, byWeek["2025-01-27"].People)
	assert.Equal(t, 1000.0, byWeek["2025-01-27"].Billed)

	// Fevereiro zera o people (fronteira de mês) e muda o faturamento
	assert.Equal(t, 0, byWeek["2025-02-03"].People)
	assert.Equal(t, 700.0, byWeek["2025-02-03"].Billed)

	// Março sem registro próprio herda o faturamento de fevereiro
	assert.Equal(t, 700.0, byWeek["2025-03-03"].Billed)

	_, err = analyticsSeries(snapshot, "ACC001", "T1-2025")
	assert.Error(t, err)
}
