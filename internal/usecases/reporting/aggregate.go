package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/delivery-manager-api/internal/domain"
	"github.com/vfg2006/delivery-manager-api/internal/usecases/tracking"
	"github.com/vfg2006/delivery-manager-api/pkg/period"
	"github.com/vfg2006/delivery-manager-api/pkg/utils"
)

// summarizeWeek calcula as estatísticas do cabeçalho para a semana
// selecionada sobre o conjunto de contas já filtrado. As contagens usam o
// status efetivo (pós carry-forward); as pendências contam itens não
// concluídos com vencimento dentro da própria semana
func summarizeWeek(snapshot *domain.Snapshot, accounts []*domain.Account, week string) *domain.WeekSummary {
	resolver := tracking.NewResolver(snapshot)

	summary := &domain.WeekSummary{
		Week:  week,
		Total: len(accounts),
	}

	weekEnd := ""
	if end, err := period.WeekEnd(week); err == nil {
		weekEnd = end.Format(period.DateLayout)
	}

	for _, account := range accounts {
		effective := resolver.EffectiveStatus(account.ID, week)

		switch effective.Status {
		case domain.StatusHealthy:
			summary.Healthy++
		case domain.StatusAttention:
			summary.Attention++
		case domain.StatusCritical:
			summary.Critical++
		}

		summary.TotalPeople += effective.People

		for _, item := range snapshot.ActionItemsFor(account.ID) {
			if item.Completed {
				continue
			}
			// Largura fixa YYYY-MM-DD permite comparar datas como texto
			if item.DueDate >= week && weekEnd != "" && item.DueDate <= weekEnd {
				summary.PendingActions++
			}
		}
	}

	return summary
}

// monthlyBillingTotal soma o faturamento do mês sobre as contas. Conta sem
// registro no mês herda o registro do mês imediatamente anterior (um único
// passo, sem encadear mais para trás); sem nenhum dos dois, contribui zero
func monthlyBillingTotal(snapshot *domain.Snapshot, accounts []*domain.Account, month string) float64 {
	var total float64
	for _, account := range accounts {
		if record := billingWithCarry(snapshot, account.ID, month); record != nil {
			total += record.BilledAmount
		}
	}
	return total
}

// billingWithCarry resolve o registro de cobrança de um (conta, mês) com o
// carry de um único passo para o mês anterior
func billingWithCarry(snapshot *domain.Snapshot, accountID, month string) *domain.BillingRecord {
	if record := snapshot.BillingFor(accountID, period.BillingMonthOf(month)); record != nil {
		return record
	}

	prev, err := period.PrevMonth(month)
	if err != nil {
		return nil
	}

	return snapshot.BillingFor(accountID, period.BillingMonthOf(prev))
}

// yearlySatisfactionAverage calcula a média anual de satisfação de uma
// conta apenas sobre os trimestres com nota definida. ok é false quando a
// conta não tem nenhuma nota no ano
func yearlySatisfactionAverage(snapshot *domain.Snapshot, accountID string, year int) (float64, bool) {
	var sum, count int
	for _, score := range snapshot.ScoresForYear(accountID, year) {
		if score.Score == nil {
			continue
		}
		sum += *score.Score
		count++
	}

	if count == 0 {
		return 0, false
	}

	return utils.RoundWithTwoDecimalPlace(float64(sum) / float64(count)), true
}

// yearlyAverageFor monta a visão anual de satisfação de uma conta
func yearlyAverageFor(snapshot *domain.Snapshot, accountID string, year int) *domain.YearlyAverage {
	average := &domain.YearlyAverage{
		Year:     year,
		Quarters: make(map[string]int),
	}

	for _, score := range snapshot.ScoresForYear(accountID, year) {
		if score.Score == nil {
			continue
		}
		average.Quarters[period.FormatQuarter(score.Quarter, year)] = *score.Score
	}

	if avg, ok := yearlySatisfactionAverage(snapshot, accountID, year); ok {
		average.Average = avg
	}

	return average
}

// latestStatusInMonth devolve o último registro explícito da conta cujo
// Monday cai dentro do (ano, mês), ou nil. Esta é a regra do registro mais
// recente usada pelos resumos por gerente e pela comparação anual; ela é
// deliberadamente distinta do carry-forward e as duas não podem ser
// colapsadas uma na outra
func latestStatusInMonth(snapshot *domain.Snapshot, accountID string, year int, month time.Month) *domain.WeeklyStatus {
	target := period.FormatMonth(year, month)

	var latest *domain.WeeklyStatus
	for _, status := range snapshot.Statuses {
		if status.AccountID != accountID || period.MonthOfWeek(status.Week) != target {
			continue
		}
		if latest == nil || status.Week > latest.Week {
			latest = status
		}
	}

	return latest
}

// managerRollups agrupa as contas por gerente para o (ano, mês) informado.
// Grupos sem contas são descartados e o resultado sai ordenado pelo nome
// do gerente, com o balde "Unassigned" para contas sem gerente
func managerRollups(snapshot *domain.Snapshot, year int, month time.Month) []*domain.ManagerRollup {
	groups := make(map[string][]*domain.Account)
	for _, account := range snapshot.Accounts {
		id := domain.UnassignedManagerID
		if account.ManagerID != nil && snapshot.ManagerByID(*account.ManagerID) != nil {
			id = *account.ManagerID
		}
		groups[id] = append(groups[id], account)
	}

	var rollups []*domain.ManagerRollup
	for managerID, accounts := range groups {
		manager := snapshot.ManagerByID(managerID)
		if manager == nil {
			manager = &domain.Manager{ID: domain.UnassignedManagerID, Name: domain.UnassignedManagerName}
		}

		rollup := &domain.ManagerRollup{
			Manager:      manager,
			AccountCount: len(accounts),
		}

		var satisfactionSum float64
		var satisfactionCount int

		for _, account := range accounts {
			entry := &domain.RollupAccount{
				Account:      account,
				LatestStatus: latestStatusInMonth(snapshot, account.ID, year, month),
			}

			if entry.LatestStatus != nil {
				rollup.TotalPeople += entry.LatestStatus.People
				switch entry.LatestStatus.Status {
				case domain.StatusHealthy:
					rollup.HealthyCount++
				case domain.StatusAttention:
					rollup.AttentionCount++
				case domain.StatusCritical:
					rollup.CriticalCount++
				}
			}

			// Contas sem nenhuma nota no ano ficam fora do denominador
			// da média do grupo, não entram como zero
			if avg, ok := yearlySatisfactionAverage(snapshot, account.ID, year); ok {
				entry.SatisfactionAvg = &avg
				satisfactionSum += avg
				satisfactionCount++
			}

			rollup.Accounts = append(rollup.Accounts, entry)
		}

		if satisfactionCount > 0 {
			rollup.AverageSatisfaction = utils.RoundWithTwoDecimalPlace(satisfactionSum / float64(satisfactionCount))
		}

		rollups = append(rollups, rollup)
	}

	sort.Slice(rollups, func(i, j int) bool {
		return rollups[i].Manager.Name < rollups[j].Manager.Name
	})

	return rollups
}

// yearComparison monta a série Jan-Dez de um ano: faturamento somado por
// correspondência exata do mês de cobrança (sem carry) e pessoas pela
// regra do registro mais recente de cada conta no mês
func yearComparison(snapshot *domain.Snapshot, year int, accountID *string) *domain.YearComparison {
	accounts := snapshot.Accounts
	if accountID != nil {
		accounts = nil
		for _, account := range snapshot.Accounts {
			if account.ID == *accountID {
				accounts = append(accounts, account)
			}
		}
	}

	comparison := &domain.YearComparison{Year: year}

	var peopleSum int
	for month := time.January; month <= time.December; month++ {
		entry := &domain.YearComparisonMonth{
			Month: period.FormatMonth(year, month),
		}

		for _, account := range accounts {
			if record := snapshot.BillingFor(account.ID, period.BillingMonthOf(entry.Month)); record != nil {
				entry.Billing += record.BilledAmount
			}
			if latest := latestStatusInMonth(snapshot, account.ID, year, month); latest != nil {
				entry.People += latest.People
			}
		}

		comparison.TotalBilling += entry.Billing
		peopleSum += entry.People
		comparison.Months = append(comparison.Months, entry)
	}

	comparison.AvgPeople = utils.RoundWithTwoDecimalPlace(float64(peopleSum) / 12)

	return comparison
}

// analyticsSeries gera a série semanal de pessoas e faturamento de uma
// conta ao longo de um trimestre. Pessoas seguem o carry-forward limitado
// ao mês; o faturamento repete o valor mensal resolvido em cada semana do
// mês correspondente
func analyticsSeries(snapshot *domain.Snapshot, accountID, quarter string) ([]*domain.AnalyticsPoint, error) {
	q, year, err := period.ParseQuarter(quarter)
	if err != nil {
		return nil, err
	}

	resolver := tracking.NewResolver(snapshot)

	var points []*domain.AnalyticsPoint
	for _, monthWeeks := range period.MonthsOfQuarter(q, year) {
		var billed float64
		if record := billingWithCarry(snapshot, accountID, monthWeeks.Month); record != nil {
			billed = record.BilledAmount
		}

		for _, week := range monthWeeks.Weeks {
			points = append(points, &domain.AnalyticsPoint{
				Week:   week,
				People: resolver.EffectiveStatus(accountID, week).People,
				Billed: billed,
			})
		}
	}

	return points, nil
}
