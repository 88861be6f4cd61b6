package reporting

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/delivery-manager-api/internal/domain"
	"github.com/vfg2006/delivery-manager-api/internal/usecases/tracking"
	"github.com/vfg2006/delivery-manager-api/pkg/period"
)

var ErrAccountNotFound = errors.New("account not found")

// Dashboard é a grade de um trimestre: semanas agrupadas por mês e, por
// conta, o status efetivo de cada semana. O agrupamento por mês sai pronto
// daqui para o cliente nunca derivar os próprios períodos
type Dashboard struct {
	Quarter string              `json:"quarter"`
	Months  []period.MonthWeeks `json:"months"`
	Rows    []*DashboardRow     `json:"rows"`
}

// DashboardRow é a linha de uma conta na grade do trimestre
type DashboardRow struct {
	Account     *domain.Account                    `json:"account"`
	ManagerName string                             `json:"manager_name"`
	Weeks       map[string]*domain.EffectiveStatus `json:"weeks"`
}

// Service implementa a interface Reporter. Todas as agregações carregam um
// Snapshot imutável e delegam para funções puras sobre ele
type Service struct {
	tracker tracking.Tracker
}

// NewService cria uma nova instância do serviço de agregação
func NewService(tracker tracking.Tracker) Reporter {
	return &Service{tracker: tracker}
}

func (s *Service) Dashboard(quarter string, managerID *string) (*Dashboard, error) {
	q, year, err := period.ParseQuarter(quarter)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.tracker.LoadSnapshot()
	if err != nil {
		return nil, err
	}

	months := period.MonthsOfQuarter(q, year)
	resolver := tracking.NewResolver(snapshot)

	dashboard := &Dashboard{
		Quarter: quarter,
		Months:  months,
	}

	for _, account := range filterByManager(snapshot.Accounts, managerID) {
		row := &DashboardRow{
			Account:     account,
			ManagerName: snapshot.ManagerName(account.ManagerID),
			Weeks:       make(map[string]*domain.EffectiveStatus),
		}

		for _, monthWeeks := range months {
			for _, week := range monthWeeks.Weeks {
				row.Weeks[week] = resolver.EffectiveStatus(account.ID, week)
			}
		}

		dashboard.Rows = append(dashboard.Rows, row)
	}

	return dashboard, nil
}

func (s *Service) WeekSummary(week string, managerID *string, status *domain.Status) (*domain.WeekSummary, error) {
	if !period.ValidWeek(week) {
		return nil, fmt.Errorf("semana inválida: %s", week)
	}

	snapshot, err := s.tracker.LoadSnapshot()
	if err != nil {
		return nil, err
	}

	accounts := filterByManager(snapshot.Accounts, managerID)

	// O filtro de status usa o valor efetivo da própria semana, o mesmo
	// que o usuário enxerga na grade
	if status != nil {
		resolver := tracking.NewResolver(snapshot)
		var filtered []*domain.Account
		for _, account := range accounts {
			if resolver.EffectiveStatus(account.ID, week).Status == *status {
				filtered = append(filtered, account)
			}
		}
		accounts = filtered
	}

	return summarizeWeek(snapshot, accounts, week), nil
}

func (s *Service) MonthlyBilling(month string) (float64, error) {
	if _, _, err := period.ParseMonth(month); err != nil {
		return 0, err
	}

	snapshot, err := s.tracker.LoadSnapshot()
	if err != nil {
		return 0, err
	}

	return monthlyBillingTotal(snapshot, snapshot.Accounts, month), nil
}

func (s *Service) ManagerSummary(year int, month time.Month) ([]*domain.ManagerRollup, error) {
	snapshot, err := s.tracker.LoadSnapshot()
	if err != nil {
		return nil, err
	}

	return managerRollups(snapshot, year, month), nil
}

func (s *Service) YearComparison(years []int, accountID *string) ([]*domain.YearComparison, error) {
	snapshot, err := s.tracker.LoadSnapshot()
	if err != nil {
		return nil, err
	}

	var comparisons []*domain.YearComparison
	for _, year := range years {
		comparisons = append(comparisons, yearComparison(snapshot, year, accountID))
	}

	return comparisons, nil
}

func (s *Service) AccountAnalytics(accountID, quarter string) ([]*domain.AnalyticsPoint, error) {
	snapshot, err := s.tracker.LoadSnapshot()
	if err != nil {
		return nil, err
	}

	if !hasAccount(snapshot, accountID) {
		return nil, ErrAccountNotFound
	}

	return analyticsSeries(snapshot, accountID, quarter)
}

func (s *Service) SatisfactionOverview(accountID string, year int) (*domain.YearlyAverage, error) {
	snapshot, err := s.tracker.LoadSnapshot()
	if err != nil {
		return nil, err
	}

	if !hasAccount(snapshot, accountID) {
		return nil, ErrAccountNotFound
	}

	return yearlyAverageFor(snapshot, accountID, year), nil
}

func hasAccount(snapshot *domain.Snapshot, accountID string) bool {
	for _, account := range snapshot.Accounts {
		if account.ID == accountID {
			return true
		}
	}
	return false
}

// filterByManager restringe as contas a um gerente; o sentinela
// "unassigned" seleciona as contas sem gerente
func filterByManager(accounts []*domain.Account, managerID *string) []*domain.Account {
	if managerID == nil {
		return accounts
	}

	var filtered []*domain.Account
	for _, account := range accounts {
		if *managerID == domain.UnassignedManagerID {
			if account.ManagerID == nil {
				filtered = append(filtered, account)
			}
			continue
		}
		if account.ManagerID != nil && *account.ManagerID == *managerID {
			filtered = append(filtered, account)
		}
	}

	return filtered
}
