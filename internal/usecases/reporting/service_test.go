package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/delivery-manager-api/internal/domain"
	"github.com/vfg2006/delivery-manager-api/internal/usecases/tracking/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	managers := []*domain.Manager{{ID: "MGR001", Name: "Carla Souza"}}
	accounts := []*domain.Account{
		{ID: "ACC001", Name: "Conta A", ManagerID: strPtr("MGR001")},
		{ID: "ACC002", Name: "Conta B"},
	}
	statuses := []*domain.WeeklyStatus{
		{ID: "W1", AccountID: "ACC001", Week: "2025-01-06", Status: domain.StatusAttention, People: 5},
	}

	mockTracker := mocks.NewMockTracker(ctrl)
	mockTracker.EXPECT().
		LoadSnapshot().
		Return(domain.NewSnapshot(managers, accounts, statuses, nil, nil, nil), nil)

	service := &Service{tracker: mockTracker}

	dashboard, err := service.Dashboard("Q1-2025", nil)

	assert.NoError(t, err)
	assert.Equal(t, "Q1-2025", dashboard.Quarter)

	// Janeiro, fevereiro e março agrupados, cada um com as próprias semanas
	assert.Len(t, dashboard.Months, 3)
	assert.Equal(t, "2025-01", dashboard.Months[0].Month)
	assert.Equal(t, []string{"2025-01-06", "2025-01-13", "2025-01-20", "2025-01-27"}, dashboard.Months[0].Weeks)

	assert.Len(t, dashboard.Rows, 2)
	assert.Equal(t, "Carla Souza", dashboard.Rows[0].ManagerName)
	assert.Equal(t, domain.UnassignedManagerName, dashboard.Rows[1].ManagerName)

	// A linha carrega o status efetivo de cada semana do trimestre
	row := dashboard.Rows[0]
	assert.True(t, row.Weeks["2025-01-06"].Explicit)
	assert.Equal(t, domain.StatusAttention, row.Weeks["2025-01-27"].Status)
	assert.Equal(t, 5, row.Weeks["2025-01-27"].People)
	assert.Equal(t, domain.StatusHealthy, row.Weeks["2025-02-03"].Status)
}

func TestService_Dashboard_QuarterInvalido(t *testing.T) {
	service := &Service{}

	_, err := service.Dashboard("2025-Q1", nil)

	assert.Error(t, err)
}

func TestService_WeekSummary_ComFiltros(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := []*domain.Account{
		{ID: "ACC001", Name: "Conta A", ManagerID: strPtr("MGR001")},
		{ID: "ACC002", Name: "Conta B", ManagerID: strPtr("MGR001")},
		{ID: "ACC003", Name: "Conta C"},
	}
	statuses := []*domain.WeeklyStatus{
		{ID: "W1", AccountID: "ACC001", Week: "2025-03-17", Status: domain.StatusCritical, People: 4},
		{ID: "W2", AccountID: "ACC002", Week: "2025-03-17", Status: domain.StatusHealthy, People: 2},
		{ID: "W3", AccountID: "ACC003", Week: "2025-03-17", Status: domain.StatusCritical, People: 9},
	}

	mockTracker := mocks.NewMockTracker(ctrl)
	mockTracker.EXPECT().
		LoadSnapshot().
		Return(domain.NewSnapshot(nil, accounts, statuses, nil, nil, nil), nil)

	service := &Service{tracker: mockTracker}

	critical := domain.StatusCritical
	summary, err := service.WeekSummary("2025-03-17", strPtr("MGR001"), &critical)

	assert.NoError(t, err)

	// Só ACC001 é do gerente e está crítica; ACC003 é crítica mas de
	// outro dono e fica fora
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Critical)
	assert.Equal(t, 4, summary.TotalPeople)
}

func TestService_WeekSummary_SemanaInvalida(t *testing.T) {
	service := &Service{}

	_, err := service.WeekSummary("2025-03-18", nil, nil)

	assert.Error(t, err)
}

func TestService_AccountAnalytics_ContaInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracker := mocks.NewMockTracker(ctrl)
	mockTracker.EXPECT().
		LoadSnapshot().
		Return(domain.NewSnapshot(nil, nil, nil, nil, nil, nil), nil)

	service := &Service{tracker: mockTracker}

	_, err := service.AccountAnalytics("ACC404", "Q1-2025")

	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestFilterByManager(t *testing.T) {
	accounts := []*domain.Account{
		{ID: "ACC001", ManagerID: strPtr("MGR001")},
		{ID: "ACC002", ManagerID: strPtr("MGR002")},
		{ID: "ACC003"},
	}

	tests := []struct {
		name      string
		managerID *string
		expected  []string
	}{
		{
			name:      "Sem filtro devolve todas as contas",
			managerID: nil,
			expected:  []string{"ACC001", "ACC002", "ACC003"},
		},
		{
			name:      "Filtro por gerente devolve só as contas dele",
			managerID: strPtr("MGR001"),
			expected:  []string{"ACC001"},
		},
		{
			name:      "Sentinela unassigned devolve as contas sem gerente",
			managerID: strPtr(domain.UnassignedManagerID),
			expected:  []string{"ACC003"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, account := range filterByManager(accounts, tt.managerID) {
				ids = append(ids, account.ID)
			}

			assert.Equal(t, tt.expected, ids)
		})
	}
}
