package tracking

import (
	"github.com/vfg2006/delivery-manager-api/internal/domain"
)

// Tracker define a interface do acompanhamento semanal de contas
type Tracker interface {
	// LoadSnapshot carrega uma cópia imutável do conjunto de dados
	LoadSnapshot() (*domain.Snapshot, error)

	// ApplyStatusEdit grava a edição de uma semana e propaga para as
	// semanas seguintes do mesmo mês
	ApplyStatusEdit(req *domain.UpdateWeekStatusRequest, by domain.Attribution) error

	// ToggleWeekStatus avança o status efetivo da semana um passo no ciclo
	ToggleWeekStatus(accountID, week string, by domain.Attribution) (*domain.WeeklyStatus, error)

	// DeleteWeekStatus remove o registro explícito de uma semana
	DeleteWeekStatus(accountID, week string) error
}
