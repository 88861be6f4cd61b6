package tracking

import (
	"fmt"

	"github.com/vfg2006/delivery-manager-api/internal/domain"
	"github.com/vfg2006/delivery-manager-api/pkg/period"
	"github.com/vfg2006/delivery-manager-api/pkg/utils"
)

// ApplyStatusEdit grava a edição na semana alvo e propaga para todas as
// semanas seguintes do mesmo mês calendário, em ordem cronológica, uma
// escrita por semana. A política de propagação é assimétrica por campo:
//   - status: sobrescrito em todas as semanas seguintes, mesmo onde já
//     havia registro explícito diferente
//   - people: cada semana seguinte preserva o próprio valor explícito se
//     existir; sem registro, herda o valor da edição
//   - notes: nunca propagam; cada semana mantém as próprias
//
// Uma falha no meio da propagação interrompe e deixa aplicadas as escritas
// já feitas.
func (s *Service) ApplyStatusEdit(req *domain.UpdateWeekStatusRequest, by domain.Attribution) error {
	if req == nil || req.AccountID == "" {
		return ErrAccountIDRequired
	}

	if !period.ValidWeek(req.Week) {
		return ErrInvalidWeek
	}

	if !req.Status.Valid() {
		return ErrInvalidStatus
	}

	if req.People < 0 {
		return ErrNegativePeople
	}

	weeks := cascadeWeeks(req.Week)

	// Lê o estado pré-cascade de todas as semanas antes da primeira escrita,
	// para que a decisão de preservar people/notes não enxergue as próprias
	// escritas da propagação
	existing := make(map[string]*domain.WeeklyStatus, len(weeks))
	for _, week := range weeks {
		record, err := s.statusRepository.GetStatus(req.AccountID, week)
		if err != nil {
			return fmt.Errorf("erro ao ler o registro da semana %s: %w", week, err)
		}
		if record != nil {
			existing[week] = record
		}
	}

	for _, week := range weeks {
		record := existing[week]

		next := &domain.WeeklyStatus{
			AccountID: req.AccountID,
			Week:      week,
			Status:    req.Status,
		}

		switch {
		case week == req.Week:
			next.People = req.People
			next.Notes = req.Notes
		case record != nil:
			next.People = record.People
			next.Notes = record.Notes
		default:
			next.People = req.People
		}

		if record != nil {
			next.ID = record.ID
			next.CreatedByUserID = record.CreatedByUserID
			next.CreatedByUserName = record.CreatedByUserName
		} else {
			id, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("%w: %v", ErrGenerateID, err)
			}
			next.ID = id
			next.CreatedByUserID = by.UserID
			next.CreatedByUserName = by.UserName
		}

		if err := s.statusRepository.UpsertStatus(next); err != nil {
			return fmt.Errorf("erro ao gravar a semana %s: %w", week, err)
		}
	}

	return nil
}

// ToggleWeekStatus avança o status efetivo da semana um passo no ciclo
// healthy → attention → critical → healthy e aplica a mesma propagação da
// edição completa. People segue o valor efetivo atual e as notas próprias
// da semana são mantidas.
func (s *Service) ToggleWeekStatus(accountID, week string, by domain.Attribution) (*domain.WeeklyStatus, error) {
	if accountID == "" {
		return nil, ErrAccountIDRequired
	}

	if !period.ValidWeek(week) {
		return nil, ErrInvalidWeek
	}

	snapshot, err := s.LoadSnapshot()
	if err != nil {
		return nil, err
	}

	current := NewResolver(snapshot).EffectiveStatus(accountID, week)

	req := &domain.UpdateWeekStatusRequest{
		AccountID: accountID,
		Week:      week,
		Status:    current.Status.Cycle(),
		People:    current.People,
		Notes:     current.Notes,
	}

	if err := s.ApplyStatusEdit(req, by); err != nil {
		return nil, err
	}

	return s.statusRepository.GetStatus(accountID, week)
}

// DeleteWeekStatus remove apenas o registro explícito da semana. A remoção
// não desfaz propagações já aplicadas às semanas seguintes; a semana volta
// a ser resolvida por carry-forward.
func (s *Service) DeleteWeekStatus(accountID, week string) error {
	if accountID == "" {
		return ErrAccountIDRequired
	}

	if !period.ValidWeek(week) {
		return ErrInvalidWeek
	}

	return s.statusRepository.DeleteStatus(accountID, week)
}

// cascadeWeeks retorna a semana alvo e todas as semanas seguintes do mesmo
// mês calendário, em ordem cronológica
func cascadeWeeks(week string) []string {
	year, month, err := period.ParseMonth(period.MonthOfWeek(week))
	if err != nil {
		return []string{week}
	}

	var weeks []string
	for _, monthWeek := range period.WeeksOfMonth(year, month) {
		if monthWeek >= week {
			weeks = append(weeks, monthWeek)
		}
	}

	if len(weeks) == 0 {
		return []string{week}
	}

	return weeks
}
