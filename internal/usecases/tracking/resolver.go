package tracking

import (
	"github.com/vfg2006/delivery-manager-api/internal/domain"
	"github.com/vfg2006/delivery-manager-api/pkg/period"
)

// Resolver calcula o valor efetivo de cada (conta, semana) aplicando o
// carry-forward sobre um Snapshot imutável. O memo vive apenas durante um
// passo de resolução; um Snapshot novo exige um Resolver novo.
type Resolver struct {
	snapshot *domain.Snapshot
	memo     map[string]*domain.EffectiveStatus
}

// NewResolver cria um resolvedor sobre o snapshot informado
func NewResolver(snapshot *domain.Snapshot) *Resolver {
	return &Resolver{
		snapshot: snapshot,
		memo:     make(map[string]*domain.EffectiveStatus),
	}
}

// EffectiveStatus retorna o valor que a semana passa a ter depois do
// carry-forward. Registro explícito é devolvido ao pé da letra; na ausência,
// a semana herda status e people do doador mais próximo dentro do mesmo mês
// calendário. Sem doador, o valor é o estado limpo de início de mês.
func (r *Resolver) EffectiveStatus(accountID, week string) *domain.EffectiveStatus {
	key := accountID + ":" + week
	if cached, ok := r.memo[key]; ok {
		return cached
	}

	effective := r.resolve(accountID, week)
	r.memo[key] = effective

	return effective
}

func (r *Resolver) resolve(accountID, week string) *domain.EffectiveStatus {
	if record := r.snapshot.StatusFor(accountID, week); record != nil {
		return &domain.EffectiveStatus{
			Status:            record.Status,
			People:            record.People,
			Notes:             record.Notes,
			Explicit:          true,
			CreatedByUserID:   record.CreatedByUserID,
			CreatedByUserName: record.CreatedByUserName,
		}
	}

	// Varre para trás apenas semanas do mesmo mês calendário; cruzar a
	// fronteira do mês zera o estado
	for _, donorWeek := range priorWeeksInMonth(week) {
		record := r.snapshot.StatusFor(accountID, donorWeek)
		if record == nil || !record.NonDefault() {
			continue
		}

		// O doador empresta status e people; notas nunca são herdadas
		return &domain.EffectiveStatus{
			Status: record.Status,
			People: record.People,
		}
	}

	return &domain.EffectiveStatus{Status: domain.StatusHealthy}
}

// priorWeeksInMonth lista as semanas anteriores à alvo dentro do mesmo mês,
// da mais próxima para a mais distante
func priorWeeksInMonth(week string) []string {
	year, month, err := period.ParseMonth(period.MonthOfWeek(week))
	if err != nil {
		return nil
	}

	var prior []string
	for _, monthWeek := range period.WeeksOfMonth(year, month) {
		if monthWeek >= week {
			break
		}
		prior = append(prior, monthWeek)
	}

	for i, j := 0, len(prior)-1; i < j; i, j = i+1, j-1 {
		prior[i], prior[j] = prior[j], prior[i]
	}

	return prior
}
