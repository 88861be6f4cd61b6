package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/delivery-manager-api/internal/domain"
)

func snapshotWithStatuses(statuses []*domain.WeeklyStatus) *domain.Snapshot {
	return domain.NewSnapshot(nil, nil, statuses, nil, nil, nil)
}

func TestResolver_EffectiveStatus(t *testing.T) {
	userID := 7

	tests := []struct {
		name     string
		statuses []*domain.WeeklyStatus
		week     string
		expected *domain.EffectiveStatus
	}{
		{
			name: "Registro explícito deve ser devolvido ao pé da letra",
			statuses: []*domain.WeeklyStatus{
				{
					ID:                "W1",
					AccountID:         "ACC001",
					Week:              "2025-03-10",
					Status:            domain.StatusAttention,
					People:            5,
					Notes:             "cliente pediu reunião extra",
					CreatedByUserID:   &userID,
					CreatedByUserName: "Ana Lima",
				},
			},
			week: "2025-03-10",
			expected: &domain.EffectiveStatus{
				Status:            domain.StatusAttention,
				People:            5,
				Notes:             "cliente pediu reunião extra",
				Explicit:          true,
				CreatedByUserID:   &userID,
				CreatedByUserName: "Ana Lima",
			},
		},
		{
			name: "Semana sem registro herda status e people do doador, nunca as notas",
			statuses: []*domain.WeeklyStatus{
				{ID: "W1", AccountID: "ACC001", Week: "2025-03-03", Status: domain.StatusAttention, People: 5, Notes: "nota do início do mês"},
			},
			week: "2025-03-17",
			expected: &domain.EffectiveStatus{
				Status: domain.StatusAttention,
				People: 5,
			},
		},
		{
			name: "Registro default não serve de doador; a varredura continua para trás",
			statuses: []*domain.WeeklyStatus{
				{ID: "W1", AccountID: "ACC001", Week: "2025-03-03", Status: domain.StatusCritical, People: 2},
				{ID: "W2", AccountID: "ACC001", Week: "2025-03-10", Status: domain.StatusHealthy, People: 0},
			},
			week: "2025-03-17",
			expected: &domain.EffectiveStatus{
				Status: domain.StatusCritical,
				People: 2,
			},
		},
		{
			name: "Cruzar a fronteira do mês zera o estado mesmo com doador na semana anterior",
			statuses: []*domain.WeeklyStatus{
				{ID: "W1", AccountID: "ACC001", Week: "2025-03-31", Status: domain.StatusCritical, People: 4},
			},
			week: "2025-04-07",
			expected: &domain.EffectiveStatus{
				Status: domain.StatusHealthy,
			},
		},
		{
			name:     "Sem registro e sem doador o valor é o estado limpo",
			statuses: nil,
			week:     "2025-03-24",
			expected: &domain.EffectiveStatus{
				Status: domain.StatusHealthy,
			},
		},
		{
			name: "Registros de outra conta não contaminam a resolução",
			statuses: []*domain.WeeklyStatus{
				{ID: "W1", AccountID: "ACC002", Week: "2025-03-03", Status: domain.StatusCritical, People: 9},
			},
			week: "2025-03-17",
			expected: &domain.EffectiveStatus{
				Status: domain.StatusHealthy,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(snapshotWithStatuses(tt.statuses))

			result := resolver.EffectiveStatus("ACC001", tt.week)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResolver_EffectiveStatus_CarryForwardParaTodasAsSemanasDoMes(t *testing.T) {
	// Um único registro na primeira semana deve valer para o mês inteiro
	resolver := NewResolver(snapshotWithStatuses([]*domain.WeeklyStatus{
		{ID: "W1", AccountID: "ACC001", Week: "2025-03-03", Status: domain.StatusAttention, People: 6, Notes: "kickoff"},
	}))

	for _, week := range []string{"2025-03-10", "2025-03-17", "2025-03-24", "2025-03-31"} {
		result := resolver.EffectiveStatus("ACC001", week)

		assert.Equal(t, domain.StatusAttention, result.Status, week)
		assert.Equal(t, 6, result.People, week)
		assert.Empty(t, result.Notes, week)
		assert.False(t, result.Explicit, week)
	}
}

func TestResolver_EffectiveStatus_Memoizacao(t *testing.T) {
	resolver := NewResolver(snapshotWithStatuses([]*domain.WeeklyStatus{
		{ID: "W1", AccountID: "ACC001", Week: "2025-03-03", Status: domain.StatusCritical, People: 3},
	}))

	first := resolver.EffectiveStatus("ACC001", "2025-03-17")
	second := resolver.EffectiveStatus("ACC001", "2025-03-17")

	// O memo devolve exatamente o mesmo resultado dentro de um passo
	assert.Same(t, first, second)
}
