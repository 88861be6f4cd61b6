package domain

// Status é o estado de saúde semanal de uma conta
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusAttention Status = "attention"
	StatusCritical  Status = "critical"
)

// Valid verifica se o status é um dos valores conhecidos
func (s Status) Valid() bool {
	switch s {
	case StatusHealthy, StatusAttention, StatusCritical:
		return true
	}
	return false
}

// Cycle avança o status na ordem healthy → attention → critical → healthy,
// usada pela ação de um clique no grid
func (s Status) Cycle() Status {
	switch s {
	case StatusHealthy:
		return StatusAttention
	case StatusAttention:
		return StatusCritical
	case StatusCritical:
		return StatusHealthy
	}
	return StatusHealthy
}

// WeeklyStatus é o registro explícito de uma conta em uma semana.
// Existe no máximo um registro por (account_id, week); a ausência de
// registro significa "herdar do passado", nunca "zero".
type WeeklyStatus struct {
	ID                string `json:"id"`
	AccountID         string `json:"account_id"`
	Week              string `json:"week"`
	Status            Status `json:"status"`
	People            int    `json:"people"`
	Notes             string `json:"notes"`
	CreatedByUserID   *int   `json:"created_by_user_id"`
	CreatedByUserName string `json:"created_by_user_name"`
}

// NonDefault informa se o registro carrega conteúdo diferente do estado
// limpo de início de mês. Apenas registros non-default servem de doador
// no carry-forward.
func (w *WeeklyStatus) NonDefault() bool {
	return w.People > 0 || w.Status != StatusHealthy
}

// EffectiveStatus é o valor que uma semana passa a ter depois do
// carry-forward, em oposição ao que está explicitamente armazenado
type EffectiveStatus struct {
	Status            Status  `json:"status"`
	People            int     `json:"people"`
	Notes             string  `json:"notes"`
	BilledAmount      float64 `json:"billed_amount"`
	Explicit          bool    `json:"explicit"`
	CreatedByUserID   *int    `json:"created_by_user_id,omitempty"`
	CreatedByUserName string  `json:"created_by_user_name,omitempty"`
}

// UpdateWeekStatusRequest é o payload de edição de uma semana
type UpdateWeekStatusRequest struct {
	AccountID string `json:"account_id"`
	Week      string `json:"week"`
	Status    Status `json:"status"`
	People    int    `json:"people"`
	Notes     string `json:"notes"`
}
