package domain

// WeekSummary são as estatísticas do cabeçalho do dashboard para a
// semana selecionada, calculadas sobre status efetivos (pós carry-forward)
type WeekSummary struct {
	Week           string `json:"week"`
	Total          int    `json:"total"`
	Healthy        int    `json:"healthy"`
	Attention      int    `json:"attention"`
	Critical       int    `json:"critical"`
	TotalPeople    int    `json:"total_people"`
	PendingActions int    `json:"pending_actions"`
}

// ManagerRollup é o resumo de um gerente em um (ano, mês): pessoas e
// contagens de status vêm do último registro explícito do mês (regra do
// registro mais recente, sem carry-forward)
type ManagerRollup struct {
	Manager             *Manager         `json:"manager"`
	AccountCount        int              `json:"account_count"`
	TotalPeople         int              `json:"total_people"`
	HealthyCount        int              `json:"healthy_count"`
	AttentionCount      int              `json:"attention_count"`
	CriticalCount       int              `json:"critical_count"`
	AverageSatisfaction float64          `json:"average_satisfaction"`
	Accounts            []*RollupAccount `json:"accounts"`
}

// RollupAccount é uma conta dentro do resumo de um gerente. A média de
// satisfação é nil para contas sem nenhuma nota no ano
type RollupAccount struct {
	Account         *Account      `json:"account"`
	LatestStatus    *WeeklyStatus `json:"latest_status"`
	SatisfactionAvg *float64      `json:"satisfaction_avg"`
}

// YearComparisonMonth é um mês (Jan-Dez fixo) na comparação ano a ano
type YearComparisonMonth struct {
	Month   string  `json:"month"`
	Billing float64 `json:"billing"`
	People  int     `json:"people"`
}

// YearComparison compara faturamento e pessoas de um ano, mês a mês
type YearComparison struct {
	Year         int                    `json:"year"`
	Months       []*YearComparisonMonth `json:"months"`
	TotalBilling float64                `json:"total_billing"`
	AvgPeople    float64                `json:"avg_people"`
}

// AnalyticsPoint é um ponto da série semanal de pessoas e faturamento
type AnalyticsPoint struct {
	Week   string  `json:"week"`
	People int     `json:"people"`
	Billed float64 `json:"billed"`
}
