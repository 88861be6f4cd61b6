package domain

// SatisfactionScore é a nota de satisfação de uma conta em um trimestre
// de um ano. Anos distintos coexistem de forma independente: o upsert é
// sempre por (account_id, year, quarter) e nunca sobrescreve outro ano.
type SatisfactionScore struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Year      int    `json:"year"`
	Quarter   int    `json:"quarter"`
	Score     *int   `json:"score"`
	Comments  string `json:"comments"`
}

// QuarterScores agrupa as notas dos quatro trimestres de um ano para
// exibição; nil significa trimestre sem nota (excluído das médias)
type QuarterScores struct {
	Q1 *int `json:"Q1"`
	Q2 *int `json:"Q2"`
	Q3 *int `json:"Q3"`
	Q4 *int `json:"Q4"`
}

// QuarterComments agrupa os comentários trimestrais de um ano
type QuarterComments struct {
	Q1 string `json:"Q1"`
	Q2 string `json:"Q2"`
	Q3 string `json:"Q3"`
	Q4 string `json:"Q4"`
}

// UpsertSatisfactionRequest é o payload de upsert de nota trimestral
type UpsertSatisfactionRequest struct {
	AccountID string `json:"account_id"`
	Year      int    `json:"year"`
	Quarter   int    `json:"quarter"`
	Score     int    `json:"score"`
	Comments  string `json:"comments"`
}

// YearlyAverage é a média anual de satisfação de uma conta, calculada
// apenas sobre os trimestres com nota definida
type YearlyAverage struct {
	Year     int            `json:"year"`
	Average  float64        `json:"average"`
	Quarters map[string]int `json:"quarters"`
}
