package domain

// BillingRecord é o faturamento de uma conta em um mês. A chave
// billing_month é sempre o primeiro dia do mês (YYYY-MM-01); a ausência
// de registro significa "herdar do mês anterior" no rollup de cobrança.
type BillingRecord struct {
	ID           string  `json:"id"`
	AccountID    string  `json:"account_id"`
	BillingMonth string  `json:"billing_month"`
	BilledAmount float64 `json:"billed_amount"`
	Currency     string  `json:"currency"`
	Notes        string  `json:"notes"`
}

// UpsertBillingRequest é o payload de upsert de faturamento mensal
type UpsertBillingRequest struct {
	AccountID    string  `json:"account_id"`
	BillingMonth string  `json:"billing_month"`
	BilledAmount float64 `json:"billed_amount"`
	Currency     string  `json:"currency"`
	Notes        string  `json:"notes"`
}
