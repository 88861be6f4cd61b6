package domain

import "time"

// Account representa uma conta de cliente acompanhada pelo dashboard
type Account struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	ManagerID       *string   `json:"manager_id"`
	People          int       `json:"people"`
	PrimaryLanguage *string   `json:"primary_language"`
	LanguageStack   []string  `json:"language_stack"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewAccountRequest é o payload de criação de conta
type NewAccountRequest struct {
	Name            string   `json:"name"`
	ManagerID       *string  `json:"manager_id"`
	People          int      `json:"people"`
	PrimaryLanguage *string  `json:"primary_language"`
	LanguageStack   []string `json:"language_stack"`
}

// UpdateAccountRequest é o payload de edição de conta.
// A edição substitui integralmente os campos mutáveis informados. O
// gerente é sempre substituído: manager_id nulo desatribui a conta.
type UpdateAccountRequest struct {
	ID              string    `json:"id"`
	Name            *string   `json:"name"`
	ManagerID       *string   `json:"manager_id"`
	People          *int      `json:"people"`
	PrimaryLanguage *string   `json:"primary_language"`
	LanguageStack   *[]string `json:"language_stack"`
}

// EnrichedAccount é a conta acrescida dos dados derivados para exibição:
// nome do gerente (ou o sentinela "Unassigned") e as notas de satisfação
// do ano em exibição
type EnrichedAccount struct {
	Account
	ManagerName       string          `json:"manager_name"`
	DisplayYear       int             `json:"display_year"`
	SatisfactionScore QuarterScores   `json:"satisfaction_score"`
	QuarterlyComments QuarterComments `json:"quarterly_comments"`
	ActionItems       []*ActionItem   `json:"action_items"`
}
