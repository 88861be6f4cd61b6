package domain

import "time"

// Priority é a prioridade de um item de ação
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid verifica se a prioridade é um dos valores conhecidos
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ActionItem é uma pendência vinculada a uma conta. Itens de ação nunca
// sofrem carry-forward: valem apenas para a data de vencimento registrada.
type ActionItem struct {
	ID                  string     `json:"id"`
	AccountID           string     `json:"account_id"`
	ManagerID           *string    `json:"manager_id"`
	Description         string     `json:"description"`
	DueDate             string     `json:"due_date"`
	Priority            Priority   `json:"priority"`
	Completed           bool       `json:"completed"`
	CreatedDate         string     `json:"created_date"`
	CreatedByUserID     *int       `json:"created_by_user_id"`
	CreatedByUserName   string     `json:"created_by_user_name"`
	CompletedByUserID   *int       `json:"completed_by_user_id"`
	CompletedByUserName *string    `json:"completed_by_user_name"`
	CompletedAt         *time.Time `json:"completed_at"`
}

// NewActionItemRequest é o payload de criação de item de ação
type NewActionItemRequest struct {
	AccountID   string   `json:"account_id"`
	ManagerID   *string  `json:"manager_id"`
	Description string   `json:"description"`
	DueDate     string   `json:"due_date"`
	Priority    Priority `json:"priority"`
}
