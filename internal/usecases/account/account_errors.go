package account

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de contas
var (
	// Erros de validação
	ErrAccountIDRequired   = errors.New("account ID is required")
	ErrAccountNameRequired = errors.New("account name is required")
	ErrAccountNotFound     = errors.New("account not found")
	ErrManagerNotFound     = errors.New("manager not found")
	ErrActionItemNotFound  = errors.New("action item not found")
	ErrInvalidPriority     = errors.New("invalid priority value")
	ErrInvalidQuarter      = errors.New("quarter must be between 1 and 4")
	ErrInvalidScore        = errors.New("score must be between 1 and 100")
	ErrInvalidBillingMonth = errors.New("billing month must be the first day of a month")
	ErrNegativeAmount      = errors.New("billed amount cannot be negative")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrFetchAccounts     = errors.New("error fetching accounts from database")

	// Erros de geração de identificadores
	ErrGenerateID = errors.New("error generating record ID")
)

// AccountError é um erro com contexto adicional para contas
type AccountError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // ID da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError cria um novo AccountError
func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAccountErrorWithID cria um novo AccountError com ID da conta
func NewAccountErrorWithID(err error, code string, accountID string, details string) *AccountError {
	return &AccountError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
