package tracking

import "errors"

// Erros específicos para o contexto de acompanhamento semanal
var (
	ErrAccountIDRequired = errors.New("account ID is required")
	ErrInvalidWeek       = errors.New("week must be a Monday in YYYY-MM-DD format")
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrNegativePeople    = errors.New("people count cannot be negative")
	ErrGenerateID        = errors.New("error generating record ID")
)
