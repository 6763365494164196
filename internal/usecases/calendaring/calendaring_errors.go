package calendaring

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de calendários
var (
	ErrConnectionNotFound = errors.New("conexão de calendário não encontrada")
	ErrInvalidConnection  = errors.New("dados da conexão inválidos")
	ErrProviderFailure    = errors.New("erro na comunicação com o provedor de calendário")
	ErrDatabaseOperation  = errors.New("erro ao realizar operação no banco de dados")
)

// CalendarError é um erro com contexto adicional para calendários
type CalendarError struct {
	Err          error  // Erro base
	Code         string // Código de erro para API
	ConnectionID string // ID da conexão envolvida (quando aplicável)
	Details      string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CalendarError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CalendarError) Unwrap() error {
	return e.Err
}

// NewCalendarError cria um novo CalendarError
func NewCalendarError(err error, code string, details string) *CalendarError {
	return &CalendarError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
