package forecasting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de previsões
var (
	ErrForecastNotFound  = errors.New("previsão não encontrada")
	ErrInvalidPeriod     = errors.New("período de previsão inválido")
	ErrInvalidDateRange  = errors.New("janela de datas inválida")
	ErrInvalidCategory   = errors.New("categoria de previsão inválida")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ForecastError é um erro com contexto adicional para previsões
type ForecastError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	ForecastID string // ID da previsão envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ForecastError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ForecastError) Unwrap() error {
	return e.Err
}

// NewForecastError cria um novo ForecastError
func NewForecastError(err error, code string, details string) *ForecastError {
	return &ForecastError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
