package pipeline

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto do funil de vendas
var (
	ErrDealNotFound      = errors.New("negócio não encontrado")
	ErrStageNotFound     = errors.New("estágio não encontrado")
	ErrDealClosed        = errors.New("negócio já encerrado")
	ErrInvalidDeal       = errors.New("dados do negócio inválidos")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// DealError é um erro com contexto adicional para negócios
type DealError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	DealID  string // ID do negócio envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DealError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DealError) Unwrap() error {
	return e.Err
}

// NewDealError cria um novo DealError
func NewDealError(err error, code string, details string) *DealError {
	return &DealError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
