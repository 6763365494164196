package crm

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de contatos e empresas
var (
	ErrContactNotFound   = errors.New("contato não encontrado")
	ErrCompanyNotFound   = errors.New("empresa não encontrada")
	ErrActivityNotFound  = errors.New("atividade não encontrada")
	ErrFormNotFound      = errors.New("formulário não encontrado ou inativo")
	ErrInvalidInput      = errors.New("dados inválidos")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// CRMError é um erro com contexto adicional para o cadastro
type CRMError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CRMError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CRMError) Unwrap() error {
	return e.Err
}

// NewCRMError cria um novo CRMError
func NewCRMError(err error, code string, details string) *CRMError {
	return &CRMError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
