package compliance

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de conformidade de dados
var (
	ErrRequestNotFound   = errors.New("solicitação de dados não encontrada")
	ErrInvalidRequest    = errors.New("dados da solicitação inválidos")
	ErrPolicyNotFound    = errors.New("política de retenção não encontrada")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ComplianceError é um erro com contexto adicional para conformidade
type ComplianceError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ComplianceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ComplianceError) Unwrap() error {
	return e.Err
}

// NewComplianceError cria um novo ComplianceError
func NewComplianceError(err error, code string, details string) *ComplianceError {
	return &ComplianceError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
