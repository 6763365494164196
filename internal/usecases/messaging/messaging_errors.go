package messaging

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de mensagens
var (
	ErrProviderNotConfigured = errors.New("integração com o Sendblue não configurada")
	ErrMessageNotFound       = errors.New("mensagem não encontrada")
	ErrContactWithoutPhone   = errors.New("contato sem telefone cadastrado")
	ErrInvalidMessage        = errors.New("dados da mensagem inválidos")
	ErrDatabaseOperation     = errors.New("erro ao realizar operação no banco de dados")
)

// MessageError é um erro com contexto adicional para mensagens
type MessageError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	MessageID string // ID da mensagem envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *MessageError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *MessageError) Unwrap() error {
	return e.Err
}

// NewMessageError cria um novo MessageError
func NewMessageError(err error, code string, details string) *MessageError {
	return &MessageError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
