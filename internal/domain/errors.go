package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound        = errors.New("recurso não encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("não autorizado")
	ErrForbidden       = errors.New("acesso negado")
	ErrConflict        = errors.New("conflito com o estado atual")
	ErrOSImutavel      = errors.New("ordem de serviço concluída ou cancelada não pode ser alterada")
	ErrOrcamentoAceito = errors.New("a ordem de serviço já possui orçamento aceito")
)

// ValidationError indica dado de entrada malformado que o motor de cálculo
// rejeita ativamente (prazo em anos não positivo, data zerada). Propagar uma
// data de vencimento errada é pior que falhar com um erro descritivo.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validação: %s: %s", e.Field, e.Reason)
}

// NewValidationError constrói um ValidationError para o campo informado.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation informa se err é (ou embrulha) um ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
