// Package usecases reúne os erros de contrato compartilhados pelos serviços
// de cálculo da aplicação.
package usecases

import "fmt"

// ErrInvalidArgument é o erro sentinela para violações de pré-condição.
// Sempre detectado antes de qualquer cálculo parcial.
var ErrInvalidArgument = fmt.Errorf("invalid argument")

// InvalidArgumentError descreve qual campo violou o contrato e por quê
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("argumento inválido '%s': %s", e.Field, e.Reason)
}

// Is permite que errors.Is(err, ErrInvalidArgument) reconheça o erro tipado
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgument cria um erro de contrato para o campo informado
func NewInvalidArgument(field, reason string) error {
	return &InvalidArgumentError{Field: field, Reason: reason}
}
