package projecting

import (
	"fmt"
)

// ProjectError é um erro com o código de API correspondente
type ProjectError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ProjectError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ProjectError) Unwrap() error {
	return e.Err
}

// NewProjectError cria um novo ProjectError
func NewProjectError(err error, code string, details string) *ProjectError {
	return &ProjectError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
