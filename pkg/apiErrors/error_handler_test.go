package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{name: "Formato inválido", code: ErrInvalidFormat, expectedStatus: http.StatusBadRequest},
		{name: "Entrada vazia", code: ErrEmptyInput, expectedStatus: http.StatusUnprocessableEntity},
		{name: "Recurso não encontrado", code: ErrResourceNotFound, expectedStatus: http.StatusNotFound},
		{name: "Documento malformado", code: ErrMalformedDocument, expectedStatus: http.StatusInternalServerError},
		{name: "Banco indisponível", code: ErrStorageUnavailable, expectedStatus: http.StatusServiceUnavailable},
		{name: "Código desconhecido", code: "XYZ_999", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}
