package ports

import "context"

// TextCompleter puerto de salida hacia el modelo de lenguaje.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato.
type TextCompleter interface {
	// Complete envía el prompt y devuelve el texto generado.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	Complete(ctx context.Context, prompt string) (string, error)
}
