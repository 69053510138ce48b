package extraction

import "context"

// File es un archivo de receta (imagen o PDF) ya leído en memoria.
type File struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Audio es una grabación de voz tal como llega del cliente.
type Audio struct {
	Name string
	Data []byte
}

// Page son los candidatos crudos (JSON ya decodificado) de una página o segmento.
type Page []map[string]any

// Extractor llama al modelo externo y devuelve candidatos crudos.
// Texto inválido del proveedor (markdown, JSON roto) debe reducirse a
// "sin candidatos" dentro del adapter; el dominio nunca ve texto crudo.
type Extractor interface {
	ExtractFile(ctx context.Context, f File) ([]Page, error)
	ExtractText(ctx context.Context, text string) (Page, error)
}

// Transcriber convierte audio a texto.
type Transcriber interface {
	Transcribe(ctx context.Context, a Audio) (string, error)
}
