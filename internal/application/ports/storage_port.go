package ports

import (
	"context"
	"io"
)

// FileStorage guarda archivos subidos (fotos de empleados, imágenes de productos) por nombre.
type FileStorage interface {
	// Save escribe el contenido bajo name y devuelve el nombre final guardado.
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	// Exists indica si ya hay un archivo guardado bajo name.
	Exists(ctx context.Context, name string) (bool, error)
	// Remove borra name; un archivo inexistente no es error.
	Remove(ctx context.Context, name string) error
}

// Upload archivo recibido en un formulario multipart.
type Upload struct {
	Filename string
	Content  io.Reader
}
