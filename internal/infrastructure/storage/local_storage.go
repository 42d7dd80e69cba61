// Package storage guarda en disco los archivos subidos (fotos de empleados, imágenes de productos).
// Los servicios que los sirven exponen el mismo directorio bajo /uploads.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/Backoffice-api/internal/application/ports"
)

var _ ports.FileStorage = (*LocalStorage)(nil)

// LocalStorage guarda archivos planos dentro de dir. Los nombres se reducen a su base para que
// nunca se escriba fuera del directorio.
type LocalStorage struct {
	dir string
}

// NewLocalStorage crea dir si no existe.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Dir directorio raíz, para montar el servidor de estáticos.
func (s *LocalStorage) Dir() string { return s.dir }

// Save escribe r en dir/base(name). Sobrescribe un archivo previo con el mismo nombre.
func (s *LocalStorage) Save(_ context.Context, name string, r io.Reader) (string, error) {
	base, err := safeName(name)
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, base)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("storage: crear archivo: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("storage: escribir archivo: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("storage: cerrar archivo: %w", err)
	}
	return base, nil
}

// Exists consulta dir/base(name).
func (s *LocalStorage) Exists(_ context.Context, name string) (bool, error) {
	base, err := safeName(name)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(filepath.Join(s.dir, base))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("storage: consultar archivo: %w", err)
	}
}

// Remove borra el archivo; si no existe no es error.
func (s *LocalStorage) Remove(_ context.Context, name string) error {
	base, err := safeName(name)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, base)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: borrar archivo: %w", err)
	}
	return nil
}

func safeName(name string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "." || base == "/" || base == ".." || base == "" {
		return "", fmt.Errorf("storage: nombre de archivo inválido %q", name)
	}
	return base, nil
}
