package http

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
)

// formUpload abre el archivo del campo field. Devuelve (nil, nil, nil) si no se envió ninguno;
// el closer debe cerrarse cuando el caso de uso termina.
func formUpload(c *fiber.Ctx, field string) (*ports.Upload, io.Closer, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, nil
	}
	files := form.File[field]
	if len(files) == 0 || files[0].Filename == "" {
		return nil, nil, nil
	}
	f, err := files[0].Open()
	if err != nil {
		return nil, nil, fmt.Errorf("abrir archivo subido: %w", err)
	}
	return &ports.Upload{Filename: files[0].Filename, Content: f}, f, nil
}

// optionalFormValue distingue campo ausente (nil) de campo enviado vacío.
func optionalFormValue(c *fiber.Ctx, key string) *string {
	if form, err := c.MultipartForm(); err == nil {
		if vs, ok := form.Value[key]; ok && len(vs) > 0 {
			v := vs[0]
			return &v
		}
		return nil
	}
	args := c.Context().PostArgs()
	if args.Has(key) {
		v := string(args.Peek(key))
		return &v
	}
	return nil
}

// optionalFormDate como optionalFormValue pero interpretando YYYY-MM-DD; vacío cuenta como ausente.
func optionalFormDate(c *fiber.Ctx, key string) (*dto.Date, error) {
	s := optionalFormValue(c, key)
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := dto.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func closeQuietly(cl io.Closer) {
	if cl != nil {
		_ = cl.Close()
	}
}
