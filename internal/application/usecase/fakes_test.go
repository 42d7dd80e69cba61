package usecase_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// memTable tabla en memoria con id autoincremental y nombre único sin distinguir mayúsculas.
type memTable[T any] struct {
	mu      sync.Mutex
	nextID  int64
	rows    map[int64]T
	order   []int64
	nameOf  func(T) string
	setID   func(*T, int64)
	deletes int
}

func newMemTable[T any](nameOf func(T) string, setID func(*T, int64)) *memTable[T] {
	return &memTable[T]{rows: map[int64]T{}, nameOf: nameOf, setID: setID}
}

func (t *memTable[T]) list() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]T, 0, len(t.rows))
	for _, id := range t.order {
		if r, ok := t.rows[id]; ok {
			out = append(out, r)
		}
	}
	return out
}

func (t *memTable[T]) existsByName(name string, excludeID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, r := range t.rows {
		if id != excludeID && strings.EqualFold(t.nameOf(r), name) {
			return true
		}
	}
	return false
}

func (t *memTable[T]) create(row *T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	t.setID(row, t.nextID)
	t.rows[t.nextID] = *row
	t.order = append(t.order, t.nextID)
}

func (t *memTable[T]) update(id int64, row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	t.rows[id] = row
	return nil
}

func (t *memTable[T]) delete(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deletes++
	_, ok := t.rows[id]
	delete(t.rows, id)
	return ok
}

func (t *memTable[T]) get(id int64) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.rows[id]
	return r, ok
}

type memIngredientRepo struct{ *memTable[entity.Ingredient] }

func newMemIngredientRepo() *memIngredientRepo {
	return &memIngredientRepo{newMemTable(
		func(i entity.Ingredient) string { return i.Name },
		func(i *entity.Ingredient, id int64) { i.ID = id },
	)}
}

func (r *memIngredientRepo) List(context.Context) ([]*entity.Ingredient, error) {
	var out []*entity.Ingredient
	for _, i := range r.list() {
		i := i
		out = append(out, &i)
	}
	return out, nil
}
func (r *memIngredientRepo) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	return r.existsByName(name, excludeID), nil
}
func (r *memIngredientRepo) Create(_ context.Context, i *entity.Ingredient) error {
	r.create(i)
	return nil
}
func (r *memIngredientRepo) Update(_ context.Context, i *entity.Ingredient) error {
	return r.update(i.ID, *i)
}
func (r *memIngredientRepo) Delete(_ context.Context, id int64) error {
	r.delete(id)
	return nil
}

type memMaterialRepo struct{ *memTable[entity.Material] }

func newMemMaterialRepo() *memMaterialRepo {
	return &memMaterialRepo{newMemTable(
		func(m entity.Material) string { return m.Name },
		func(m *entity.Material, id int64) { m.ID = id },
	)}
}

func (r *memMaterialRepo) List(context.Context) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range r.list() {
		m := m
		out = append(out, &m)
	}
	return out, nil
}
func (r *memMaterialRepo) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	return r.existsByName(name, excludeID), nil
}
func (r *memMaterialRepo) Create(_ context.Context, m *entity.Material) error {
	r.create(m)
	return nil
}
func (r *memMaterialRepo) Update(_ context.Context, m *entity.Material) error {
	return r.update(m.ID, *m)
}
func (r *memMaterialRepo) Delete(_ context.Context, id int64) error {
	r.delete(id)
	return nil
}

type memMerchandiseRepo struct{ *memTable[entity.Merchandise] }

func newMemMerchandiseRepo() *memMerchandiseRepo {
	return &memMerchandiseRepo{newMemTable(
		func(m entity.Merchandise) string { return m.Name },
		func(m *entity.Merchandise, id int64) { m.ID = id },
	)}
}

func (r *memMerchandiseRepo) List(context.Context) ([]*entity.Merchandise, error) {
	var out []*entity.Merchandise
	for _, m := range r.list() {
		m := m
		out = append(out, &m)
	}
	return out, nil
}
func (r *memMerchandiseRepo) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	return r.existsByName(name, excludeID), nil
}
func (r *memMerchandiseRepo) Create(_ context.Context, m *entity.Merchandise) error {
	r.create(m)
	return nil
}
func (r *memMerchandiseRepo) Update(_ context.Context, m *entity.Merchandise) error {
	return r.update(m.ID, *m)
}
func (r *memMerchandiseRepo) Delete(_ context.Context, id int64) error {
	r.delete(id)
	return nil
}

type memProductRepo struct {
	*memTable[entity.Product]
	failWrites error
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{memTable: newMemTable(
		func(p entity.Product) string { return p.Name },
		func(p *entity.Product, id int64) { p.ID = id },
	)}
}

func (r *memProductRepo) List(context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.list() {
		p := p
		out = append(out, &p)
	}
	return out, nil
}
func (r *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}
func (r *memProductRepo) ImageInUse(_ context.Context, image string, excludeID int64) (bool, error) {
	for _, p := range r.list() {
		if p.ID != excludeID && p.Image == image {
			return true, nil
		}
	}
	return false, nil
}
func (r *memProductRepo) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	return r.existsByName(name, excludeID), nil
}
func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	if r.failWrites != nil {
		return r.failWrites
	}
	r.create(p)
	return nil
}
func (r *memProductRepo) Update(_ context.Context, p *entity.Product, withImage bool) error {
	if r.failWrites != nil {
		return r.failWrites
	}
	cur, ok := r.get(p.ID)
	if !ok {
		return domain.ErrNotFound
	}
	if !withImage {
		p.Image = cur.Image
	}
	return r.update(p.ID, *p)
}
func (r *memProductRepo) Delete(_ context.Context, id int64) error {
	r.delete(id)
	return nil
}

type memProductTypeRepo struct{ *memTable[entity.ProductType] }

func newMemProductTypeRepo() *memProductTypeRepo {
	return &memProductTypeRepo{newMemTable(
		func(pt entity.ProductType) string { return pt.Name },
		func(pt *entity.ProductType, id int64) { pt.ID = id },
	)}
}

func (r *memProductTypeRepo) List(context.Context) ([]*entity.ProductType, error) {
	var out []*entity.ProductType
	for _, pt := range r.list() {
		pt := pt
		out = append(out, &pt)
	}
	return out, nil
}
func (r *memProductTypeRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.get(id)
	return ok, nil
}
func (r *memProductTypeRepo) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	return r.existsByName(name, excludeID), nil
}
func (r *memProductTypeRepo) Create(_ context.Context, pt *entity.ProductType) error {
	r.create(pt)
	return nil
}
func (r *memProductTypeRepo) Update(_ context.Context, pt *entity.ProductType) error {
	return r.update(pt.ID, *pt)
}
func (r *memProductTypeRepo) Delete(_ context.Context, id int64) error {
	if !r.delete(id) {
		return domain.ErrNotFound
	}
	return nil
}

// memStorage implementación en memoria de ports.FileStorage.
type memStorage struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemStorage() *memStorage { return &memStorage{files: map[string][]byte{}} }

func (s *memStorage) Save(_ context.Context, name string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = buf.Bytes()
	return name, nil
}

func (s *memStorage) Exists(_ context.Context, name string) (bool, error) {
	return s.has(name), nil
}

func (s *memStorage) Remove(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, name)
	return nil
}

func (s *memStorage) content(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.files[name])
}

func (s *memStorage) has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[name]
	return ok
}
