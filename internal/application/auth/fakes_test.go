package auth_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// memUserRepo implementación en memoria de repository.UserRepository.
type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*entity.User
	// failCreate fuerza un error en Create (para probar limpieza de archivos).
	failCreate error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{rows: map[int64]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate != nil {
		return r.failCreate
	}
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.rows[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetActiveByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok || u.IsDisabled {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetActiveByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if !u.IsDisabled && strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) exists(match func(*entity.User) bool, excludeID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if u.IsDisabled || u.ID == excludeID {
			continue
		}
		if match(u) {
			return true
		}
	}
	return false
}

func (r *memUserRepo) ExistsActiveByFullName(_ context.Context, fullName string, excludeID int64) (bool, error) {
	return r.exists(func(u *entity.User) bool { return strings.EqualFold(u.FullName, fullName) }, excludeID), nil
}

func (r *memUserRepo) ExistsActiveByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	return r.exists(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) }, excludeID), nil
}

func (r *memUserRepo) ExistsActiveByUsername(_ context.Context, username string, excludeID int64) (bool, error) {
	return r.exists(func(u *entity.User) bool { return strings.EqualFold(u.Username, username) }, excludeID), nil
}

func (r *memUserRepo) ListActive(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.rows[id]; ok && !u.IsDisabled {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[u.ID]
	if !ok || cur.IsDisabled {
		return domain.ErrNotFound
	}
	cp := *u
	r.rows[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Disable(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok || u.IsDisabled {
		return domain.ErrNotFound
	}
	u.IsDisabled = true
	return nil
}

// memStorage implementación en memoria de ports.FileStorage.
type memStorage struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{files: map[string][]byte{}}
}

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
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[name]
	return ok, nil
}

func (s *memStorage) Remove(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, name)
	return nil
}

func (s *memStorage) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.files))
	for n := range s.files {
		out = append(out, n)
	}
	return out
}
