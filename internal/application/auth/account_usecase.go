package auth

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// AccountUseCase gestión de cuentas de empleado (solo admin).
type AccountUseCase struct {
	repo    repository.UserRepository
	storage ports.FileStorage
	log     *logger.Logger
	now     func() time.Time
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.UserRepository, storage ports.FileStorage, log *logger.Logger) *AccountUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AccountUseCase{repo: repo, storage: storage, log: log, now: time.Now}
}

// Create da de alta una cuenta. Los chequeos de unicidad van en orden nombre, email, username
// y solo consideran cuentas activas.
func (uc *AccountUseCase) Create(ctx context.Context, in dto.CreateAccountRequest, photo *ports.Upload) (*dto.MessageResponse, error) {
	role := strings.TrimSpace(in.UserRole)
	if !entity.IsEmployeeRole(role) {
		return nil, domain.Invalid("Invalid role")
	}
	if strings.TrimSpace(in.Password) == "" {
		return nil, domain.Invalid("Password is required")
	}
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, domain.Invalid("Username is required")
	}
	var hireDate *time.Time
	if strings.TrimSpace(in.HireDate) != "" {
		d, err := dto.ParseDate(in.HireDate)
		if err != nil {
			return nil, domain.Invalid(err.Error())
		}
		hireDate = &d.Time
	}

	if taken, err := uc.repo.ExistsActiveByFullName(ctx, in.FullName, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.Duplicate("Full name is already used")
	}
	if taken, err := uc.repo.ExistsActiveByEmail(ctx, in.Email, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.Duplicate("Email is already used")
	}
	if taken, err := uc.repo.ExistsActiveByUsername(ctx, username, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.Duplicate(fmt.Sprintf("Username '%s' is already taken.", username))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		FullName:     in.FullName,
		Username:     username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    uc.now().UTC(),
		HireDate:     hireDate,
	}
	if in.PhoneNumber != "" {
		phone := in.PhoneNumber
		user.PhoneNumber = &phone
	}

	stored, err := uc.savePhoto(ctx, photo)
	if err != nil {
		return nil, err
	}
	user.UploadImage = stored
	if err := uc.repo.Create(ctx, user); err != nil {
		uc.discard(ctx, stored)
		return nil, err
	}
	return &dto.MessageResponse{Message: cases.Title(language.English).String(role) + " created successfully!"}, nil
}

// List devuelve las cuentas activas.
func (uc *AccountUseCase) List(ctx context.Context) ([]dto.AccountResponse, error) {
	users, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toAccountResponse(u))
	}
	return out, nil
}

// Update reemplaza solo los campos presentes. La contraseña solo se acepta si la cuenta tiene
// rol de empleado. Tras guardar una foto nueva se borra la anterior.
func (uc *AccountUseCase) Update(ctx context.Context, id int64, in dto.UpdateAccountRequest, photo *ports.Upload) (*dto.MessageResponse, error) {
	user, err := uc.repo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("User not found")
	}

	changed := false
	if in.FullName != nil && *in.FullName != "" {
		user.FullName = *in.FullName
		changed = true
	}
	if in.Email != nil && *in.Email != "" {
		taken, err := uc.repo.ExistsActiveByEmail(ctx, *in.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.Duplicate("Email is already used by another user")
		}
		user.Email = *in.Email
		changed = true
	}
	if in.Password != nil && *in.Password != "" && entity.IsEmployeeRole(user.Role) {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
		changed = true
	}
	if in.PhoneNumber != nil && *in.PhoneNumber != "" {
		phone := *in.PhoneNumber
		user.PhoneNumber = &phone
		changed = true
	}
	if in.HireDate != nil && !in.HireDate.IsZero() {
		t := in.HireDate.Time
		user.HireDate = &t
		changed = true
	}
	if !changed && photo == nil {
		return &dto.MessageResponse{Message: "No fields to update"}, nil
	}

	previous := user.UploadImage
	stored, err := uc.savePhoto(ctx, photo)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		user.UploadImage = stored
	}
	if err := uc.repo.Update(ctx, user); err != nil {
		uc.discard(ctx, stored)
		return nil, err
	}
	if stored != nil {
		uc.discard(ctx, previous)
	}
	return &dto.MessageResponse{Message: "User updated successfully"}, nil
}

// Disable deshabilita la cuenta; la fila se conserva.
func (uc *AccountUseCase) Disable(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if err := uc.repo.Disable(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NotFound("User not found or already disabled.")
		}
		return nil, err
	}
	return &dto.MessageResponse{Message: "User soft deleted successfully"}, nil
}

// savePhoto guarda la foto como <timestamp>_<nombre original>; nil si no hay foto.
func (uc *AccountUseCase) savePhoto(ctx context.Context, photo *ports.Upload) (*string, error) {
	if photo == nil {
		return nil, nil
	}
	name := fmt.Sprintf("%d_%s", uc.now().UnixNano(), filepath.Base(photo.Filename))
	stored, err := uc.storage.Save(ctx, name, photo.Content)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (uc *AccountUseCase) discard(ctx context.Context, name *string) {
	if name == nil || *name == "" {
		return
	}
	if err := uc.storage.Remove(ctx, *name); err != nil {
		uc.log.Warn().Err(err).Str("file", *name).Msg("no se pudo borrar la foto")
	}
}

func toAccountResponse(u *entity.User) dto.AccountResponse {
	out := dto.AccountResponse{
		UserID:      u.ID,
		FullName:    u.FullName,
		Username:    u.Username,
		Email:       u.Email,
		UserRole:    u.Role,
		CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
		PhoneNumber: u.PhoneNumber,
		UploadImage: u.UploadImage,
	}
	if u.HireDate != nil {
		d := dto.NewDate(*u.HireDate)
		out.HireDate = &d
	}
	return out
}
