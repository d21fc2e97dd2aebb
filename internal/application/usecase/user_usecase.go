package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-api/internal/application/auth"
	"github.com/jhoicas/inventario-api/internal/application/dto"
	"github.com/jhoicas/inventario-api/internal/domain"
	"github.com/jhoicas/inventario-api/internal/domain/access"
	"github.com/jhoicas/inventario-api/internal/domain/entity"
	"github.com/jhoicas/inventario-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios con las reglas de visibilidad y mutación
// por rol de internal/domain/access.
type UserUseCase struct {
	repo       repository.UserRepository
	bcryptCost int
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, bcryptCost int) *UserUseCase {
	return &UserUseCase{repo: repo, bcryptCost: bcryptCost}
}

// List retorna los usuarios visibles para el solicitante. Un auxiliar solo ve
// su propio registro; los demás ven todos. Por defecto se excluyen los
// inactivos salvo que includeInactive sea true.
func (uc *UserUseCase) List(caller access.Identity, includeInactive bool) (*dto.UserListResponse, error) {
	ownerID := ""
	if access.OwnRecordOnly(caller) {
		ownerID = caller.UserID
	}
	users, err := uc.repo.List(!includeInactive, ownerID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		data = append(data, auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{Count: len(data), Data: data}, nil
}

// GetByID retorna un usuario si el solicitante puede verlo.
func (uc *UserUseCase) GetByID(caller access.Identity, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := access.CanViewUser(caller, user); err != nil {
		return nil, err
	}
	resp := auth.ToUserResponse(user)
	return &resp, nil
}

// Create crea un usuario desde la ruta administrativa. El password se hashea
// con bcrypt exactamente una vez antes de persistir; rol por defecto auxiliar.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if username == "" || email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := entity.RoleAuxiliar
	if in.Role != "" {
		parsed, ok := entity.ParseRole(in.Role)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		role = parsed
	}
	existing, err := uc.repo.GetByUsernameOrEmail(username, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	resp := auth.ToUserResponse(user)
	return &resp, nil
}

// Update aplica un parche parcial sobre un usuario. Un auxiliar solo puede
// tocar su propio registro y nunca su campo role; un coordinador no puede
// tocar registros admin. El password, si viene, se rehashea.
func (uc *UserUseCase) Update(caller access.Identity, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := access.CanUpdateUser(caller, id, user.Role, in.Role != nil); err != nil {
		return nil, err
	}
	if in.Username != nil {
		user.Username = strings.TrimSpace(*in.Username)
	}
	if in.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), uc.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Role != nil {
		parsed, ok := entity.ParseRole(*in.Role)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		user.Role = parsed
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	resp := auth.ToUserResponse(user)
	return &resp, nil
}

// Delete desactiva (soft) o elimina permanentemente (hard) un usuario.
// Solo admin llega hasta aquí por la ruta; el predicado además bloquea a un
// no-admin actuando sobre un registro admin si la ruta cambiara.
func (uc *UserUseCase) Delete(caller access.Identity, id string, hardDelete bool) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := access.CanDeleteUser(caller, user); err != nil {
		return err
	}
	if hardDelete {
		return uc.repo.Delete(id)
	}
	return uc.repo.Deactivate(id)
}
