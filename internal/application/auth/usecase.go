package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-api/internal/application/dto"
	"github.com/jhoicas/inventario-api/internal/domain"
	"github.com/jhoicas/inventario-api/internal/domain/entity"
	"github.com/jhoicas/inventario-api/internal/domain/repository"
	"github.com/jhoicas/inventario-api/pkg/jwt"
)

// Config parámetros de firma de tokens y de hashing de credenciales.
type Config struct {
	Secret         string
	ExpSeconds     int
	RefreshSeconds int
	Issuer         string
	BcryptCost     int
}

// UseCase casos de uso de autenticación: signup, login y refresh.
type UseCase struct {
	userRepo repository.UserRepository
	cfg      Config
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, cfg Config) *UseCase {
	return &UseCase{userRepo: userRepo, cfg: cfg}
}

// Signup crea un usuario y emite sus tokens. El password se hashea con bcrypt
// exactamente una vez, aquí, antes de persistir; el rol por defecto es auxiliar.
// Username o email repetidos fallan con ErrDuplicate.
func (uc *UseCase) Signup(in dto.SignupRequest) (*dto.AuthResponse, error) {
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
	existing, err := uc.userRepo.GetByUsernameOrEmail(username, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cfg.BcryptCost)
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
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.tokensFor(user)
}

// Login busca por username o email (el cliente puede enviar cualquiera de los
// dos), verifica el password contra el hash almacenado y emite los tokens.
// Usuario inexistente es ErrUserNotFound; password incorrecto es ErrUnauthorized.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if username == "" && email == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsernameOrEmail(username, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.tokensFor(user)
}

// Refresh emite un nuevo token de acceso a partir de un refresh token válido.
// El rol y el email se releen del registro actual del usuario, no del token,
// para que un cambio de rol surta efecto en la próxima renovación.
func (uc *UseCase) Refresh(in dto.RefreshRequest) (*dto.RefreshResponse, error) {
	if in.RefreshToken == "" {
		return nil, domain.ErrInvalidInput
	}
	claims, err := jwt.ParseRefresh(uc.cfg.Secret, in.RefreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.cfg.Secret, user.ID, string(user.Role), user.Email, uc.cfg.Issuer, uc.cfg.ExpSeconds)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{Token: token}, nil
}

func (uc *UseCase) tokensFor(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.cfg.Secret, user.ID, string(user.Role), user.Email, uc.cfg.Issuer, uc.cfg.ExpSeconds)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateRefresh(uc.cfg.Secret, user.ID, string(user.Role), user.Email, uc.cfg.Issuer, uc.cfg.RefreshSeconds)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:        token,
		RefreshToken: refresh,
		User:         ToUserResponse(user),
	}, nil
}

// ToUserResponse proyecta un usuario sin su hash de password.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
