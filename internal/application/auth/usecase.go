package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/dto"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/pkg/jwt"
)

// JWTConfig konfigurasi pembuatan token.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autentikasi: login dengan email/password, keluaran JWT.
// Pendaftaran user dilakukan admin lewat manajemen user, bukan di sini.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase membangun use case auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login memverifikasi email/password lalu menghasilkan JWT berisi id dan role.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrWrongPassword
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse memetakan entitas user ke respons tanpa hash password.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		SupervisorID: u.SupervisorID,
		WarehouseID:  u.WarehouseID,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
