package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"sweetsky/internal/config"
	"sweetsky/internal/dto"
	"sweetsky/internal/model"
	"sweetsky/internal/repository"
	"sweetsky/internal/session"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout clears the session for the given token id. Unknown ids are a
	// no-op: logging out twice is not an error.
	Logout(ctx context.Context, tokenID string)
}

type authService struct {
	repo     repository.UsuarioRepository
	sesiones *session.Store
	cfg      *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, sesiones *session.Store, cfg *config.Config) AuthService {
	return &authService{repo: repo, sesiones: sesiones, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredenciales
	}

	expira := time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour)
	tokenID := uuid.NewString()

	token, err := s.generateToken(user, tokenID, expira)
	if err != nil {
		return nil, err
	}

	s.sesiones.Set(tokenID, session.Sesion{
		UsuarioID: user.ID,
		Email:     user.Email,
		CreadaEn:  time.Now(),
		ExpiraEn:  expira,
	})

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User: dto.UsuarioResponse{
			ID:     strconv.FormatInt(user.ID, 10),
			Email:  user.Email,
			Nombre: user.Nombre,
		},
	}, nil
}

func (s *authService) Logout(_ context.Context, tokenID string) {
	s.sesiones.Clear(tokenID)
}

func (s *authService) generateToken(user *model.Usuario, tokenID string, expira time.Time) (string, error) {
	if s.cfg.JWTSecret == "" {
		return "", errors.New("JWT secret no configurado")
	}
	claims := jwt.MapClaims{
		"jti":     tokenID,
		"user_id": strconv.FormatInt(user.ID, 10),
		"email":   user.Email,
		"nombre":  user.Nombre,
		"exp":     expira.Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
