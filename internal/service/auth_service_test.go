package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweetsky/internal/config"
	"sweetsky/internal/dto"
	"sweetsky/internal/repository"
	"sweetsky/internal/session"
)

func cfgPrueba() *config.Config {
	return &config.Config{
		JWTSecret:          "secreto-de-prueba",
		JWTExpirationHours: 8,
	}
}

func buildAuthSvc() (AuthService, *session.Store) {
	alm := repository.NuevoAlmacen()
	sesiones := session.NewStore()
	return NewAuthService(alm.Usuarios, sesiones, cfgPrueba()), sesiones
}

func TestLogin_Admin(t *testing.T) {
	svc, _ := buildAuthSvc()

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@sweetsky.com",
		Password: "admin",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "1", resp.User.ID)
	assert.Equal(t, "Administrador", resp.User.Nombre)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	svc, _ := buildAuthSvc()
	ctx := context.Background()

	// email desconocido y password equivocado producen el mismo error generico
	_, err := svc.Login(ctx, dto.LoginRequest{Email: "nadie@sweetsky.com", Password: "admin"})
	assert.ErrorIs(t, err, ErrCredenciales)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "admin@sweetsky.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, ErrCredenciales)

	// pares cruzados tampoco sirven
	_, err = svc.Login(ctx, dto.LoginRequest{Email: "user1@sweetsky.com", Password: "user2pass"})
	assert.ErrorIs(t, err, ErrCredenciales)
}

func TestLogin_RegistraSesion(t *testing.T) {
	svc, sesiones := buildAuthSvc()

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "user1@sweetsky.com",
		Password: "user1pass",
	})
	require.NoError(t, err)

	tokenID := extraerJTI(t, resp.AccessToken)
	ses, ok := sesiones.Get(tokenID)
	require.True(t, ok)
	assert.Equal(t, int64(2), ses.UsuarioID)
	assert.Equal(t, "user1@sweetsky.com", ses.Email)
}

func TestLogout_RevocaSesion(t *testing.T) {
	svc, sesiones := buildAuthSvc()
	ctx := context.Background()

	resp, err := svc.Login(ctx, dto.LoginRequest{Email: "user2@sweetsky.com", Password: "user2pass"})
	require.NoError(t, err)

	tokenID := extraerJTI(t, resp.AccessToken)
	svc.Logout(ctx, tokenID)

	_, ok := sesiones.Get(tokenID)
	assert.False(t, ok)

	// logout repetido no falla
	svc.Logout(ctx, tokenID)
}

// extraerJTI decodes the token with the test secret and returns its jti.
func extraerJTI(t *testing.T, tokenStr string) string {
	t.Helper()
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secreto-de-prueba"), nil
	})
	require.NoError(t, err)
	jti, _ := claims["jti"].(string)
	require.NotEmpty(t, jti)
	return jti
}
