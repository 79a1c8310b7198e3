package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/InventarioQR-api/internal/application/dto"
	"github.com/jhoicas/InventarioQR-api/internal/domain"
	"github.com/jhoicas/InventarioQR-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credentials credenciales del único operador, cargadas desde configuración.
// PasswordHash es un hash bcrypt.
type Credentials struct {
	Username     string
	PasswordHash string
}

// AuthUseCase login del operador. La aplicación es monousuario: no hay
// registro ni almacenamiento de usuarios, las credenciales viven en la
// configuración del despliegue.
type AuthUseCase struct {
	creds  Credentials
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(creds Credentials, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{creds: creds, jwtCfg: jwtCfg}
}

// Login verifica usuario/contraseña contra las credenciales configuradas y
// emite el JWT. Cualquier fallo responde ErrUnauthorized sin distinguir causa.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.creds.Username == "" || uc.creds.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.Username != uc.creds.Username {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.creds.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.creds.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Username: uc.creds.Username}, nil
}
