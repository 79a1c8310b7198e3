package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Auth    AuthConfig
	Scanner ScannerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	SeedDemo bool // carga datos de demostración al arrancar (el estado es volátil)
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AuthConfig credenciales del único operador. PasswordHash es un hash bcrypt;
// nunca se configura la contraseña en claro.
type AuthConfig struct {
	Username     string
	PasswordHash string
}

// ScannerConfig cámaras que el cliente expone para escanear, en formato
// "id|etiqueta" separadas por comas. Vacío = equipo sin cámaras.
type ScannerConfig struct {
	Devices []ScannerDevice
}

// ScannerDevice una cámara configurada.
type ScannerDevice struct {
	ID    string
	Label string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, JWT_SECRET, AUTH_USERNAME, SCANNER_DEVICES, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-qr"),
			LogLevel: getString(v, "APP_LOG_LEVEL", "info"),
			SeedDemo: getBool(v, "APP_SEED_DEMO", true),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "inventario-qr"),
		},
		Auth: AuthConfig{
			Username:     getString(v, "AUTH_USERNAME", "operador"),
			PasswordHash: getString(v, "AUTH_PASSWORD_HASH", ""),
		},
		Scanner: ScannerConfig{
			Devices: parseDevices(getString(v, "SCANNER_DEVICES", "")),
		},
	}

	return cfg, nil
}

// parseDevices interpreta "cam0|Cámara frontal,cam1|Back Camera".
func parseDevices(raw string) []ScannerDevice {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var devices []ScannerDevice
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, label, found := strings.Cut(part, "|")
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if !found || strings.TrimSpace(label) == "" {
			label = id
		}
		devices = append(devices, ScannerDevice{ID: id, Label: strings.TrimSpace(label)})
	}
	return devices
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
