package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Backend BackendConfig
	Sync    SyncConfig
	HTTP    HTTPConfig
	Device  DeviceConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// BackendConfig ubicación del backend de registro.
type BackendConfig struct {
	URL            string // base, ej. http://localhost:4000
	TimeoutSeconds int
}

// Timeout devuelve el timeout por petición.
func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SyncConfig temporización del planificador de sincronización.
type SyncConfig struct {
	QuietMS int    // silencio tras la última edición antes de sincronizar
	RetryMS int    // espera fija entre reintentos
	Scope   string // request | checkout
}

// QuietPeriod devuelve el periodo de silencio.
func (c SyncConfig) QuietPeriod() time.Duration {
	return time.Duration(c.QuietMS) * time.Millisecond
}

// RetryDelay devuelve la espera entre reintentos.
func (c SyncConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryMS) * time.Millisecond
}

// HTTPConfig dirección de escucha del simulador.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DeviceConfig almacenamiento local del terminal.
type DeviceConfig struct {
	StorePath string // archivo sqlite del almacén clave-valor
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_URL, SYNC_QUIET_MS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "pedidos-sync"),
		},
		Backend: BackendConfig{
			URL:            getString(v, "BACKEND_URL", "http://localhost:4000"),
			TimeoutSeconds: getInt(v, "BACKEND_TIMEOUT_SECONDS", 10),
		},
		Sync: SyncConfig{
			QuietMS: getInt(v, "SYNC_QUIET_MS", 1200),
			RetryMS: getInt(v, "SYNC_RETRY_MS", 5000),
			Scope:   getString(v, "BASKET_SCOPE", "request"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 4000),
		},
		Device: DeviceConfig{
			StorePath: getString(v, "DEVSTORE_PATH", "pedidos-device.db"),
		},
	}

	return cfg, nil
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
