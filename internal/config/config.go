// Package config загружает конфигурацию процесса.
//
// Источники (по убыванию приоритета):
//   - переменные окружения
//   - файл .env в рабочей директории (если есть)
//   - значения по умолчанию
//
// Отсутствие SUPABASE_URL или SUPABASE_KEY не считается ошибкой:
// сервис стартует, а запросы к хранилищу падают уже во время обработки.
package config

import (
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Значения по умолчанию.
const (
	DefaultPort             = "8080"
	DefaultAllowedOrigins   = "https://frontend-v2-xi-flax.vercel.app"
	DefaultDatastoreTimeout = 5 * time.Second
	DefaultEnvFile          = ".env"
)

// Config — конфигурация процесса.
type Config struct {
	// SupabaseURL — строка подключения к PostgreSQL в Supabase.
	SupabaseURL string

	// SupabaseKey — ключ доступа к хранилищу, используется как пароль подключения.
	SupabaseKey string

	Port             string
	AllowedOrigins   []string
	DatastoreTimeout time.Duration

	LogLevel  string
	LogFormat string

	// AMQPURL включает публикацию событий, если не пустой.
	AMQPURL string

	// VaultKey — base64-ключ для шифрования секретов, опционально.
	VaultKey string

	// EnvFile — путь к прочитанному .env файлу, пустой если файла не было.
	EnvFile string
}

// Get возвращает конфигурацию процесса. Загружается один раз.
var Get = sync.OnceValue(func() Config {
	return Load(DefaultEnvFile)
})

// Load читает конфигурацию из окружения и envFile.
// Пустой envFile отключает чтение файла.
func Load(envFile string) Config {
	v := viper.New()

	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_KEY", "")
	v.SetDefault("API_PORT", DefaultPort)
	v.SetDefault("CORS_ALLOWED_ORIGINS", DefaultAllowedOrigins)
	v.SetDefault("DATASTORE_TIMEOUT", DefaultDatastoreTimeout)
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("VAULT_ENCRYPTION_KEY", "")
	v.AutomaticEnv()

	loaded := ""
	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err == nil {
			loaded = envFile
		}
	}

	timeout := v.GetDuration("DATASTORE_TIMEOUT")
	if timeout <= 0 {
		timeout = DefaultDatastoreTimeout
	}

	return Config{
		SupabaseURL:      strings.TrimSpace(v.GetString("SUPABASE_URL")),
		SupabaseKey:      strings.TrimSpace(v.GetString("SUPABASE_KEY")),
		Port:             v.GetString("API_PORT"),
		AllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		DatastoreTimeout: timeout,
		LogLevel:         strings.ToUpper(v.GetString("LOG_LEVEL")),
		LogFormat:        strings.ToLower(v.GetString("LOG_FORMAT")),
		AMQPURL:          v.GetString("AMQP_URL"),
		VaultKey:         v.GetString("VAULT_ENCRYPTION_KEY"),
		EnvFile:          loaded,
	}
}

// Warnings возвращает предупреждения о неполной конфигурации.
// Ни одно из них не мешает старту.
func (c Config) Warnings() []string {
	var warnings []string
	if c.SupabaseURL == "" || c.SupabaseKey == "" {
		warnings = append(warnings, "SUPABASE_URL or SUPABASE_KEY not set")
	}
	if c.VaultKey == "" {
		warnings = append(warnings, "VAULT_ENCRYPTION_KEY not set, secrets are stored in plaintext")
	}
	return warnings
}

// Addr возвращает адрес для http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
