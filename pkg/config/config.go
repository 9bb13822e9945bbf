// Package config agrupa a configuração da aplicação (leitura via Viper a
// partir de env vars e opcionalmente de arquivo .env).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config configuração completa da aplicação.
type Config struct {
	App  AppConfig
	DB   DBConfig
	HTTP HTTPConfig
	TMDB TMDBConfig
	Log  LogConfig
}

// AppConfig configuração geral.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig configuração do SQLite. Caminho é sempre absoluto: o arquivo do
// banco é resolvido em relação ao executável, nunca ao diretório de trabalho
// de quem invocou o processo.
type DBConfig struct {
	Caminho string
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// TMDBConfig configuração do catálogo externo de filmes.
type TMDBConfig struct {
	APIKey   string
	BaseURL  string // vazio = API pública do TMDB
	Language string
	Timeout  time.Duration
}

// LogConfig configuração de logging.
type LogConfig struct {
	Level string
}

// Load lê a configuração de variáveis de ambiente (e de um .env se existir).
// As env vars têm prioridade. Nomes esperados: APP_ENV, HTTP_PORT, SQLITE_PATH,
// TMDB_API_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo .env no diretório corrente.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	caminho, err := resolveCaminhoBanco(getString(v, "SQLITE_PATH", ""))
	if err != nil {
		return nil, fmt.Errorf("resolver caminho do banco: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "locadora-api"),
		},
		DB: DBConfig{
			Caminho: caminho,
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 5000),
		},
		TMDB: TMDBConfig{
			APIKey:   getString(v, "TMDB_API_KEY", ""),
			BaseURL:  getString(v, "TMDB_BASE_URL", ""),
			Language: getString(v, "TMDB_LANGUAGE", "pt-BR"),
			Timeout:  time.Duration(getInt(v, "TMDB_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// resolveCaminhoBanco normaliza o caminho do arquivo SQLite para absoluto.
// Sem SQLITE_PATH, o padrão é locadora.db ao lado do executável, garantindo
// que todo processo abra sempre o mesmo arquivo.
func resolveCaminhoBanco(caminho string) (string, error) {
	if caminho == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", err
		}
		return filepath.Join(filepath.Dir(exe), "locadora.db"), nil
	}
	return filepath.Abs(caminho)
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
