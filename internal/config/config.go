package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"skill-swap-service/internal/domain"
)

// ErrInvalidPolicy - файл POLICY_FILE не прочитан или не прошел проверку.
// В отличие от отсутствующего .env, сервис с такой ошибкой не запускается.
var ErrInvalidPolicy = errors.New("invalid policy file")

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string
	JWTSecret  string
	LogLevel   string
	PolicyFile string
	Policy     Policy
}

// Policy - настраиваемые параметры обменов и подбора партнеров.
// Значения по умолчанию можно переопределить YAML-файлом из POLICY_FILE.
type Policy struct {
	ResponseWindow            time.Duration `yaml:"response_window"`
	BaseScore                 int           `yaml:"base_score"`
	MutualScore               int           `yaml:"mutual_score"`
	DefaultLimit              int           `yaml:"default_limit"`
	MaxLimit                  int           `yaml:"max_limit"`
	RecommendationsPerRequest int           `yaml:"recommendations_per_request"`
}

// DefaultPolicy возвращает политику со стандартными значениями.
func DefaultPolicy() Policy {
	match := domain.DefaultMatchPolicy()
	return Policy{
		ResponseWindow:            domain.DefaultResponseWindow,
		BaseScore:                 match.BaseScore,
		MutualScore:               match.MutualScore,
		DefaultLimit:              match.DefaultLimit,
		MaxLimit:                  match.MaxLimit,
		RecommendationsPerRequest: match.RecommendationsPerRequest,
	}
}

// MatchPolicy возвращает параметры подбора для usecase-слоя.
func (p Policy) MatchPolicy() domain.MatchPolicy {
	return domain.MatchPolicy{
		BaseScore:                 p.BaseScore,
		MutualScore:               p.MutualScore,
		DefaultLimit:              p.DefaultLimit,
		MaxLimit:                  p.MaxLimit,
		RecommendationsPerRequest: p.RecommendationsPerRequest,
	}
}

// Validate проверяет согласованность политики.
func (p Policy) Validate() error {
	if p.ResponseWindow <= 0 {
		return fmt.Errorf("response_window must be positive, got %s", p.ResponseWindow)
	}
	if p.DefaultLimit <= 0 || p.MaxLimit < p.DefaultLimit {
		return fmt.Errorf("invalid limits: default %d, max %d", p.DefaultLimit, p.MaxLimit)
	}
	if p.RecommendationsPerRequest <= 0 {
		return fmt.Errorf("recommendations_per_request must be positive, got %d", p.RecommendationsPerRequest)
	}
	return nil
}

// LoadConfig читает .env и переменные окружения. Ошибка godotenv
// возвращается вместе с конфигом: отсутствие .env не фатально.
// Ошибка политики оборачивает ErrInvalidPolicy.
func LoadConfig() (Config, error) {

	err := godotenv.Load()

	cfg := Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "skill_swap"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", ""),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		PolicyFile: getEnv("POLICY_FILE", ""),
		Policy:     DefaultPolicy(),
	}

	if cfg.PolicyFile != "" {
		policy, policyErr := LoadPolicy(cfg.PolicyFile, cfg.Policy)
		if policyErr != nil {
			return cfg, fmt.Errorf("%w %s: %w", ErrInvalidPolicy, cfg.PolicyFile, policyErr)
		}
		cfg.Policy = policy
	}

	return cfg, err
}

// LoadPolicy накладывает YAML-файл поверх base. Отсутствующие в файле ключи сохраняют значения base.
func LoadPolicy(path string, base Policy) (Policy, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("failed to open policy file: %w", err)
	}
	defer f.Close()

	policy := base
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&policy); err != nil {
		return base, fmt.Errorf("failed to decode policy file: %w", err)
	}

	if err := policy.Validate(); err != nil {
		return base, fmt.Errorf("invalid policy: %w", err)
	}

	return policy, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
