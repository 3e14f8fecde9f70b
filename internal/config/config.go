package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort     = "8080"
	DefaultLanguage = "en"

	minSecretKeyLength = 32
)

var DefaultDBPath = filepath.Join("data", "florette.db")

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                     {},
	"replace_with_at_least_32_random_characters":  {},
	"your-secret-key-at-least-32-characters-long": {},
}

type Config struct {
	SecretKey       string
	DBPath          string
	Port            string
	Location        *time.Location
	DefaultLanguage string
	CookieSecure    bool
}

// Load reads envFiles (".env" when none are given) without overriding
// variables already present in the environment, then resolves Config.
// Missing env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	secretKey, err := resolveSecretKey()
	if err != nil {
		return Config{}, err
	}
	port, err := resolvePort()
	if err != nil {
		return Config{}, err
	}
	cookieSecure, err := resolveCookieSecure()
	if err != nil {
		return Config{}, err
	}

	return Config{
		SecretKey:       secretKey,
		DBPath:          getEnv("DB_PATH", DefaultDBPath),
		Port:            port,
		Location:        resolveLocation(getEnv("TZ", "UTC")),
		DefaultLanguage: strings.ToLower(getEnv("DEFAULT_LANGUAGE", DefaultLanguage)),
		CookieSecure:    cookieSecure,
	}, nil
}

// ResolveDBPath returns DB_PATH or the default without requiring the rest of
// the configuration. CLI maintenance commands use it.
func ResolveDBPath() string {
	return getEnv("DB_PATH", DefaultDBPath)
}

func resolveSecretKey() (string, error) {
	secretKey := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secretKey == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secretKey)]; insecure {
		return "", errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secretKey) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secretKey, nil
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(raw)
	if err != nil {
		return "", fmt.Errorf("invalid PORT %q: %w", raw, err)
	}
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q: must be between 1 and 65535", raw)
	}
	return strconv.Itoa(port), nil
}

func resolveCookieSecure() (bool, error) {
	raw := getEnv("COOKIE_SECURE", "false")
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid COOKIE_SECURE %q: %w", raw, err)
	}
	return value, nil
}

func resolveLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
