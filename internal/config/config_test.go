package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validSecret = "0123456789abcdef0123456789abcdef"

func TestResolveSecretKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	if _, err := resolveSecretKey(); err == nil {
		t.Fatal("expected error when SECRET_KEY is empty")
	}

	t.Setenv("SECRET_KEY", "change_me_in_production")
	if _, err := resolveSecretKey(); err == nil {
		t.Fatal("expected error when SECRET_KEY uses insecure placeholder")
	}

	t.Setenv("SECRET_KEY", "replace_with_at_least_32_random_characters")
	if _, err := resolveSecretKey(); err == nil {
		t.Fatal("expected error when SECRET_KEY uses example placeholder")
	}

	t.Setenv("SECRET_KEY", "too-short-secret")
	if _, err := resolveSecretKey(); err == nil {
		t.Fatal("expected error when SECRET_KEY is too short")
	}

	t.Setenv("SECRET_KEY", validSecret)
	secret, err := resolveSecretKey()
	if err != nil {
		t.Fatalf("expected valid secret, got error: %v", err)
	}
	if secret != validSecret {
		t.Fatalf("expected %q, got %q", validSecret, secret)
	}
}

func TestResolvePort(t *testing.T) {
	t.Setenv("PORT", "")
	port, err := resolvePort()
	if err != nil {
		t.Fatalf("expected default port, got error: %v", err)
	}
	if port != "8080" {
		t.Fatalf("expected default port 8080, got %q", port)
	}

	t.Setenv("PORT", "9090")
	port, err = resolvePort()
	if err != nil {
		t.Fatalf("expected valid port, got error: %v", err)
	}
	if port != "9090" {
		t.Fatalf("expected port 9090, got %q", port)
	}

	for _, raw := range []string{"0", "70000", "not-a-number"} {
		t.Setenv("PORT", raw)
		if _, err := resolvePort(); err == nil {
			t.Fatalf("expected invalid port %q to fail", raw)
		}
	}
}

func TestResolveLocationFallsBackToUTC(t *testing.T) {
	if got := resolveLocation("Not/AZone"); got != time.UTC {
		t.Fatalf("expected UTC fallback, got %s", got)
	}
	if got := resolveLocation("Europe/Berlin"); got.String() != "Europe/Berlin" {
		t.Fatalf("expected Europe/Berlin, got %s", got)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SECRET_KEY", validSecret)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != DefaultDBPath || cfg.Port != DefaultPort || cfg.DefaultLanguage != DefaultLanguage {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Location != time.UTC || cfg.CookieSecure {
		t.Fatalf("expected UTC and insecure cookies by default, got %+v", cfg)
	}
}

func TestLoadReadsEnvFileWithoutOverridingEnvironment(t *testing.T) {
	clearConfigEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "SECRET_KEY=" + validSecret + "\nPORT=9191\nDB_PATH=/tmp/from-file.db\nCOOKIE_SECURE=true\nDEFAULT_LANGUAGE=RU\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("PORT", "7070")

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SecretKey != validSecret || cfg.DBPath != "/tmp/from-file.db" || !cfg.CookieSecure {
		t.Fatalf("expected values from env file, got %+v", cfg)
	}
	if cfg.Port != "7070" {
		t.Fatalf("expected environment PORT to win over env file, got %q", cfg.Port)
	}
	if cfg.DefaultLanguage != "ru" {
		t.Fatalf("expected lowercased language, got %q", cfg.DefaultLanguage)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearConfigEnv(t)
	missing := filepath.Join(t.TempDir(), "missing.env")

	if _, err := Load(missing); err == nil {
		t.Fatal("expected missing SECRET_KEY to fail")
	}

	t.Setenv("SECRET_KEY", validSecret)
	t.Setenv("COOKIE_SECURE", "sometimes")
	if _, err := Load(missing); err == nil {
		t.Fatal("expected invalid COOKIE_SECURE to fail")
	}
}

func TestResolveDBPath(t *testing.T) {
	t.Setenv("DB_PATH", "")
	if got := ResolveDBPath(); got != DefaultDBPath {
		t.Fatalf("expected default db path, got %q", got)
	}
	t.Setenv("DB_PATH", "/var/lib/florette/app.db")
	if got := ResolveDBPath(); got != "/var/lib/florette/app.db" {
		t.Fatalf("expected DB_PATH value, got %q", got)
	}
}

// godotenv keeps variables that are set even when empty, so the keys are
// unset outright. t.Setenv restores them after the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SECRET_KEY", "DB_PATH", "PORT", "TZ", "DEFAULT_LANGUAGE", "COOKIE_SECURE"} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}
