package config

import (
	"os"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port        string
	DBDSN       string
	Admin       AdminConfig
	UploadDir   string
	BaseURL     string
	FrontendURL string
}

// AdminConfig holds the single admin credential pair and the static token
// handed out at login. There is no session store: the token IS the secret.
type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
	Token        string
}

func Load() *Config {
	return &Config{
		Port:  getEnv("PORT", "8080"),
		DBDSN: getEnv("DB_DSN", "root:weatherly@tcp(127.0.0.1:3306)/weatherly?parseTime=true"),
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			Password:     getEnv("ADMIN_PASSWORD", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			Token:        getEnv("ADMIN_TOKEN", ""),
		},
		UploadDir:   getEnv("UPLOAD_DIR", "./public/outfits"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}
}

// PasswordMatches checks a login attempt against the configured credential.
// If ADMIN_PASSWORD_HASH is set it wins and is compared with bcrypt;
// otherwise we fall back to the plain ADMIN_PASSWORD value.
func (a AdminConfig) PasswordMatches(plaintext string) bool {
	if a.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plaintext)) == nil
	}
	return a.Password != "" && a.Password == plaintext
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
