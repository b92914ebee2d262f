package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env     string
	Server  ServerConfig
	Mongo   MongoConfig
	OAuth   OAuthConfig
	Session SessionConfig
	Logging LoggingConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type MongoConfig struct {
	URI      string
	Database string
}

type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	RedirectURL        string
}

type SessionConfig struct {
	Secret string
	Expiry time.Duration
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Load carrega as configurações do ambiente (.env quando presente)
func Load() (*Config, error) {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("ENV", "development")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "8003")
	viper.SetDefault("API_BASE_URL", "http://localhost:8003")
	viper.SetDefault("MONGODB_DATABASE", "user_directory")
	viper.SetDefault("SESSION_TOKEN_EXPIRY", "24h")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	config := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:    viper.GetString("PORT"),
			Host:    viper.GetString("HOST"),
			BaseURL: viper.GetString("API_BASE_URL"),
		},
		Mongo: MongoConfig{
			URI:      viper.GetString("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
		},
		OAuth: OAuthConfig{
			GoogleClientID:     viper.GetString("GOOGLE_CLIENT_ID"),
			GoogleClientSecret: viper.GetString("GOOGLE_CLIENT_SECRET"),
			RedirectURL:        viper.GetString("OAUTH_REDIRECT_URL"),
		},
		Session: SessionConfig{
			Secret: viper.GetString("SECRET_KEY"),
			Expiry: viper.GetDuration("SESSION_TOKEN_EXPIRY"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetString("CORS_ALLOWED_ORIGINS"),
		},
	}

	if config.Mongo.URI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}

	if config.Session.Secret == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}

	return config, nil
}
