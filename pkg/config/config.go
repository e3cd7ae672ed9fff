package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	GitHub      GitHubConfig
	Session     SessionConfig
	SMTP        SMTPConfig
	LeetCode    LeetCodeConfig
	Leaderboard LeaderboardConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ClientURL    string
	ReadTimeout  int
	WriteTimeout int
}

type DatabaseConfig struct {
	Path string
}

type GitHubConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

type SessionConfig struct {
	Secret string
}

type SMTPConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	From         string
	ContactInbox string
}

type LeetCodeConfig struct {
	Endpoint    string
	StaleHours  int
	BatchLimit  int
	SyncWorkers int
}

type LeaderboardConfig struct {
	Owner           string
	Repo            string
	Token           string
	ProgramLabel    string
	PointTable      string
	SheetID         string
	SheetRange      string
	CredentialsFile string
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ClientURL:    getEnv("CLIENT_URL", "http://localhost:5173"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./devsync.db"),
		},
		GitHub: GitHubConfig{
			ClientID:     getEnv("GITHUB_CLIENT_ID", ""),
			ClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
			CallbackURL:  getEnv("GITHUB_CALLBACK_URL", ""),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "devsync-session-secret"),
		},
		SMTP: SMTPConfig{
			Host:         getEnv("SMTP_HOST", ""),
			Port:         getEnvAsInt("SMTP_PORT", 587),
			Username:     getEnv("SMTP_USERNAME", ""),
			Password:     getEnv("SMTP_PASSWORD", ""),
			From:         getEnv("SMTP_FROM", "no-reply@devsync.dev"),
			ContactInbox: getEnv("CONTACT_INBOX", ""),
		},
		LeetCode: LeetCodeConfig{
			Endpoint:    getEnv("LEETCODE_ENDPOINT", "https://leetcode.com/graphql"),
			StaleHours:  getEnvAsInt("LEETCODE_STALE_HOURS", 6),
			BatchLimit:  getEnvAsInt("LEETCODE_BATCH_LIMIT", 50),
			SyncWorkers: getEnvAsInt("LEETCODE_SYNC_WORKERS", 2),
		},
		Leaderboard: LeaderboardConfig{
			Owner:           getEnv("LEADERBOARD_OWNER", ""),
			Repo:            getEnv("LEADERBOARD_REPO", ""),
			Token:           getEnv("GITHUB_TOKEN", ""),
			ProgramLabel:    getEnv("LEADERBOARD_PROGRAM_LABEL", "gssoc"),
			PointTable:      getEnv("LEADERBOARD_POINTS", ""),
			SheetID:         getEnv("GOOGLE_SHEET_ID", ""),
			SheetRange:      getEnv("GOOGLE_SHEET_RANGE", "Sheet1!A1"),
			CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),
		},
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
