package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries every knob the assistant reads from the environment.
// Zero values are replaced with the defaults used on the sandbox deployment.
type Config struct {
	AppName    string
	AppVersion string
	Host       string
	Port       string

	CompanyName    string
	Currency       string
	CurrencySymbol string

	WithdrawalMin        float64
	WithdrawalMax        float64
	WithdrawalDailyLimit float64
	TopupMin             float64
	TopupMax             float64

	BackendBaseURL string
	BackendAPIKey  string
	BackendTimeout time.Duration

	LLMBaseURL       string
	LLMAPIKey        string
	LLMModel         string
	MaxResponseWords int

	STTProvider string
	TTSProvider string

	AudioStoragePath  string
	AudioBaseURL      string
	AudioFormat       string
	AudioCleanupHours int

	RedisURL        string
	ConversationTTL time.Duration

	DatabaseURL string

	AdminAPIKey string

	FraudBlockThreshold int

	TelegramAlertToken  string
	TelegramAlertChatID int64
}

func Load() Config {
	return Config{
		AppName:    getEnv("APP_NAME", "BAFOKA Voice Assistant"),
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		Host:       getEnv("HOST", "0.0.0.0"),
		Port:       getEnv("PORT", "8000"),

		CompanyName:    getEnv("COMPANY_NAME", "BAFOKA"),
		Currency:       getEnv("CURRENCY", "XAF"),
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "FCFA"),

		WithdrawalMin:        getFloat("WITHDRAWAL_MIN", 500),
		WithdrawalMax:        getFloat("WITHDRAWAL_MAX", 500000),
		WithdrawalDailyLimit: getFloat("WITHDRAWAL_DAILY_LIMIT", 1000000),
		TopupMin:             getFloat("TOPUP_MIN", 500),
		TopupMax:             getFloat("TOPUP_MAX", 2000000),

		BackendBaseURL: getEnv("BACKEND_BASE_URL", "https://sandbox.bafoka.network"),
		BackendAPIKey:  os.Getenv("BACKEND_API_KEY"),
		BackendTimeout: time.Duration(getInt("BACKEND_TIMEOUT", 30)) * time.Second,

		LLMBaseURL:       getEnv("LLM_BASE_URL", "http://localhost:11434/v1"),
		LLMAPIKey:        getEnv("LLM_API_KEY", "ollama"),
		LLMModel:         getEnv("LLM_MODEL", "gemma3"),
		MaxResponseWords: getInt("MAX_RESPONSE_WORDS", 50),

		STTProvider: getEnv("STT_PROVIDER", "openai"),
		TTSProvider: getEnv("TTS_PROVIDER", "openai"),

		AudioStoragePath:  getEnv("AUDIO_STORAGE_PATH", "audio_files"),
		AudioBaseURL:      getEnv("AUDIO_BASE_URL", "http://localhost:8000/audio"),
		AudioFormat:       getEnv("AUDIO_FORMAT", "wav"),
		AudioCleanupHours: getInt("AUDIO_CLEANUP_HOURS", 24),

		RedisURL:        os.Getenv("REDIS_URL"),
		ConversationTTL: time.Duration(getInt("CONVERSATION_TTL", 3600)) * time.Second,

		DatabaseURL: os.Getenv("DATABASE_URL"),

		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		FraudBlockThreshold: getInt("FRAUD_BLOCK_THRESHOLD", 75),

		TelegramAlertToken:  os.Getenv("TELEGRAM_ALERT_TOKEN"),
		TelegramAlertChatID: getInt64("TELEGRAM_ALERT_CHAT_ID", 0),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return n
}
