package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DispatchPolicy controls how unknown (category, type) task kinds are treated.
type DispatchPolicy string

const (
	// PolicyPermissive completes unknown task kinds with a generic success
	// result instead of failing them.
	PolicyPermissive DispatchPolicy = "permissive"
	// PolicyStrict rejects unknown kinds at creation time and fails them at
	// run time.
	PolicyStrict DispatchPolicy = "strict"
)

type Config struct {
	Port        string
	DatabaseDSN string

	UploadDir         string
	TempDir           string
	AllowedExtensions []string

	MailServer        string
	MailPort          int
	MailUseTLS        bool
	MailUsername      string
	MailPassword      string
	MailDefaultSender string
	IMAPServer        string
	IMAPPort          int

	OpenAIKey      string
	AnthropicKey   string
	OpenAIModel    string
	AnthropicModel string

	SemanticAPIURL   string
	SemanticTimeout  time.Duration
	MaxContextChunks int

	DispatchPolicy DispatchPolicy
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	semanticTimeout := 10 * time.Second
	if v := os.Getenv("SEMANTIC_API_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			semanticTimeout = parsed
		}
	}

	policy := PolicyPermissive
	if os.Getenv("DISPATCH_POLICY") == string(PolicyStrict) {
		policy = PolicyStrict
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=officeflow port=5432 sslmode=disable"),

		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		TempDir:           getEnv("TEMP_DIR", "temp"),
		AllowedExtensions: []string{"txt", "pdf", "png", "jpg", "jpeg", "xlsx", "docx", "csv", "zip", "rar"},

		MailServer:        getEnv("MAIL_SERVER", "smtp.example.com"),
		MailPort:          getEnvInt("MAIL_PORT", 587),
		MailUseTLS:        getEnv("MAIL_USE_TLS", "true") == "true",
		MailUsername:      getEnv("MAIL_USERNAME", ""),
		MailPassword:      getEnv("MAIL_PASSWORD", ""),
		MailDefaultSender: getEnv("MAIL_DEFAULT_SENDER", "noreply@example.com"),
		IMAPPort:          getEnvInt("IMAP_PORT", 993),

		OpenAIKey:      getEnv("OPENAI_API_KEY", ""),
		AnthropicKey:   getEnv("ANTHROPIC_API_KEY", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		AnthropicModel: getEnv("ANTHROPIC_MODEL", "claude-3-sonnet-20240229"),

		SemanticAPIURL:   getEnv("SEMANTIC_API_URL", "http://localhost:5050"),
		SemanticTimeout:  semanticTimeout,
		MaxContextChunks: getEnvInt("MAX_CONTEXT_CHUNKS", 10),

		DispatchPolicy: policy,
	}

	// IMAP host falls back to the SMTP host when not configured separately
	cfg.IMAPServer = getEnv("IMAP_SERVER", cfg.MailServer)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
