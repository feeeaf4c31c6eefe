package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultChatTimeout = 60 * time.Second

// Config holds the application configuration.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Firebase struct {
		DatabaseURL string `yaml:"database_url"`

		// Either a path to the service account JSON file...
		CredentialsFile string `yaml:"credentials_file"`

		// ...or the discrete service-account fields, usually filled
		// from the environment via ${VAR} expansion.
		ProjectID    string `yaml:"project_id"`
		PrivateKeyID string `yaml:"private_key_id"`
		PrivateKey   string `yaml:"private_key"`
		ClientEmail  string `yaml:"client_email"`
		ClientID     string `yaml:"client_id"`
	} `yaml:"firebase"`
	Chat struct {
		Provider string `yaml:"provider"` // "openai" or "gemini"
		APIKey   string `yaml:"api_key"`
		Model    string `yaml:"model"`
		BaseURL  string `yaml:"base_url"`

		Timeout    time.Duration `yaml:"-"`
		TimeoutRaw string        `yaml:"timeout"`
	} `yaml:"chat"`
	CORS struct {
		AllowOrigins []string `yaml:"allow_origins"`
	} `yaml:"cors"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// LoadConfig reads and parses the YAML configuration file. Environment
// variables in the form ${VAR_NAME} are expanded before parsing.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.Chat.Timeout = defaultChatTimeout
	if cfg.Chat.TimeoutRaw != "" {
		cfg.Chat.Timeout, err = time.ParseDuration(cfg.Chat.TimeoutRaw)
		if err != nil {
			return nil, fmt.Errorf("parsing chat.timeout %q: %w", cfg.Chat.TimeoutRaw, err)
		}
	}
	if cfg.Chat.Provider == "" {
		cfg.Chat.Provider = "openai"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding
// environment variable values. Unset variables become empty strings.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all required configuration fields are present.
// A failure here aborts startup; missing credentials are never a
// per-request error.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Firebase.DatabaseURL == "" {
		return fmt.Errorf("firebase.database_url is required")
	}
	if c.Firebase.CredentialsFile == "" {
		if c.Firebase.ProjectID == "" || c.Firebase.PrivateKey == "" || c.Firebase.ClientEmail == "" {
			return fmt.Errorf("firebase credentials are required: set firebase.credentials_file or firebase.{project_id,private_key,client_email}")
		}
	}
	switch c.Chat.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("chat.provider must be %q or %q", "openai", "gemini")
	}
	if c.Chat.APIKey == "" {
		return fmt.Errorf("chat.api_key is required")
	}
	if c.Chat.Model == "" {
		return fmt.Errorf("chat.model is required")
	}
	return nil
}

// ServiceAccountJSON assembles a Google service-account credential
// document from the discrete firebase fields. Private keys arriving via
// environment variables carry literal "\n" sequences, which are
// unescaped here.
func (c *Config) ServiceAccountJSON() ([]byte, error) {
	sa := map[string]string{
		"type":           "service_account",
		"project_id":     c.Firebase.ProjectID,
		"private_key_id": c.Firebase.PrivateKeyID,
		"private_key":    strings.ReplaceAll(c.Firebase.PrivateKey, `\n`, "\n"),
		"client_email":   c.Firebase.ClientEmail,
		"client_id":      c.Firebase.ClientID,
		"token_uri":      "https://oauth2.googleapis.com/token",
	}
	data, err := json.Marshal(sa)
	if err != nil {
		return nil, fmt.Errorf("marshaling service account: %w", err)
	}
	return data, nil
}
