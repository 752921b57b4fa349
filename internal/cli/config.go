package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	FormID      string
	SessionFile string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("REGFORM_SERVER", "http://localhost:8080"),
		FormID:      os.Getenv("REGFORM_FORM"),
		SessionFile: getEnvOrDefault("REGFORM_SESSION_FILE", defaultSessionFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadFormID loads the current form ID from the session file if not already set
func (c *Config) LoadFormID() error {
	if c.FormID != "" {
		return nil
	}

	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No session file is fine
		}
		return err
	}

	c.FormID = strings.TrimSpace(string(data))
	return nil
}

// SaveFormID saves the form ID to the session file
func (c *Config) SaveFormID(formID string) error {
	c.FormID = formID

	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.SessionFile, []byte(formID), 0600)
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".regform/session"
	}
	return filepath.Join(home, ".regform", "session")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
