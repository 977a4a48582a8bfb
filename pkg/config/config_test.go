package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetEnvVars(t *testing.T) {
	tests := []struct {
		name         string
		mockEnvFile  string
		wantLocation string
	}{
		{
			name:         "Valid .env file",
			mockEnvFile:  "TDATE_LOCATION=London, UK\n",
			wantLocation: "London, UK",
		},
		{
			name:         "No environment variables or .env file",
			wantLocation: "Las Vegas, NV",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Save original directory and change to temp directory
			originalDir, err := os.Getwd()
			if err != nil {
				t.Fatalf("Failed to get current directory: %v", err)
			}

			tmpDir := t.TempDir()
			if err := os.Chdir(tmpDir); err != nil {
				t.Fatalf("Failed to change to temp directory: %v", err)
			}
			defer func() {
				if err := os.Chdir(originalDir); err != nil {
					t.Errorf("Failed to restore original directory: %v", err)
				}
			}()

			// godotenv.Load writes into the process environment, so clear
			// the variable before and after each case
			os.Unsetenv("TDATE_LOCATION")
			defer os.Unsetenv("TDATE_LOCATION")

			// Create .env file if applicable
			if tt.mockEnvFile != "" {
				envPath := filepath.Join(tmpDir, ".env")
				if err := os.WriteFile(envPath, []byte(tt.mockEnvFile), 0644); err != nil {
					t.Fatalf("Failed to write mock .env file: %v", err)
				}
			}

			cfg := GetEnvVars()
			if cfg.Location != tt.wantLocation {
				t.Errorf("Expected Location to be '%s', got '%s'", tt.wantLocation, cfg.Location)
			}
		})
	}
}
