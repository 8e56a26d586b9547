package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# tradelens configuration

[journal]
# Path to the SQLite journal database
# database_path = "~/.config/tradelens/journal.db"

[analytics]
# Timezone for calendar-day bucketing and month/weekday/hour filters.
# Empty means the system's local time zone.
timezone = ""

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "02-Jan-2006"
# Time format
time_format = "15:04:05"

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to the console
console = true
# Log to a rotated file under the config directory
file = true
max_size_mb = 50
max_backups = 5
max_age_days = 30
`

// createTemplateConfig writes a starter config.toml so users have
// something to edit on first run.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(configTemplate), 0644)
}
