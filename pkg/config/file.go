package config

import "fmt"

// newConfigFile returns the YAML template for a fresh config file.
func newConfigFile(cfg *Config) string {
	return fmt.Sprintf(`# Meetbot configuration.
# All fields can be overridden with environment variables
# prefixed with MEETBOT_, e.g. MEETBOT_DB_DRIVER.

# The name of the community the bot serves.
name: %q

# The logger configuration.
log:
  # The format of the logs. Valid values are "json", "logfmt", and "text".
  format: %q

  # The time format for the log "ts" field.
  time_format: %q

# The database configuration.
db:
  # The database driver to use. Valid values are "sqlite" and "postgres".
  driver: %q

  # The database data source name.
  # For sqlite, this is the path to the database file.
  data_source: %q
`,
		cfg.Name,
		cfg.Log.Format,
		cfg.Log.TimeFormat,
		cfg.DB.Driver,
		cfg.DB.DataSource,
	)
}
