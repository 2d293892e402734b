package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Data
		Backup
		Audit
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Data struct {
		BooksPath   string
		ReadingPath string
	}
	Backup struct {
		Enabled  bool
		Dir      string
		Schedule string // Cron format: "0 3 * * *" = daily at 03:00
	}
	Audit struct {
		Enabled bool
		Dir     string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8177)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("book_data_path", DefaultBookDataPath)
	v.SetDefault("reading_data_path", DefaultReadingDataPath)
	v.SetDefault("backup_enabled", false)
	v.SetDefault("backup_dir", "./backups")
	v.SetDefault("backup_schedule", "0 3 * * *") // Daily at 03:00
	v.SetDefault("audit_enabled", false)
	v.SetDefault("audit_dir", "./audit")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Data: Data{
			BooksPath:   v.GetString("BOOK_DATA_PATH"),
			ReadingPath: v.GetString("READING_DATA_PATH"),
		},
		Backup: Backup{
			Enabled:  v.GetBool("BACKUP_ENABLED"),
			Dir:      v.GetString("BACKUP_DIR"),
			Schedule: v.GetString("BACKUP_SCHEDULE"),
		},
		Audit: Audit{
			Enabled: v.GetBool("AUDIT_ENABLED"),
			Dir:     v.GetString("AUDIT_DIR"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
