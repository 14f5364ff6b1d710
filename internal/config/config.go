package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the process reads from the environment. It is
// loaded once in main and injected into the services; nothing re-reads the
// environment per request.
type Config struct {
	Port string

	TimeZone string
	Location *time.Location

	WorkStartHour       int
	WorkEndHour         int
	SlotIntervalMinutes int
	DurationMinutes     int
	BufferMinutes       int

	CalendarID            string
	GoogleCredentialsFile string
	GoogleTokenFile       string

	LedgerSpreadsheetID string
	LedgerSheetRange    string

	DriveFolderID string

	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	OperatorEmail     string

	TwilioAccountSID string
	TwilioAuthToken  string
	PhoneRegion      string

	WhatsAppNumber string

	DigestCronSpec string

	AllowedOrigins []string
}

// Load reads the configuration from the environment, applying the studio's
// defaults. Business-hour values are validated here so the services can
// assume they are sane.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		TimeZone:              getEnv("TIME_ZONE", "America/Sao_Paulo"),
		WorkStartHour:         getEnvInt("WORK_START_HOUR", 9),
		WorkEndHour:           getEnvInt("WORK_END_HOUR", 21),
		SlotIntervalMinutes:   getEnvInt("SLOT_INTERVAL_MINUTES", 30),
		DurationMinutes:       getEnvInt("APPOINTMENT_DURATION_MINUTES", 60),
		BufferMinutes:         getEnvInt("BUFFER_MINUTES", 30),
		CalendarID:            getEnv("CALENDAR_ID", "primary"),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		GoogleTokenFile:       getEnv("GOOGLE_TOKEN_FILE", "token.json"),
		LedgerSpreadsheetID:   os.Getenv("LEDGER_SPREADSHEET_ID"),
		LedgerSheetRange:      getEnv("LEDGER_SHEET_RANGE", "Agendamentos!A:H"),
		DriveFolderID:         os.Getenv("DRIVE_FOLDER_ID"),
		SendGridAPIKey:        os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail:     os.Getenv("SENDGRID_FROM_EMAIL"),
		SendGridFromName:      getEnv("SENDGRID_FROM_NAME", "Tatuagenda"),
		OperatorEmail:         os.Getenv("OPERATOR_EMAIL"),
		TwilioAccountSID:      os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:       os.Getenv("TWILIO_AUTH_TOKEN"),
		PhoneRegion:           getEnv("PHONE_REGION", "BR"),
		WhatsAppNumber:        os.Getenv("WHATSAPP_NUMBER"),
		DigestCronSpec:        getEnv("DIGEST_CRON_SPEC", "0 20 * * *"),
		AllowedOrigins:        splitList(getEnv("ALLOWED_ORIGINS", "*")),
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid TIME_ZONE %q: %w", cfg.TimeZone, err)
	}
	cfg.Location = loc

	if cfg.WorkStartHour < 0 || cfg.WorkEndHour > 24 || cfg.WorkStartHour >= cfg.WorkEndHour {
		return nil, fmt.Errorf("config: invalid work hours %d-%d", cfg.WorkStartHour, cfg.WorkEndHour)
	}
	if cfg.SlotIntervalMinutes <= 0 || cfg.DurationMinutes <= 0 || cfg.BufferMinutes < 0 {
		return nil, fmt.Errorf("config: slot interval and duration must be positive, buffer non-negative")
	}

	return cfg, nil
}

func (c *Config) SlotInterval() time.Duration { return time.Duration(c.SlotIntervalMinutes) * time.Minute }
func (c *Config) Duration() time.Duration     { return time.Duration(c.DurationMinutes) * time.Minute }
func (c *Config) Buffer() time.Duration       { return time.Duration(c.BufferMinutes) * time.Minute }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
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

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
