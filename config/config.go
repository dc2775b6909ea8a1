package config

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strconv"
	"strings"

	"github.com/elC0mpa/aws-cost-reporter/model"
	awscostexplorer "github.com/elC0mpa/aws-cost-reporter/service/aws/costexplorer"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	DefaultRegion         = "us-east-1"
	DefaultSenderEmail    = "cost-reports@example.com"
	DefaultRecipientEmail = "admin@example.com"
	DefaultReportDays     = 7
	DefaultFormat         = model.FormatHTML
	DefaultLogLevel       = "info"
)

// Config holds environment-based configuration, loaded once at start-up
type Config struct {
	// AWS
	Region  string
	Profile string

	// Email
	SenderEmail     string
	RecipientEmails []string

	// Report
	ReportDays     int
	Format         model.Format
	GroupByAccount bool

	// MetricsNamespace enables publishing daily totals to CloudWatch when set
	MetricsNamespace string

	LogLevel string

	// raw environment values, checked by Validate
	rawReportDays     string
	rawGroupByAccount string
}

// LoadEnv loads a .env file when one exists. Only the local entry points call it.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load reads the environment, falling back to documented defaults
func Load() *Config {
	return &Config{
		Region:           getEnvOrDefault("AWS_REGION", DefaultRegion),
		Profile:          os.Getenv("AWS_PROFILE"),
		SenderEmail:      getEnvOrDefault("SENDER_EMAIL", getEnvOrDefault("SES_SENDER", DefaultSenderEmail)),
		RecipientEmails:  splitList(getEnvOrDefault("RECIPIENT_EMAIL", getEnvOrDefault("SES_RECIPIENT", DefaultRecipientEmail))),
		ReportDays:       getEnvInt("REPORT_DAYS", DefaultReportDays),
		Format:           model.Format(getEnvOrDefault("REPORT_FORMAT", string(DefaultFormat))),
		GroupByAccount:   getEnvBool("GROUP_BY_ACCOUNT", true),
		MetricsNamespace: os.Getenv("METRICS_NAMESPACE"),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", DefaultLogLevel),

		rawReportDays:     os.Getenv("REPORT_DAYS"),
		rawGroupByAccount: os.Getenv("GROUP_BY_ACCOUNT"),
	}
}

func (c *Config) Validate() error {
	var errs []error

	if _, err := strconv.Atoi(c.rawReportDays); c.rawReportDays != "" && err != nil {
		errs = append(errs, fmt.Errorf("REPORT_DAYS %q is not a number", c.rawReportDays))
	} else if c.ReportDays < 1 {
		errs = append(errs, fmt.Errorf("REPORT_DAYS must be at least 1, got %d", c.ReportDays))
	}
	if _, err := strconv.ParseBool(c.rawGroupByAccount); c.rawGroupByAccount != "" && err != nil {
		errs = append(errs, fmt.Errorf("GROUP_BY_ACCOUNT %q is not a boolean", c.rawGroupByAccount))
	}
	if _, err := model.ParseFormat(string(c.Format)); err != nil {
		errs = append(errs, fmt.Errorf("REPORT_FORMAT: %w", err))
	}
	if _, err := mail.ParseAddress(c.SenderEmail); err != nil {
		errs = append(errs, fmt.Errorf("SENDER_EMAIL %q: %w", c.SenderEmail, err))
	}
	if len(c.RecipientEmails) == 0 {
		errs = append(errs, errors.New("RECIPIENT_EMAIL must name at least one address"))
	}
	for _, addr := range c.RecipientEmails {
		if _, err := mail.ParseAddress(addr); err != nil {
			errs = append(errs, fmt.Errorf("RECIPIENT_EMAIL %q: %w", addr, err))
		}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	return errors.Join(errs...)
}

// Dimensions returns the Cost Explorer grouping of the report. A plain-text
// report only states the total, so it is not grouped.
func (c *Config) Dimensions() []string {
	if c.Format == model.FormatText {
		return nil
	}
	if c.GroupByAccount {
		return []string{awscostexplorer.DimensionService, awscostexplorer.DimensionLinkedAccount}
	}
	return []string{awscostexplorer.DimensionService}
}

func (c *Config) ReportOptions() model.ReportOptions {
	return model.ReportOptions{
		Days:       c.ReportDays,
		Format:     c.Format,
		Dimensions: c.Dimensions(),
		From:       c.SenderEmail,
		To:         c.RecipientEmails,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
