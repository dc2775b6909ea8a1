package flag

import (
	"github.com/elC0mpa/aws-cost-reporter/config"
	"github.com/elC0mpa/aws-cost-reporter/model"
	"github.com/urfave/cli/v2"
)

func NewService() *service {
	return &service{}
}

// Flags defines the command line options; defaults come from the loaded configuration
func (s *service) Flags(defaults *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "region",
			Value: defaults.Region,
			Usage: "AWS region",
		},
		&cli.StringFlag{
			Name:  "profile",
			Value: defaults.Profile,
			Usage: "AWS profile configuration",
		},
		&cli.IntFlag{
			Name:    "days",
			Aliases: []string{"d"},
			Value:   defaults.ReportDays,
			Usage:   "Number of days to report, ending yesterday (1 = yesterday only)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   string(defaults.Format),
			Usage:   "Report format (text, html)",
		},
		&cli.BoolFlag{
			Name:  "send",
			Usage: "Email the report instead of only printing it",
		},
		&cli.BoolFlag{
			Name:  "chart",
			Usage: "Display a bar chart of daily totals",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: defaults.LogLevel,
			Usage: "Log level (debug, info, warn, error)",
		},
	}
}

func (s *service) GetParsedFlags(c *cli.Context) (model.Flags, error) {
	format, err := model.ParseFormat(c.String("format"))
	if err != nil {
		return model.Flags{}, err
	}

	return model.Flags{
		Region:   c.String("region"),
		Profile:  c.String("profile"),
		Days:     c.Int("days"),
		Format:   format,
		Send:     c.Bool("send"),
		Chart:    c.Bool("chart"),
		LogLevel: c.String("log-level"),
	}, nil
}
