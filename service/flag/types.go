package flag

import (
	"github.com/elC0mpa/aws-cost-reporter/config"
	"github.com/elC0mpa/aws-cost-reporter/model"
	"github.com/urfave/cli/v2"
)

type service struct{}

type FlagService interface {
	Flags(defaults *config.Config) []cli.Flag
	GetParsedFlags(c *cli.Context) (model.Flags, error)
}
