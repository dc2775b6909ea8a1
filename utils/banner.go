package utils

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

var loadingSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))

func DrawBanner() {
	figure.NewColorFigure("AWS Cost Report", "small", "yellow", true).Print()
}

func StartSpinner() {
	loadingSpinner.Suffix = " Querying Cost Explorer..."
	loadingSpinner.Start()
}

func StopSpinner() {
	loadingSpinner.Stop()
}
