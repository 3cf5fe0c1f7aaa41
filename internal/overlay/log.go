package overlay

import (
	"os"

	"github.com/sirupsen/logrus"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// SetVerbose toggles debug logging, which includes the parsed datasets.
func SetVerbose(verbose bool) {
	if verbose {
		stderr.SetLevel(logrus.DebugLevel)
		return
	}
	stderr.SetLevel(logrus.InfoLevel)
}
