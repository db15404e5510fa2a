package debuglog

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Debug bool

// Enable switches the standard logger to debug level.
func Enable() {
	Debug = true
	logrus.SetLevel(logrus.DebugLevel)
}

func Log(format string, args ...interface{}) {
	if Debug {
		logrus.Debugf(format, args...)
	}
}

func init() {
	if os.Getenv("BROWSERCOMPAT_DEBUG") != "" {
		Enable()
	}
}
