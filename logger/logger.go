package logger

import (
	"log"
	"os"
)

// WarningLogger emits a warning for each non fatal issue, like
// unknown keywords handed over by the cascade.
var WarningLogger = log.New(os.Stdout, "rstyle.warning: ", log.Lmsgprefix)
