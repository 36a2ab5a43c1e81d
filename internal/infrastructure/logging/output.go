package logging

import (
	"io"
	"os"
)

// stdout is the console sink; tests swap it to capture output.
var stdout io.Writer = os.Stdout
