package testutils

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/benoitkugler/rstyle/logger"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// AssertEqual fails the test with a readable diff if [got] and [exp] differ.
func AssertEqual(t *testing.T, got, exp interface{}, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(exp, got, opts...); diff != "" {
		t.Fatalf("unexpected value (-want +got):\n%s", diff)
	}
}

// CapturedLogs redirects the warnings emitted by [logger.WarningLogger].
type CapturedLogs struct {
	buf bytes.Buffer
}

// CaptureLogs starts capturing the warnings. Call [CapturedLogs.Logs]
// or [CapturedLogs.CheckEqual] to restore the default output.
func CaptureLogs() *CapturedLogs {
	out := new(CapturedLogs)
	logger.WarningLogger.SetOutput(&out.buf)
	return out
}

// Logs stops the capture and returns the logged messages, without prefix.
func (c *CapturedLogs) Logs() []string {
	logger.WarningLogger.SetOutput(os.Stdout)
	var out []string
	for _, line := range strings.Split(c.buf.String(), "\n") {
		if line == "" {
			continue
		}
		out = append(out, strings.TrimPrefix(line, logger.WarningLogger.Prefix()))
	}
	return out
}

// CheckEqual stops the capture and compares the messages with [refs].
func (c *CapturedLogs) CheckEqual(refs []string, t *testing.T) {
	t.Helper()
	AssertEqual(t, c.Logs(), refs, cmpopts.EquateEmpty())
}
