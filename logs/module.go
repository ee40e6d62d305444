package logs

import (
	"io"
	"os"
	"testing"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Writer receives terminal diagnostics. It is never the action log.
type Writer io.Writer

func (Module) Writer(
	t *testing.T,
) Writer {
	if t != nil {
		return t.Output()
	}
	return os.Stderr
}
