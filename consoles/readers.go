package consoles

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/reusee/motorbike/cmds"
	"golang.org/x/term"
)

// ErrInterrupt is returned by a LineReader when the player hits Ctrl-C.
var ErrInterrupt = errors.New("interrupt")

type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

type readlineReader struct {
	*readline.Instance
	ctx  context.Context
	stop func() bool
}

func (r readlineReader) Readline() (string, error) {
	line, err := r.Instance.Readline()
	if errors.Is(err, readline.ErrInterrupt) || r.ctx.Err() != nil {
		return line, ErrInterrupt
	}
	return line, err
}

func (r readlineReader) Close() error {
	r.stop()
	return r.Instance.Close()
}

// NewReadline opens an editing terminal reader. Canceling ctx closes it, ending a pending Readline.
func NewReadline(ctx context.Context, historyFile string) (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      PromptCommand,
		HistoryFile: historyFile,
	})
	if err != nil {
		return nil, err
	}
	stop := context.AfterFunc(ctx, func() {
		rl.Close()
	})
	return readlineReader{
		Instance: rl,
		ctx:      ctx,
		stop:     stop,
	}, nil
}

// lineReader reads plain lines, echoing the prompt like a terminal would.
// Reads run ahead in a goroutine so a canceled context can interrupt a blocked read.
type lineReader struct {
	out    io.Writer
	prompt string
	lines  chan readResult
	done   <-chan struct{}
	closed chan struct{}
	once   sync.Once
}

type readResult struct {
	line string
	err  error
}

// NewLineReader reads lines from r. Readline returns ErrInterrupt once ctx is done.
func NewLineReader(ctx context.Context, r io.Reader, out io.Writer) LineReader {
	l := &lineReader{
		out:    out,
		lines:  make(chan readResult),
		done:   ctx.Done(),
		closed: make(chan struct{}),
	}
	go l.read(bufio.NewReader(r))
	return l
}

func (l *lineReader) read(r *bufio.Reader) {
	defer close(l.lines)
	for {
		line, err := r.ReadString('\n')
		// a last line without newline still counts
		if line != "" {
			if !l.send(readResult{line: strings.TrimRight(line, "\r\n")}) {
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				l.send(readResult{err: err})
			}
			return
		}
	}
}

func (l *lineReader) send(res readResult) bool {
	select {
	case l.lines <- res:
		return true
	case <-l.closed:
		return false
	}
}

func (l *lineReader) SetPrompt(prompt string) {
	l.prompt = prompt
}

func (l *lineReader) Readline() (string, error) {
	fmt.Fprint(l.out, l.prompt)
	select {
	case res, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	case <-l.done:
		return "", ErrInterrupt
	}
}

func (l *lineReader) Close() error {
	l.once.Do(func() {
		close(l.closed)
	})
	return nil
}

var plainFlag = cmds.Switch("-plain", "read plain lines even on a terminal, without editing or history")

// OpenTerminal returns readline on a terminal and a plain line reader on piped input.
// Both return ErrInterrupt once ctx is done.
type OpenTerminal func(ctx context.Context) (LineReader, error)

func (Module) OpenTerminal() OpenTerminal {
	return func(ctx context.Context) (LineReader, error) {
		if *plainFlag || !term.IsTerminal(int(os.Stdin.Fd())) {
			return NewLineReader(ctx, os.Stdin, os.Stdout), nil
		}
		var historyFile string
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".motorbike_history")
		}
		return NewReadline(ctx, historyFile)
	}
}
