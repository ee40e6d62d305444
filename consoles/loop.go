package consoles

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/reusee/motorbike/procs"
)

type Proc = procs.Proc[context.Context]

// Run prints the banner and reads commands until quit, interrupt or end of input.
func (c *Console) Run(ctx context.Context, reader LineReader) error {
	return procs.Run[context.Context](ctx, procs.Procs[context.Context]{
		procs.Func[context.Context](func(ctx context.Context) (Proc, error) {
			c.println(Banner)
			c.println(CommandsLine)
			c.println()
			return nil, nil
		}),
		c.commandStep(reader),
	})
}

func (c *Console) commandStep(reader LineReader) Proc {
	var step procs.Func[context.Context]
	step = func(ctx context.Context) (Proc, error) {
		line, ok, err := c.readLine(ctx, reader, PromptCommand)
		if err != nil || !ok {
			return nil, err
		}
		if c.exec(ctx, line) {
			return nil, nil
		}
		if q := c.pending; q != nil {
			c.pending = nil
			return c.questionStep(reader, q, step), nil
		}
		return step, nil
	}
	return step
}

func (c *Console) questionStep(reader LineReader, q *question, cont Proc) Proc {
	return procs.Func[context.Context](func(ctx context.Context) (Proc, error) {
		line, ok, err := c.readLine(ctx, reader, q.prompt)
		if err != nil || !ok {
			return nil, err
		}
		func() {
			defer func() {
				if p := recover(); p != nil {
					c.logger.ErrorContext(ctx, "answer panicked", "panic", p)
					c.printf(MsgUnexpected, p)
				}
			}()
			q.answer(line)
		}()
		return cont, nil
	})
}

// readLine reports ok false when the player interrupted or input ended.
func (c *Console) readLine(ctx context.Context, reader LineReader, prompt string) (string, bool, error) {
	reader.SetPrompt(prompt)
	line, err := reader.Readline()
	if errors.Is(err, ErrInterrupt) || errors.Is(err, io.EOF) {
		c.logger.InfoContext(ctx, "input ended", "reason", err)
		c.println(MsgInterrupted)
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read input: %w", err)
	}
	return line, true, nil
}
