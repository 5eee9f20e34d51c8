package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"upb/internal/core"
	"upb/internal/netclient"
	"upb/internal/printer"
	"upb/internal/storage"
)

const defaultPrompt = "upb> "

// REPL читает строки, диспетчеризует их и печатает результат.
// Ошибки обработчиков не завершают цикл: каждая выводится одной строкой.
type REPL struct {
	Registry *core.Registry
	Store    storage.Store // nil допустим: журнал отключен
	Reload   func(ctx context.Context) error
	In       io.Reader
	Out      io.Writer
	Log      *slog.Logger
	Prompt   string
}

// Run запускает цикл до quit или конца ввода.
func (r *REPL) Run(ctx context.Context) error {
	if r.Prompt == "" {
		r.Prompt = defaultPrompt
	}
	r.banner()

	scanner := bufio.NewScanner(r.In)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024)
	fmt.Fprint(r.Out, r.Prompt)
	for scanner.Scan() {
		if quit := r.ExecuteLine(ctx, scanner.Text()); quit {
			return nil
		}
		fmt.Fprint(r.Out, r.Prompt)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	fmt.Fprintln(r.Out)
	return nil
}

func (r *REPL) banner() {
	printer.Mutedln(r.Out, "=== upb (JSON API browser) ===")
	printer.Mutedln(r.Out, "commands: "+strings.Join(r.verbs(), ", "))
	fmt.Fprintln(r.Out)
}

func (r *REPL) verbs() []string {
	verbs := r.Registry.Verbs()
	return append(verbs, "help", "reload", "quit")
}

// ExecuteLine выполняет одну строку ввода; true означает завершение цикла.
func (r *REPL) ExecuteLine(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "quit", "exit":
		fmt.Fprintln(r.Out, "Bye!")
		return true
	case "help":
		fmt.Fprintln(r.Out, "commands: "+strings.Join(r.verbs(), ", "))
		return false
	case "reload":
		r.record(ctx, verb, args, r.reload(ctx))
		return false
	}

	lines, err := r.Registry.Dispatch(ctx, verb, args)
	status := "ok"
	switch {
	case err == nil:
		printer.Render(r.Out, lines)
	case errors.Is(err, core.ErrUnknownVerb):
		status = "unknown_verb"
		printer.Errorf(r.Out, "unrecognized command %q, try: help", verb)
	default:
		status = r.renderFailure(verb, err)
	}
	r.record(ctx, verb, args, status)
	return false
}

func (r *REPL) renderFailure(verb string, err error) string {
	var usageErr *core.UsageError
	if errors.As(err, &usageErr) {
		printer.Errorf(r.Out, "%v", usageErr)
		return "usage_error"
	}
	var netErr *netclient.NetworkError
	if errors.As(err, &netErr) {
		printer.Errorf(r.Out, "%s failed: %v", verb, netErr.Err)
		return "network_error"
	}
	printer.Errorf(r.Out, "%s failed: %v", verb, err)
	return "error"
}

func (r *REPL) reload(ctx context.Context) string {
	if r.Reload == nil {
		fmt.Fprintln(r.Out, "nothing to reload")
		return "ok"
	}
	if err := r.Reload(ctx); err != nil {
		printer.Errorf(r.Out, "reload failed: %v", err)
		return "error"
	}
	fmt.Fprintln(r.Out, "configuration reloaded")
	return "ok"
}

func (r *REPL) record(ctx context.Context, verb string, args []string, status string) {
	if r.Store == nil {
		return
	}
	err := r.Store.SaveEntry(ctx, storage.Entry{
		Verb:   verb,
		Args:   strings.Join(args, " "),
		Status: status,
	})
	if err != nil && r.Log != nil {
		r.Log.Warn("save history entry", "verb", verb, "err", err)
	}
}
