// Package logmsg acquires shelve log messages from flags, files, an editor,
// or an interactive prompt.
package logmsg

import (
	"context"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/peterh/liner"

	"github.com/NielsdaWheelz/shelf/internal/errors"
	"github.com/NielsdaWheelz/shelf/internal/exec"
	"github.com/NielsdaWheelz/shelf/internal/fs"
	"github.com/NielsdaWheelz/shelf/internal/shelf"
)

// IgnoreLine marks the end of the message in an editor template.
// It and everything below it are dropped.
const IgnoreLine = "--This line, and those below, will be ignored--"

// Options selects where the message comes from.
type Options struct {
	Message     string // -m/--message
	File        string // -F/--file
	EditorCmd   string // resolved editor command, may contain args
	Interactive bool   // editor and prompt are only used when true
	TempDir     string // editor temp file dir; empty means os.TempDir
}

// Source implements shelf.LogMessageSource.
type Source struct {
	FS     fs.FS
	Runner exec.CommandRunner
	Opts   Options

	// Prompt reads a single line; nil uses a liner prompt on the terminal.
	Prompt func(prompt string) (string, error)
}

// New returns a Source for opts.
func New(fsys fs.FS, runner exec.CommandRunner, opts Options) *Source {
	return &Source{FS: fsys, Runner: runner, Opts: opts}
}

var _ shelf.LogMessageSource = (*Source)(nil)

// Acquire returns the log message for one shelve call.
// Precedence: --message, --file, editor, prompt. Without any of them, or
// when not interactive, the message is empty.
func (s *Source) Acquire(ctx context.Context) (shelf.LogMessage, error) {
	opts := s.Opts
	if opts.Message != "" && opts.File != "" {
		return nil, errors.New(errors.EUsage, "--message and --file are mutually exclusive")
	}

	switch {
	case opts.Message != "":
		if !utf8.ValidString(opts.Message) {
			return nil, errors.New(errors.EInvalidEncoding, "log message is not valid UTF-8")
		}
		return fixed(opts.Message), nil
	case opts.File != "":
		return s.fromFile(opts.File)
	case !opts.Interactive:
		return fixed(""), nil
	case strings.TrimSpace(opts.EditorCmd) != "":
		return s.fromEditor(ctx)
	default:
		return s.fromPrompt()
	}
}

func (s *Source) fromFile(path string) (shelf.LogMessage, error) {
	data, err := s.FS.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithDetails(errors.ELogMessage, "failed to read log message file", err,
			map[string]string{"path": path})
	}
	if !utf8.Valid(data) {
		return nil, errors.NewWithDetails(errors.ELogMessage, "log message file is not valid UTF-8",
			map[string]string{"path": path})
	}
	return fixed(string(data)), nil
}

func (s *Source) fromPrompt() (shelf.LogMessage, error) {
	prompt := s.Prompt
	if prompt == nil {
		prompt = linerPrompt
	}
	text, err := prompt("Log message: ")
	switch {
	case err == nil:
	case err == io.EOF:
		text = ""
	case err == liner.ErrPromptAborted:
		return nil, errors.New(errors.ELogMessage, "log message entry aborted")
	default:
		return nil, errors.Wrap(errors.ELogMessage, "failed to read log message", err)
	}
	return fixed(text), nil
}

func linerPrompt(prompt string) (string, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	return line.Prompt(prompt)
}

// fromEditor writes a template to a temp file, runs the editor on it, and
// reads the result back. The file outlives Acquire; Release removes it.
func (s *Source) fromEditor(ctx context.Context) (shelf.LogMessage, error) {
	fields := strings.Fields(s.Opts.EditorCmd)

	path, w, err := s.FS.CreateTemp(s.Opts.TempDir, "shelf-msg-*.txt")
	if err != nil {
		return nil, errors.Wrap(errors.ELogMessage, "failed to create log message file", err)
	}
	_, werr := io.WriteString(w, "\n"+IgnoreLine+"\n")
	if cerr := w.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = s.FS.Remove(path)
		return nil, errors.Wrap(errors.ELogMessage, "failed to write log message file", werr)
	}

	msg := &editorMessage{fs: s.FS, path: path}

	args := append(append([]string{}, fields[1:]...), path)
	res, err := s.Runner.Run(ctx, fields[0], args, exec.RunOpts{Interactive: true})
	if err != nil {
		return nil, msg.keep(errors.WrapWithDetails(errors.ELogMessage, "failed to run editor", err,
			map[string]string{"editor": s.Opts.EditorCmd}))
	}
	if res.ExitCode != 0 {
		return nil, msg.keep(errors.NewWithDetails(errors.ELogMessage,
			"editor exited with status "+strconv.Itoa(res.ExitCode),
			map[string]string{"editor": s.Opts.EditorCmd}))
	}

	data, err := s.FS.ReadFile(path)
	if err != nil {
		return nil, msg.keep(errors.Wrap(errors.ELogMessage, "failed to read edited log message", err))
	}
	if !utf8.Valid(data) {
		return nil, msg.keep(errors.New(errors.ELogMessage, "edited log message is not valid UTF-8"))
	}
	msg.text = stripTemplate(string(data))
	return msg, nil
}

// stripTemplate drops the ignore marker and everything after it, then
// trailing whitespace.
func stripTemplate(text string) string {
	if i := strings.Index(text, IgnoreLine); i >= 0 {
		text = text[:i]
	}
	return strings.TrimRight(text, " \t\r\n")
}

type fixed string

func (f fixed) Text() string            { return string(f) }
func (f fixed) Release(err error) error { return err }

type editorMessage struct {
	fs   fs.FS
	path string
	text string
}

func (m *editorMessage) Text() string { return m.text }

// Release removes the temp file on success and keeps it otherwise, so the
// message can be reused with -F.
func (m *editorMessage) Release(err error) error {
	if err != nil {
		return m.keep(err)
	}
	_ = m.fs.Remove(m.path)
	return nil
}

func (m *editorMessage) keep(err error) error {
	return errors.WithDetail(err, "hint", "log message saved in '"+m.path+"'; reuse it with -F")
}
