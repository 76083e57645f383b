package cobra

import (
	"fmt"
	"io"
	"os"

	"github.com/NielsdaWheelz/shelf/internal/commands"
	"github.com/NielsdaWheelz/shelf/internal/config"
	"github.com/NielsdaWheelz/shelf/internal/diffstat"
	"github.com/NielsdaWheelz/shelf/internal/errors"
	"github.com/NielsdaWheelz/shelf/internal/exec"
	"github.com/NielsdaWheelz/shelf/internal/fs"
	"github.com/NielsdaWheelz/shelf/internal/logmsg"
	"github.com/NielsdaWheelz/shelf/internal/shelf"
	"github.com/NielsdaWheelz/shelf/internal/svnstore"
	"github.com/NielsdaWheelz/shelf/internal/tty"
)

// deps holds the collaborators shared by one command invocation.
type deps struct {
	cwd    string
	fsys   fs.FS
	runner exec.CommandRunner
	cfg    config.Config
}

// loadDeps resolves the working directory and loads the config file.
func loadDeps() (*deps, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(errors.EInternal, "failed to get working directory", err)
	}
	home, _ := os.UserHomeDir()

	fsys := fs.NewRealFS()
	cfg, _, err := config.Load(fsys, config.Path(os.Getenv, globalOpts.ConfigPath, home))
	if err != nil {
		return nil, err
	}

	return &deps{
		cwd:    cwd,
		fsys:   fsys,
		runner: exec.NewRealRunner(),
		cfg:    cfg,
	}, nil
}

// client builds the shelf client. msgs may be nil for commands that never
// create shelves.
func (d *deps) client(stdout io.Writer, msgs shelf.LogMessageSource) *shelf.Client {
	return &shelf.Client{
		Store:       svnstore.New(d.fsys, d.runner, d.cfg.Svn, d.cfg.ShelvesDir, nil),
		Notify:      notifier(stdout),
		LogMessages: msgs,
		Diffstat:    diffstat.New(d.runner, d.cfg.Diffstat),
	}
}

// logMessages builds the log message source for shelve.
func (d *deps) logMessages(message, file, editorCmd string) *logmsg.Source {
	return logmsg.New(d.fsys, d.runner, logmsg.Options{
		Message:     message,
		File:        file,
		EditorCmd:   d.cfg.EditorCommand(editorCmd, os.Getenv),
		Interactive: interactive(),
	})
}

// interactive reports whether prompts and editors may be used.
func interactive() bool {
	return !globalOpts.NonInteractive && tty.IsInteractive()
}

// notifier prints store progress, one line per notification.
func notifier(w io.Writer) shelf.NotifyFunc {
	return func(n shelf.Notification) {
		if n.Text != "" {
			_, _ = fmt.Fprintln(w, n.Text)
			return
		}
		_, _ = fmt.Fprintf(w, "%s '%s'\n", n.Action, n.Path)
	}
}

// readTargets reads a --targets file, or returns nil when path is empty.
func (d *deps) readTargets(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	return commands.ReadTargetsFile(d.fsys, path)
}
