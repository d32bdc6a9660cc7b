package cli

import (
	"fmt"
	"io"
	"os"

	"discard/internal/config"
	"discard/internal/notes/service"
)

type runner struct {
	out  io.Writer
	err  io.Writer
	repo service.NoteRepository
	cfg  *config.Config

	purged int
}

// Run executes the CLI with the given arguments and returns the exit code.
// Expired notes are purged before any command runs.
func Run(args []string, repo service.NoteRepository, cfg *config.Config) int {
	r := &runner{out: os.Stdout, err: os.Stderr, repo: repo, cfg: cfg}
	return r.run(args)
}

func (r *runner) run(args []string) int {
	if len(args) == 0 {
		r.printUsage()
		return 1
	}

	r.purged = len(r.repo.PurgeExpired())

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "add", "a", "new":
		return r.runAdd(cmdArgs)
	case "list", "ls", "l":
		return r.runList(cmdArgs)
	case "show", "cat":
		return r.runShow(cmdArgs)
	case "edit", "e":
		return r.runEdit(cmdArgs)
	case "delete", "rm", "del":
		return r.runDelete(cmdArgs)
	case "sweep":
		return r.runSweep()
	case "export":
		return r.runExport(cmdArgs)
	case "import":
		return r.runImport(cmdArgs)
	case "help", "-h", "--help":
		r.printUsage()
		return 0
	default:
		fmt.Fprintf(r.err, "Unknown command: %s\n", command)
		r.printUsage()
		return 1
	}
}

func (r *runner) printUsage() {
	fmt.Fprintln(r.out, `discard - Notes that delete themselves

Usage: discard [flags] [command] [arguments]

Commands:
  add, a        Add a note
                discard add -e "1 day" "Title" "Some content"
  list, ls, l   List notes
                discard list            # All notes
                discard list --soon     # Notes expiring within 7 days
  show <id>     Print a note in full
  edit <id>     Change a note
                discard edit -t "New title" -c "New content" -e 1w <id>
  delete, rm    Delete a note
                discard delete <id>
  sweep         Delete expired notes now
  export [dir]  Write notes as markdown cards (default: export_dir)
  import <dir>  Add notes from markdown cards

Expiry (-e) is one of: 30 seconds, 30 minutes, 1 hour, 1 day, 1 week,
1 month, 6 months, 1 year; short forms (30s, 1h, 1w, 6mo, ...) and partial
names ("6 mo", "week") are accepted.

Flags:
  -d, --data-dir <dir>     Directory holding notes and the debug log
      --export-dir <dir>   Cards folder used by export
      --view <name>        Initial TUI view: all, soon

Running discard without arguments launches the interactive TUI.
IDs may be shortened to any unique prefix of at least 4 characters.`)
}
