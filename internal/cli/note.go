package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"discard/internal/cards"
	"discard/internal/expiry"
	"discard/internal/notes/data"
)

func (r *runner) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(r.err)
	return fs
}

func (r *runner) runAdd(args []string) int {
	fs := r.newFlagSet("add")
	expiresIn := fs.String("e", r.cfg.DefaultExpiry.String(), "Expiry")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(r.err, "Error: note title required")
		fmt.Fprintln(r.err, "Usage: discard add [-e expiry] <title> [content...]")
		return 1
	}

	bucket, err := expiry.MatchBucket(*expiresIn)
	if err != nil {
		fmt.Fprintf(r.err, "Error: %v\n", err)
		return 1
	}

	title := fs.Arg(0)
	content := strings.Join(fs.Args()[1:], " ")
	note := data.NewNote(strings.TrimSpace(title), content, bucket.Duration(), r.repo.Now())
	if err := note.Validate(); err != nil {
		fmt.Fprintf(r.err, "Error: %v\n", err)
		return 1
	}

	r.repo.Add(note)

	fmt.Fprintf(r.out, "Added: %s (expires in %s)\n", note.Title, expiry.Describe(note, r.repo.Now()))
	fmt.Fprintf(r.out, "ID: %s\n", note.ID)
	return 0
}

func (r *runner) runList(args []string) int {
	fs := r.newFlagSet("list")
	soon := fs.Bool("soon", false, "Show only notes expiring within 7 days")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	var notes []data.Note
	if *soon {
		notes = r.repo.ExpiringSoon()
	} else {
		notes = r.repo.List()
	}

	if len(notes) == 0 {
		if *soon {
			fmt.Fprintln(r.out, "No notes expire soon.")
		} else {
			fmt.Fprintln(r.out, "No notes. Write one with: discard add <title>")
		}
		return 0
	}

	now := r.repo.Now()
	for _, n := range notes {
		printNote(r.out, n, expiry.Describe(n, now))
	}

	fmt.Fprintf(r.out, "\n%d note(s)\n", len(notes))
	return 0
}

func (r *runner) runShow(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(r.err, "Error: note ID required")
		fmt.Fprintln(r.err, "Usage: discard show <id>")
		return 1
	}

	note, err := r.repo.Find(args[0])
	if err != nil {
		fmt.Fprintf(r.err, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(r.out, "%s\n", note.Title)
	fmt.Fprintf(r.out, "ID:      %s\n", note.ID)
	fmt.Fprintf(r.out, "Expires: %s (in %s)\n", note.ExpiryDate.Local().Format("2006-01-02 15:04:05"), expiry.Describe(note, r.repo.Now()))
	if note.Content != "" {
		fmt.Fprintf(r.out, "\n%s\n", note.Content)
	}
	return 0
}

func (r *runner) runEdit(args []string) int {
	fs := r.newFlagSet("edit")
	title := fs.String("t", "", "New title")
	content := fs.String("c", "", "New content")
	expiresIn := fs.String("e", "", "New expiry, counted from now")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(r.err, "Error: note ID required")
		fmt.Fprintln(r.err, "Usage: discard edit [-t title] [-c content] [-e expiry] <id>")
		return 1
	}

	note, err := r.repo.Find(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(r.err, "Error: %v\n", err)
		return 1
	}

	changed := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			note.Title = strings.TrimSpace(*title)
		case "c":
			note.Content = *content
		}
		changed = true
	})

	if *expiresIn != "" {
		bucket, err := expiry.MatchBucket(*expiresIn)
		if err != nil {
			fmt.Fprintf(r.err, "Error: %v\n", err)
			return 1
		}
		note.ExpiryDate = r.repo.Now().Add(bucket.Duration())
	}

	if !changed {
		fmt.Fprintln(r.err, "Error: nothing to change (use -t, -c or -e)")
		return 1
	}
	if err := note.Validate(); err != nil {
		fmt.Fprintf(r.err, "Error: %v\n", err)
		return 1
	}

	r.repo.Update(note)
	fmt.Fprintf(r.out, "Updated: %s (expires in %s)\n", note.Title, expiry.Describe(note, r.repo.Now()))
	return 0
}

func (r *runner) runDelete(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(r.err, "Error: note ID required")
		fmt.Fprintln(r.err, "Usage: discard delete <id>")
		return 1
	}

	note, err := r.repo.Find(args[0])
	if err != nil {
		fmt.Fprintf(r.err, "Error: %v\n", err)
		return 1
	}

	r.repo.Delete(note)
	fmt.Fprintf(r.out, "Deleted: %s\n", note.Title)
	return 0
}

// Expired notes are already gone by the time a command runs, so sweep only
// reports.
func (r *runner) runSweep() int {
	fmt.Fprintf(r.out, "Removed %d expired note(s), %d left\n", r.purged, len(r.repo.List()))
	return 0
}

func (r *runner) runExport(args []string) int {
	dir := r.cfg.ExportDir
	if len(args) > 0 {
		dir = args[0]
	}

	res, err := cards.Export(dir, r.repo.List())
	if err != nil {
		fmt.Fprintf(r.err, "Error exporting cards: %v\n", err)
		return 1
	}

	fmt.Fprintf(r.out, "Exported %d card(s) to %s", res.Written, dir)
	if res.Removed > 0 {
		fmt.Fprintf(r.out, ", removed %d stale", res.Removed)
	}
	fmt.Fprintln(r.out)
	return 0
}

func (r *runner) runImport(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(r.err, "Error: cards directory required")
		fmt.Fprintln(r.err, "Usage: discard import <dir>")
		return 1
	}

	res, err := cards.Import(args[0], r.repo)
	if err != nil {
		fmt.Fprintf(r.err, "Error importing cards: %v\n", err)
		return 1
	}

	fmt.Fprintf(r.out, "Imported %d note(s)", res.Added)
	if skipped := res.Existing + res.Expired + res.Invalid; skipped > 0 {
		fmt.Fprintf(r.out, ", skipped %d (%d existing, %d expired, %d invalid)", skipped, res.Existing, res.Expired, res.Invalid)
	}
	fmt.Fprintln(r.out)
	return 0
}

func printNote(w io.Writer, n data.Note, expiresIn string) {
	fmt.Fprintf(w, "[%s] %s  (expires in %s)\n", n.ShortID(), n.Title, expiresIn)

	if n.Content == "" {
		return
	}
	first, _, more := strings.Cut(n.Content, "\n")
	if more {
		first += " ..."
	}
	fmt.Fprintf(w, "           %s\n", first)
}
