package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"discard/internal/cli"
	"discard/internal/config"
	"discard/internal/logs"
	"discard/internal/notes/data"
	"discard/internal/notes/service"
	"discard/internal/tui"
	"discard/internal/watch"
)

func main() {
	// Parse CLI flags
	dataDirFlag := flag.String("data-dir", "", "Directory holding notes and the debug log")
	flag.StringVar(dataDirFlag, "d", "", "Data directory (shorthand)")
	exportDirFlag := flag.String("export-dir", "", "Cards folder used by export")
	viewFlag := flag.String("view", "", "Initial view: all, soon")
	flag.Parse()

	cfg, err := config.Load(config.CLIFlags{
		DataDir:   *dataDirFlag,
		ExportDir: *exportDirFlag,
		View:      *viewFlag,
	})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	if err := cfg.EnsureDataDir(); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	if err := logs.Initialize(cfg.DataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	store := data.NewFileStore(cfg.DataDir)
	repo := service.NewNoteRepository(store)

	// Check for CLI subcommands
	if args := flag.Args(); len(args) > 0 {
		exitCode := cli.Run(args, repo, cfg)
		logs.Close()
		os.Exit(exitCode)
	}

	// TUI mode
	logs.Logger.Println("Starting app in TUI mode")

	var changes <-chan struct{}
	watcher, err := watch.New(store.Path(data.SaveKey), watch.DefaultDebounce)
	if err != nil {
		logs.Logger.Printf("Warning: not watching notes file: %v", err)
	} else {
		defer watcher.Close()
		changes = watcher.Changes()
	}

	appModel := tui.NewAppModel(cfg, repo, changes)
	defer appModel.Close()

	p := tea.NewProgram(appModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
