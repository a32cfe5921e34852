package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"tasktrack/internal/domain/interfaces"
	"tasktrack/internal/domain/services"
	"tasktrack/internal/impl/config"
	"tasktrack/internal/impl/export"
	repositoriesJson "tasktrack/internal/impl/repositories/json"
	"tasktrack/internal/tui"
)

var (
	version = "unknown" // This should be set during build with -ldflags="-X main.version=1.0.0"
)

func main() {
	// Check version flag first
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Println(version)
		os.Exit(0)
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tasktrack [list [keyword] | export csv|text] [--file=path]\n")
		flag.PrintDefaults()
	}

	taskFile := flag.String("file", "", "Path to the tasks file (overrides configuration)")

	// Default mode is the interactive list
	modeStr := "tui"

	// Check the first non-flag argument for the mode
	if len(os.Args) > 1 && (os.Args[1] == "list" || os.Args[1] == "export") {
		modeStr = os.Args[1]
		os.Args = slices.Delete(os.Args, 0, 1)
	}

	// Parse the remaining arguments which are flags
	flag.Parse()

	logConfig := zap.NewDevelopmentConfig()
	logConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger, err := logConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	workDir, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to get current directory", zap.Error(err))
	}

	cfg, err := config.Load(workDir, logger)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if *taskFile != "" {
		cfg.TaskFile = *taskFile
		if !filepath.IsAbs(cfg.TaskFile) {
			cfg.TaskFile = filepath.Join(workDir, cfg.TaskFile)
		}
	}

	taskRepo := repositoriesJson.NewJSONTaskRepository(cfg.TaskFile, logger)
	taskService, err := services.NewTaskService(context.Background(), taskRepo, logger)
	if err != nil {
		logger.Fatal("Failed to load tasks", zap.Error(err))
	}

	switch modeStr {
	case "list":
		runList(taskService, flag.Arg(0))
	case "export":
		if err := runExport(taskService, flag.Arg(0), cfg.ExportDir); err != nil {
			logger.Fatal("Export failed", zap.Error(err))
		}
	default:
		p := tea.NewProgram(tui.NewTUI(taskService, export.NewCSVExporter(), export.NewTextExporter(), cfg.ExportDir), tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			log.Fatal(err)
		}
	}
}

// runList prints the collection to stdout, one line per task, so the tool
// stays usable from scripts. A keyword narrows the listing to search matches.
func runList(taskService services.TaskService, keyword string) {
	tasks := taskService.Tasks()
	if keyword != "" {
		tasks = taskService.Search(keyword)
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	for i, t := range tasks {
		title := t.Title
		if t.Color != "" {
			title = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color)).Render(title)
		}
		line := fmt.Sprintf("%2d. %s %s %s [%s]", i+1, t.StatusIcon(), t.Priority.Icon(), title, t.Category)
		if t.DueDate != "" {
			line += " due " + t.DueDate
		}
		fmt.Println(line)
	}
}

func runExport(taskService services.TaskService, format, exportDir string) error {
	var exporter interfaces.TaskExporter
	var name string

	switch format {
	case "csv":
		exporter = export.NewCSVExporter()
		name = "tasks_export.csv"
	case "text":
		exporter = export.NewTextExporter()
		name = "tasks_export.txt"
	default:
		return fmt.Errorf("unknown export format %q: expected csv or text", format)
	}

	path := filepath.Join(exportDir, name)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := exporter.Export(file, taskService.Tasks()); err != nil {
		return err
	}

	fmt.Printf("Tasks exported to %s\n", path)
	return nil
}
