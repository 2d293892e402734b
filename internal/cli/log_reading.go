package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mpetrov/bookshelf/internal/config"
	"github.com/mpetrov/bookshelf/internal/library"
	"github.com/mpetrov/bookshelf/internal/readinglog"
	"github.com/mpetrov/bookshelf/internal/store"
)

// LogReadingCommand records pages read on a day without starting the server.
type LogReadingCommand struct {
	BooksPath   string
	ReadingPath string
	Date        string
	Pages       float64
}

func NewLogReadingCommand() *LogReadingCommand {
	return &LogReadingCommand{}
}

func (cmd *LogReadingCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("log-reading", flag.ExitOnError)

	fs.StringVar(&cmd.BooksPath, "books", config.DefaultBookDataPath, "Path to the book data file")
	fs.StringVar(&cmd.ReadingPath, "reading", config.DefaultReadingDataPath, "Path to the reading log file")
	fs.StringVar(&cmd.Date, "date", "", "Day to log in YYYY-MM-DD format (defaults to today)")
	fs.Float64Var(&cmd.Pages, "pages", -1, "Pages read (required, must not be negative)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s log-reading -pages <n> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Record pages read on a day. Logging the same day twice adds up.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Pages < 0 {
		return fmt.Errorf("required flag -pages not provided or negative")
	}

	return nil
}

func (cmd *LogReadingCommand) Run() error {
	date := time.Now().UTC()
	if cmd.Date != "" {
		parsed, ok := library.ParseDate(cmd.Date)
		if !ok {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", cmd.Date)
		}
		date = parsed
	}

	session := store.Open(store.New(cmd.BooksPath, cmd.ReadingPath))
	session.Reading.RecordPages(date, cmd.Pages)

	if err := session.FlushReading(); err != nil {
		return fmt.Errorf("failed to save reading log: %w", err)
	}

	day := readinglog.Day(date)
	fmt.Printf("Logged %.1f pages on %s (day total %.1f)\n",
		cmd.Pages, library.FormatDate(day), session.Reading.PagesOn(day))
	return nil
}
