package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mpetrov/bookshelf/internal/config"
	"github.com/mpetrov/bookshelf/internal/stats"
	"github.com/mpetrov/bookshelf/internal/store"
)

// StatsCommand prints reading statistics to the terminal.
type StatsCommand struct {
	BooksPath   string
	ReadingPath string
	Weekdays    bool
	Months      bool
}

func NewStatsCommand() *StatsCommand {
	return &StatsCommand{}
}

func (cmd *StatsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)

	fs.StringVar(&cmd.BooksPath, "books", config.DefaultBookDataPath, "Path to the book data file")
	fs.StringVar(&cmd.ReadingPath, "reading", config.DefaultReadingDataPath, "Path to the reading log file")
	fs.BoolVar(&cmd.Weekdays, "weekdays", false, "Also print average pages per day of the week")
	fs.BoolVar(&cmd.Months, "months", false, "Also print books finished per calendar month")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s stats [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print statistics over the book collection and reading log.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *StatsCommand) Run() error {
	session := store.Open(store.New(cmd.BooksPath, cmd.ReadingPath))
	today := time.Now().UTC()

	general := stats.GeneralStats(session.Books, session.Reading, today)
	snapshot := stats.CurrentPeriodSnapshot(session.Books, session.Reading, today)

	fmt.Println("Reading Statistics")
	fmt.Println("==================")
	fmt.Printf("Books in collection:  %d\n", general.TotalBooks)
	fmt.Printf("Average book length:  %.1f pages\n", general.AvgBookLength)
	fmt.Printf("Total pages read:     %.1f\n", general.TotalPagesRead)
	fmt.Printf("Current streak:       %d days\n", general.CurrentStreak)
	if general.AvgPagesPerDaySet {
		fmt.Printf("Average pages/day:    %.2f\n", general.AvgPagesPerDay)
	} else {
		fmt.Printf("Average pages/day:    n/a\n")
	}

	fmt.Println("\nCurrent Period")
	fmt.Println("==============")
	fmt.Printf("Pages today:          %.1f\n", snapshot.PagesToday)
	fmt.Printf("Books this month:     %d\n", snapshot.BooksThisMonth)
	fmt.Printf("Pages this month:     %.1f\n", snapshot.PagesThisMonth)
	fmt.Printf("Books this year:      %d\n", snapshot.BooksThisYear)
	fmt.Printf("Pages this year:      %.1f\n", snapshot.PagesThisYear)

	if cmd.Weekdays {
		fmt.Println("\nPages per Weekday")
		fmt.Println("=================")
		averages, ok := stats.DayOfWeekAverages(session.Reading, today)
		if !ok {
			fmt.Println("No reading history yet")
		} else {
			for d := time.Sunday; d <= time.Saturday; d++ {
				fmt.Printf("%-10s %.2f\n", d.String(), averages[d])
			}
		}
	}

	if cmd.Months {
		fmt.Println("\nBooks per Month")
		fmt.Println("===============")
		counts := stats.MonthlyBookCounts(session.Books)
		for i, count := range counts {
			fmt.Printf("%-10s %d\n", time.Month(i+1).String(), count)
		}
	}

	return nil
}
