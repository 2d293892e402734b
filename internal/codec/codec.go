// Package codec reads and writes the two flat-file record formats: one book
// per line and one reading-log entry per line, fields joined with a literal
// multi-character delimiter. No escaping is performed; a field value that
// contains the delimiter corrupts the line. This is a known limitation of
// the format, kept for compatibility with existing data files.
package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mpetrov/bookshelf/internal/library"
	"github.com/mpetrov/bookshelf/internal/readinglog"
)

// Delimiter separates fields within a record line.
const Delimiter = "@!@"

const (
	bookFieldCount    = 7
	readingFieldCount = 5
)

// EncodeBook renders a book as a single record line without the trailing
// newline.
func EncodeBook(b library.Book) string {
	fields := []string{
		b.Title,
		b.Author,
		b.Series,
		strconv.Itoa(b.Pages),
		strconv.Itoa(b.Words),
		b.StartDate,
		b.EndDate,
	}
	return strings.Join(fields, Delimiter)
}

// DecodeBook parses a single book record line.
func DecodeBook(line string) (library.Book, error) {
	fields := strings.Split(line, Delimiter)
	if len(fields) != bookFieldCount {
		return library.Book{}, fmt.Errorf("book record has %d fields, want %d", len(fields), bookFieldCount)
	}

	pages, err := strconv.Atoi(fields[3])
	if err != nil {
		return library.Book{}, fmt.Errorf("bad page count %q: %w", fields[3], err)
	}
	words, err := strconv.Atoi(fields[4])
	if err != nil {
		return library.Book{}, fmt.Errorf("bad word count %q: %w", fields[4], err)
	}

	return library.Book{
		Title:     fields[0],
		Author:    fields[1],
		Series:    fields[2],
		Pages:     pages,
		Words:     words,
		StartDate: fields[5],
		EndDate:   fields[6],
	}, nil
}

// EncodeBooks writes every book in collection order, one record per line.
func EncodeBooks(w io.Writer, col *library.Collection) error {
	bw := bufio.NewWriter(w)
	for _, b := range col.All() {
		if _, err := bw.WriteString(EncodeBook(b)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeBooks reads book records until end of input. Decoding stops at the
// first malformed line; the collection holds every record parsed before it,
// so callers can still present a usable partial state alongside the error.
func DecodeBooks(r io.Reader) (*library.Collection, error) {
	col := library.NewCollection()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		b, err := DecodeBook(line)
		if err != nil {
			return col, fmt.Errorf("line %d: %w", lineNo, err)
		}
		col.Add(b)
	}
	if err := scanner.Err(); err != nil {
		return col, fmt.Errorf("reading book records: %w", err)
	}
	return col, nil
}

// EncodeReadingEntry renders one day of the reading log. The weekday and
// month are stored as uppercase English names; the weekday is redundant and
// kept only so the data file stays readable by eye.
func EncodeReadingEntry(date time.Time, pages float64) string {
	fields := []string{
		strings.ToUpper(date.Weekday().String()),
		strings.ToUpper(date.Month().String()),
		strconv.Itoa(date.Day()),
		strconv.Itoa(date.Year()),
		strconv.FormatFloat(pages, 'g', -1, 64),
	}
	return strings.Join(fields, Delimiter)
}

// DecodeReadingEntry parses one reading-log line. The date is rebuilt from
// the month name, day and year; the stored weekday name is ignored.
func DecodeReadingEntry(line string) (time.Time, float64, error) {
	fields := strings.Split(line, Delimiter)
	if len(fields) != readingFieldCount {
		return time.Time{}, 0, fmt.Errorf("reading record has %d fields, want %d", len(fields), readingFieldCount)
	}

	month, err := parseMonth(fields[1])
	if err != nil {
		return time.Time{}, 0, err
	}
	day, err := strconv.Atoi(fields[2])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("bad day of month %q: %w", fields[2], err)
	}
	if day < 1 || day > 31 {
		return time.Time{}, 0, fmt.Errorf("day of month %d out of range", day)
	}
	year, err := strconv.Atoi(fields[3])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("bad year %q: %w", fields[3], err)
	}
	pages, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("bad page count %q: %w", fields[4], err)
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), pages, nil
}

// EncodeReadingLog writes every logged day in date order, one line each.
func EncodeReadingLog(w io.Writer, log *readinglog.Log) error {
	bw := bufio.NewWriter(w)
	for _, d := range log.Dates() {
		if _, err := bw.WriteString(EncodeReadingEntry(d, log.PagesOn(d))); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeReadingLog reads reading-log records until end of input, merging
// repeated dates additively. Like DecodeBooks it stops at the first
// malformed line and returns the entries parsed so far with the error.
func DecodeReadingLog(r io.Reader) (*readinglog.Log, error) {
	log := readinglog.New()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		date, pages, err := DecodeReadingEntry(line)
		if err != nil {
			return log, fmt.Errorf("line %d: %w", lineNo, err)
		}
		log.RecordPages(date, pages)
	}
	if err := scanner.Err(); err != nil {
		return log, fmt.Errorf("reading log records: %w", err)
	}
	return log, nil
}

func parseMonth(name string) (time.Month, error) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown month name %q", name)
}
