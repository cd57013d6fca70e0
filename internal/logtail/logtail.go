package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Prefix is the tag written in front of every trace line.
const Prefix = "sheetcal"

const stampLayout = "2006/01/02 15:04:05"

// Entry is one parsed trace line.
type Entry struct {
	Time      time.Time
	Component string
	Message   string
	Raw       string
}

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open trace log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read trace log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count, idx := 0, 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read trace log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := range lines {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// ReadEntries reads and parses the last maxLines trace lines.
func ReadEntries(path string, maxLines int) ([]Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries, nil
}

// Parse splits a line written through the standard logger with the trace
// prefix. Lines in any other shape come back with only Message set.
func Parse(line string) Entry {
	e := Entry{Raw: line, Message: line}

	rest := strings.TrimPrefix(line, Prefix+" ")
	if len(rest) >= len(stampLayout) {
		if ts, err := time.ParseInLocation(stampLayout, rest[:len(stampLayout)], time.Local); err == nil {
			e.Time = ts
			rest = strings.TrimSpace(rest[len(stampLayout):])
		}
	}

	if comp, msg, ok := strings.Cut(rest, ": "); ok && !strings.ContainsAny(comp, "()") {
		e.Component = comp
		e.Message = msg
		return e
	}
	e.Message = rest
	return e
}
