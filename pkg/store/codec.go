package store

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Encode writes t in the todolist text format. Every non-empty day becomes a
// block: a DD/MM/YYYY header stamped with month (1..12) and year, one line per
// task, and a closing blank line.
func Encode(w io.Writer, t *Tasks, month, year int) error {
	bw := bufio.NewWriter(w)
	for i, slot := range t.days {
		if len(slot) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%02d/%02d/%d\n", i+1, month, year); err != nil {
			return err
		}
		for _, task := range slot {
			if _, err := bw.WriteString(task + "\n"); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode parses the todolist text format. Parsing stops quietly at the first
// header that is missing or malformed; records read before it are kept.
func Decode(r io.Reader) *Tasks {
	t := NewTasks()
	br := bufio.NewReader(r)
	for {
		line, ok := nextHeaderLine(br)
		if !ok {
			return t
		}
		day, ok := parseHeader(line)
		if !ok {
			return t
		}
		for {
			task, err := br.ReadString('\n')
			task = strings.TrimRight(task, "\r\n")
			if task != "" {
				// Overflowing lines are consumed and dropped.
				t.Add(day, task)
			}
			if task == "" || err != nil {
				break
			}
		}
	}
}

// nextHeaderLine skips blank lines and returns the next non-blank one.
func nextHeaderLine(br *bufio.Reader) (string, bool) {
	for {
		line, err := br.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			return line, true
		}
		if err != nil {
			return "", false
		}
	}
}

// parseHeader accepts D/M/Y with integer fields and returns the day.
func parseHeader(line string) (int, bool) {
	parts := strings.Split(line, "/")
	if len(parts) != 3 {
		return 0, false
	}
	var fields [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, false
		}
		fields[i] = n
	}
	if fields[0] < 1 || fields[0] > MaxDays {
		return 0, false
	}
	return fields[0], true
}
