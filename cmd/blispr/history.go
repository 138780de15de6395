package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// fileHistory is a readline.History backed by a plain text file, one
// input line per line. Entries are appended as they are written so
// history survives an abrupt exit.
type fileHistory struct {
	file  *os.File
	lines []string
}

// openHistory loads path (creating it when absent) and reports
// whether it already existed.
func openHistory(path string) (*fileHistory, bool, error) {
	existed := true
	if _, err := os.Stat(path); os.IsNotExist(err) {
		existed = false
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, existed, err
	}

	h := &fileHistory{file: file}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			h.lines = append(h.lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		file.Close()
		return nil, existed, err
	}
	return h, existed, nil
}

// Write appends a line to the session history and the backing file.
func (h *fileHistory) Write(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return len(h.lines), nil
	}
	h.lines = append(h.lines, s)
	if h.file != nil {
		if _, err := h.file.WriteString(s + "\n"); err != nil {
			return len(h.lines), err
		}
	}
	return len(h.lines), nil
}

// GetLine returns the history line at position i.
func (h *fileHistory) GetLine(i int) (string, error) {
	if i < 0 || i >= len(h.lines) {
		return "", fmt.Errorf("history index %d out of range", i)
	}
	return h.lines[i], nil
}

// Len returns the number of history lines.
func (h *fileHistory) Len() int {
	return len(h.lines)
}

// Dump returns the raw history lines.
func (h *fileHistory) Dump() interface{} {
	return h.lines
}

func (h *fileHistory) Close() error {
	if h.file == nil {
		return nil
	}
	err := h.file.Close()
	h.file = nil
	return err
}
