package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// ReadFile parses a CSV job configuration into a raw key/value map.
//
// The first row is skipped as a header when its first cell, trimmed and
// lowercased, equals "key"; otherwise it is stored as a data pair (a missing
// second column is treated as the empty string). Every later row needs at
// least two columns. Keys and values are trimmed before storage and the last
// occurrence of a duplicate key wins.
func ReadFile(path string) (map[string]string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Rows carry exactly key and value, but tolerate trailing columns.
	reader.FieldsPerRecord = -1

	cfg := make(map[string]string)

	first, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if strings.ToLower(strings.TrimSpace(first[0])) != "key" {
		if err := storeRow(cfg, first); err != nil {
			return nil, err
		}
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("%w (expected 2 columns): %q", ErrMalformedRow, strings.Join(row, ","))
		}
		if err := storeRow(cfg, row); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func storeRow(cfg map[string]string, row []string) error {
	key := strings.TrimSpace(row[0])
	if key == "" {
		return fmt.Errorf("%w: %q", ErrEmptyKey, strings.Join(row, ","))
	}
	value := ""
	if len(row) >= 2 {
		value = strings.TrimSpace(row[1])
	}
	cfg[key] = value
	return nil
}
