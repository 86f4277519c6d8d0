package repository

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by lookups for rows that do not exist.
var ErrNotFound = errors.New("record not found")

// encodeTable serializes report table rows for storage.
func encodeTable(rows [][]string) (string, error) {
	if rows == nil {
		rows = [][]string{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("encoding table rows: %w", err)
	}
	return string(data), nil
}

// decodeTable deserializes stored report table rows.
func decodeTable(data string) ([][]string, error) {
	var rows [][]string
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("decoding table rows: %w", err)
	}
	return rows, nil
}
