package grana

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The book is persisted as one file per collection, each a JSONL stream
// (one record per line). Collections are independent: there is no
// cross-file transaction, and a crash between two writes can leave the
// book momentarily inconsistent. That risk is accepted; readers degrade
// to empty collections rather than fail.

// encodeRecords writes records as a stream of JSONL data to an io.Writer.
func encodeRecords[T any](w io.Writer, records []T) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("could not encode record: %w", err)
		}
	}
	return nil
}

// decodeRecords reads a stream of JSONL data from an io.Reader, decoding
// each line into a record. Empty lines are skipped.
func decodeRecords[T any](r io.Reader) ([]T, error) {
	var records []T
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec T
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("could not decode line %q: %w", string(line), err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// encodeOne writes a single record (company profile, session token) as
// one JSON object.
func encodeOne(w io.Writer, record any) error {
	return json.NewEncoder(w).Encode(record)
}

// decodeOne reads a single JSON object.
func decodeOne(r io.Reader, record any) error {
	return json.NewDecoder(r).Decode(record)
}
