package bench

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
)

var csvHeader = []string{
	"algorithm", "pivot", "dataset", "size", "run",
	"time_s", "peak_mem_bytes", "comparisons", "swaps", "seed",
}

// AppendCSV appends result rows to a CSV file, writing the header only
// when the file is created.
func AppendCSV(filename string, results []Result) error {
	if len(results) == 0 {
		return nil
	}

	_, statErr := os.Stat(filename)
	exists := statErr == nil

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open results file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if !exists {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for _, r := range results {
		record := []string{
			r.Algorithm,
			r.Pivot,
			r.Dataset,
			strconv.Itoa(r.Size),
			strconv.Itoa(r.Run),
			strconv.FormatFloat(r.TimeSeconds, 'g', -1, 64),
			strconv.FormatUint(r.PeakMemBytes, 10),
			strconv.FormatUint(r.Comparisons, 10),
			strconv.FormatUint(r.Swaps, 10),
			strconv.FormatInt(r.Seed, 10),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteSummaryJSON writes aggregated summaries to a JSON file, merging
// with any summaries the file already holds so successive batches
// accumulate.
func WriteSummaryJSON(filename string, summaries map[string]Summary) error {
	if len(summaries) == 0 {
		return nil
	}

	merged := make(map[string]Summary)
	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &merged); err != nil {
			return fmt.Errorf("failed to decode existing summary: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return fmt.Errorf("failed to read summary file: %w", err)
	}

	for k, v := range summaries {
		merged[k] = v
	}

	out, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return os.WriteFile(filename, out, 0o644)
}

// LoadResults reads result rows from a JSON-lines file.
func LoadResults(filename string) ([]Result, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open run log: %w", err)
	}
	defer f.Close()

	var results []Result
	dec := json.NewDecoder(bufio.NewReader(f))
	for dec.More() {
		var r Result
		if err := dec.Decode(&r); err != nil {
			return nil, fmt.Errorf("failed to decode result: %w", err)
		}
		results = append(results, r)
	}
	return results, nil
}

// SaveResults writes result rows to a JSON-lines file, one row per
// line, so later batches can be re-aggregated without re-running.
func SaveResults(filename string, results []Result) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create run log: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	}
	return w.Flush()
}
