package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Writer writes already joined sequences in one output format.
type Writer interface {
	Write(out io.Writer, seqs []string) error
}

// newWriter picks the writer of format. Record based formats store each
// sequence under key.
func newWriter(format string, key string, stats *Stats) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{Stats: stats}, nil
	case "csv":
		return &CsvWriter{Key: key, Stats: stats}, nil
	case "tsv":
		return &CsvWriter{isTSV: true, Key: key, Stats: stats}, nil
	case "json":
		return &JsonWriter{Key: key, Stats: stats}, nil
	case "yaml":
		return &YamlWriter{Key: key, Stats: stats}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

type TextWriter struct {
	Stats *Stats
}

func (w TextWriter) Write(out io.Writer, seqs []string) error {
	for _, seq := range seqs {
		if _, err := fmt.Fprintln(out, seq); err != nil {
			return err
		}
		w.Stats.Output++
	}
	return nil
}

type JsonWriter struct {
	Key   string
	Stats *Stats
}

// Write streams a json array of records, one per line.
func (w JsonWriter) Write(out io.Writer, seqs []string) error {
	encoder := json.NewEncoder(out)
	if _, err := io.WriteString(out, "["); err != nil {
		return err
	}
	for i, seq := range seqs {
		if i > 0 {
			if _, err := io.WriteString(out, ","); err != nil {
				return err
			}
		}
		if err := encoder.Encode(Record{w.Key: seq}); err != nil {
			return err
		}
		w.Stats.Output++
	}
	_, err := io.WriteString(out, "]\n")
	return err
}

type CsvWriter struct {
	isTSV bool
	Key   string
	Stats *Stats
}

// Write writes a single column file with Key as header.
func (w CsvWriter) Write(out io.Writer, seqs []string) error {
	writer := csv.NewWriter(out)
	if w.isTSV {
		writer.Comma = '\t'
	}

	if err := writer.Write([]string{w.Key}); err != nil {
		return err
	}
	for _, seq := range seqs {
		if err := writer.Write([]string{seq}); err != nil {
			return err
		}
		w.Stats.Output++
	}
	writer.Flush()
	return writer.Error()
}

type YamlWriter struct {
	Key   string
	Stats *Stats
}

// Write writes a yaml list of records.
func (w YamlWriter) Write(out io.Writer, seqs []string) error {
	records := make([]Record, 0, len(seqs))
	for _, seq := range seqs {
		records = append(records, Record{w.Key: seq})
	}
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	w.Stats.Output += len(records)
	return nil
}
