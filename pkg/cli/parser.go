package cli

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is one json object, or one entry of a record based export.
type Record map[string]any

// Stats counts what happened to the sequences of one run.
type Stats struct {
	Files      int
	Read       int
	Inserted   int
	Duplicates int
	Removed    int
	Output     int
}

// parseFile calls onEachSeq with the raw sequence of every entry of the file.
// The format follows the extension, unknown extensions are read as one
// sequence per line.
func parseFile(path string, key string, onEachSeq func(raw string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		err = parseCsv(file, ',', key, onEachSeq)
	case ".tsv":
		err = parseCsv(file, '\t', key, onEachSeq)
	case ".json":
		err = parseJson(file, key, onEachSeq)
	case ".yaml", ".yml":
		err = parseYaml(file, key, onEachSeq)
	default:
		err = parseText(file, onEachSeq)
	}
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// parseText reads one sequence per line. Blank lines are skipped.
func parseText(r io.Reader, onEachSeq func(raw string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if err := onEachSeq(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseJson(r io.Reader, key string, onEachSeq func(raw string) error) error {
	decoder := json.NewDecoder(r)
	// keep numbers as written
	decoder.UseNumber()

	// opening bracket
	tok, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("expected a json array, got %v", tok)
	}

	for decoder.More() {
		var item any
		if err := decoder.Decode(&item); err != nil {
			return err
		}
		raw, err := sequenceValue(item, key)
		if err != nil {
			return err
		}
		if err := onEachSeq(raw); err != nil {
			return err
		}
	}

	// closing bracket
	_, err = decoder.Token()
	return err
}

func parseYaml(r io.Reader, key string, onEachSeq func(raw string) error) error {
	var items []yaml.Node
	if err := yaml.NewDecoder(r).Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	for i := range items {
		raw, err := yamlSequenceValue(&items[i], key)
		if err != nil {
			return err
		}
		if err := onEachSeq(raw); err != nil {
			return err
		}
	}
	return nil
}

// yamlSequenceValue takes scalars as written in the file, so dates and
// numbers keep their text.
func yamlSequenceValue(node *yaml.Node, key string) (string, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return "", fmt.Errorf("line %d: null entry", node.Line)
		}
		return node.Value, nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value != key {
				continue
			}
			value := node.Content[i+1]
			if value.Kind == yaml.AliasNode && value.Alias != nil {
				value = value.Alias
			}
			if value.Kind != yaml.ScalarNode || value.ShortTag() == "!!null" {
				return "", fmt.Errorf("line %d: field %q is not a scalar", value.Line, key)
			}
			return value.Value, nil
		}
		return "", fmt.Errorf("line %d: record has no %q field", node.Line, key)
	default:
		return "", fmt.Errorf("line %d: unsupported entry", node.Line)
	}
}

func parseCsv(r io.Reader, comma rune, key string, onEachSeq func(raw string) error) error {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	col := -1
	for i, header := range headers {
		if header == key {
			col = i
			break
		}
	}
	if col < 0 {
		return fmt.Errorf("header has no %q column", key)
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if col >= len(row) {
			line, _ := reader.FieldPos(0)
			return fmt.Errorf("line %d has no %q column", line, key)
		}
		if err := onEachSeq(row[col]); err != nil {
			return err
		}
	}
}

// sequenceValue extracts the raw sequence of a decoded json item: scalars
// are used as is, records through key.
func sequenceValue(item any, key string) (string, error) {
	switch v := item.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return fmt.Sprint(v), nil
	case map[string]any:
		return recordValue(v, key)
	default:
		return "", fmt.Errorf("unsupported entry %v of type %T", item, item)
	}
}

func recordValue(record Record, key string) (string, error) {
	value, found := record[key]
	if !found {
		return "", fmt.Errorf("record has no %q field: %v", key, record)
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("field %q of record %v is not a scalar", key, record)
	}
}
