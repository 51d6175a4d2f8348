package unigram

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned when a table line is not "word<TAB>count".
var ErrMalformedLine = errors.New("malformed unigram line")

const scannerBufSize = 1024 * 1024

// ReadTSV parses a headerless "word<TAB>count" table. Blank lines are skipped.
func ReadTSV(r io.Reader) (Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), scannerBufSize)

	var table Table

	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		word, rawCount, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing tab separator", ErrMalformedLine, lineNo)
		}

		count, err := strconv.Atoi(strings.TrimSpace(rawCount))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: count %q", ErrMalformedLine, lineNo, rawCount)
		}

		table = append(table, Entry{Word: word, Count: count})
	}

	err := scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("scan unigram table: %w", err)
	}

	return table, nil
}

// WriteTSV writes t as "word<TAB>count" lines.
func WriteTSV(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)

	for _, e := range t {
		_, err := fmt.Fprintf(bw, "%s\t%d\n", e.Word, e.Count)
		if err != nil {
			return fmt.Errorf("write unigram row: %w", err)
		}
	}

	err := bw.Flush()
	if err != nil {
		return fmt.Errorf("flush unigram table: %w", err)
	}

	return nil
}
