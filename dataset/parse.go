// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Parse reads `criminal_id case_id [ignored...]` lines from r. Blank lines and
// lines starting with the comment prefix (after leading whitespace) are
// ignored. An empty input yields an empty Dataset.
//
// Errors:
//   - ErrOptionViolation for bad options.
//   - *ParseError (errors.Is ErrMalformedLine) for the first bad data line,
//     unless WithSkipMalformed(true) was given.
//   - read errors from r, wrapped.
func Parse(r io.Reader, opts ...Option) (*Dataset, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ds := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, o.CommentPrefix) {
			continue
		}

		rec, err := parseRecord(line)
		if err != nil {
			perr := &ParseError{Line: lineNum, Text: raw, Err: err}
			if !o.SkipMalformed {
				return nil, perr
			}
			ds.skipped++
			o.Logger.Warn().Int("line", lineNum).Err(err).Msg("skipping malformed line")
			continue
		}
		ds.Add(rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read after line %d: %w", lineNum, err)
	}

	return ds, nil
}

// Load opens path and parses it. A missing file surfaces the os error
// (errors.Is(err, fs.ErrNotExist)).
func Load(path string, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open input: %w", err)
	}
	defer f.Close()

	ds, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

func parseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Record{}, ErrTooFewFields
	}
	criminal, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Record{}, err
	}
	caseID, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Record{}, err
	}

	return Record{Criminal: criminal, Case: caseID}, nil
}
