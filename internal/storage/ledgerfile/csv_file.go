package ledgerfile

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-ledger/internal/ledgererr"
)

const defaultFileMode os.FileMode = 0o644

// csvRow is one parsed record together with the line it started on.
type csvRow struct {
	line   int
	fields []string
}

// csvHeader maps lower-cased column names to their index.
type csvHeader map[string]int

func (h csvHeader) get(row []string, names ...string) (string, bool) {
	for _, name := range names {
		idx, ok := h[name]
		if !ok {
			continue
		}
		if idx >= len(row) {
			return "", true
		}
		return strings.TrimSpace(row[idx]), true
	}
	return "", false
}

// ensureCSV creates path containing only the header when it does not exist.
func ensureCSV(path string, header []string, rows [][]string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, &ledgererr.IOError{Op: "stat", Path: path, Err: err}
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, &ledgererr.IOError{Op: "mkdir", Path: dir, Err: err}
		}
	}

	if err := atomicWriteCSV(path, header, rows); err != nil {
		return false, err
	}
	return true, nil
}

// readCSV loads the header and every data row of path. The file is opened
// read-only and never modified.
func readCSV(path string) (csvHeader, []csvRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &ledgererr.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headerFields, err := reader.Read()
	if err == io.EOF {
		return nil, nil, &ledgererr.CorruptFileError{Path: path, Err: errors.New("missing header")}
	}
	if err != nil {
		return nil, nil, csvReadError(path, err)
	}

	header := make(csvHeader, len(headerFields))
	for i, name := range headerFields {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var rows []csvRow
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, csvReadError(path, err)
		}
		line, _ := reader.FieldPos(0)
		if isBlankRow(fields) {
			continue
		}
		rows = append(rows, csvRow{line: line, fields: fields})
	}

	return header, rows, nil
}

func isBlankRow(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func csvReadError(path string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &ledgererr.CorruptFileError{Path: path, Line: parseErr.Line, Err: parseErr.Err}
	}
	return &ledgererr.IOError{Op: "read", Path: path, Err: err}
}

// atomicWriteCSV writes header and rows to a fresh temporary file in the
// directory of path, then renames it over path. On any failure the temporary
// file is removed and path is left exactly as it was.
func atomicWriteCSV(path string, header []string, rows [][]string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &ledgererr.IOError{Op: "create temp", Path: dir, Err: err}
	}
	tmpPath := tmp.Name()
	closed := false

	defer func() {
		if err == nil {
			return
		}
		if !closed {
			_ = tmp.Close()
		}
		_ = os.Remove(tmpPath)
	}()

	mode := defaultFileMode
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}
	if err = tmp.Chmod(mode); err != nil {
		return &ledgererr.IOError{Op: "chmod", Path: tmpPath, Err: err}
	}

	writer := csv.NewWriter(tmp)
	if err = writer.Write(header); err != nil {
		return &ledgererr.IOError{Op: "write", Path: tmpPath, Err: errors.Wrap(err, "header")}
	}
	if err = writer.WriteAll(rows); err != nil {
		return &ledgererr.IOError{Op: "write", Path: tmpPath, Err: errors.Wrap(err, "rows")}
	}
	if err = tmp.Sync(); err != nil {
		return &ledgererr.IOError{Op: "sync", Path: tmpPath, Err: err}
	}

	var size int64
	if info, statErr := tmp.Stat(); statErr == nil {
		size = info.Size()
	}

	closed = true
	if err = tmp.Close(); err != nil {
		return &ledgererr.IOError{Op: "close", Path: tmpPath, Err: err}
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return &ledgererr.IOError{Op: "rename", Path: path, Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"rows": len(rows),
		"size": humanize.Bytes(uint64(size)),
	}).Debug("LedgerFile.AtomicWrite.Complete")

	return nil
}
