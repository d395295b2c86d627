package ingest

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// archive is the shape of the JSON file inside the transaction archive.
type archive struct {
	Transactions *struct {
		Booked []map[string]any `json:"booked"`
	} `json:"transactions"`
}

// Extract unpacks the transaction archive into a temporary directory and
// returns the booked transaction records of its single JSON file. The
// directory is removed before Extract returns.
func Extract(data []byte) ([]map[string]any, error) {
	dir, err := os.MkdirTemp("", "poen-transactions-")
	if err != nil {
		return nil, fmt.Errorf("could not create temporary directory: %w", err)
	}
	defer os.RemoveAll(dir)

	zipPath := filepath.Join(dir, "transactions.zip")
	if err := os.WriteFile(zipPath, data, 0o600); err != nil {
		return nil, fmt.Errorf("could not write transaction archive: %w", err)
	}

	extracted := filepath.Join(dir, "extracted")
	files, err := unzip(zipPath, extracted)
	if err != nil {
		return nil, err
	}

	var jsonFiles []string
	for _, f := range files {
		if strings.EqualFold(filepath.Ext(f), ".json") {
			jsonFiles = append(jsonFiles, f)
		}
	}

	if len(jsonFiles) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one JSON file, found %d", ErrArchiveMalformed, len(jsonFiles))
	}

	f, err := os.Open(jsonFiles[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoder := json.NewDecoder(f)
	decoder.UseNumber()

	var a archive
	if err := decoder.Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchiveMalformed, err)
	}

	if a.Transactions == nil || a.Transactions.Booked == nil {
		return nil, fmt.Errorf("%w: transactions.booked is missing", ErrArchiveMalformed)
	}

	return a.Transactions.Booked, nil
}

// unzip extracts all regular files of the archive into dir and returns
// their paths.
func unzip(zipPath, dir string) ([]string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchiveMalformed, err)
	}
	defer r.Close()

	var paths []string
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}

		target := filepath.Join(dir, f.Name)
		if !strings.HasPrefix(target, filepath.Clean(dir)+string(os.PathSeparator)) {
			return nil, fmt.Errorf("%w: illegal file path %q", ErrArchiveMalformed, f.Name)
		}

		if err := extractFile(f, target); err != nil {
			return nil, err
		}
		paths = append(paths, target)
	}

	return paths, nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o700); err != nil {
		return err
	}

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArchiveMalformed, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("%w: %w", ErrArchiveMalformed, err)
	}

	return nil
}
