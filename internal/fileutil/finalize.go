// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// TempContext holds state for an atomic file write operation.
type TempContext struct {
	TmpFile *os.File
	TmpName string
	OutPath string
}

// NewTempContext creates a temp file next to outPath for atomic writing.
// Caller must defer CleanupOnError.
func NewTempContext(outPath string) (*TempContext, error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &TempContext{
		TmpFile: tmpFile,
		TmpName: tmpFile.Name(),
		OutPath: outPath,
	}, nil
}

// CleanupOnError closes the temp file and removes it if the write failed.
func (tc *TempContext) CleanupOnError(errp *error) {
	tc.TmpFile.Close() //nolint:gosec // best-effort cleanup

	if *errp != nil {
		os.Remove(tc.TmpName) //nolint:gosec // best-effort cleanup
	}
}

// Commit sets owner-only permissions, closes the temp file and renames it onto the output path.
func (tc *TempContext) Commit() error {
	const ownerReadWrite = 0o600

	if err := os.Chmod(tc.TmpName, ownerReadWrite); err != nil {
		return fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tc.TmpFile.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tc.TmpName, tc.OutPath); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}

	return nil
}

// WriteAtomic writes the output of write to outPath through a temp file in the same directory,
// so outPath either keeps its old content or holds the complete new one.
// Returns the size of the written file.
func WriteAtomic(outPath string, write func(io.Writer) error) (size int64, err error) {
	tc, err := NewTempContext(outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	if err = write(tc.TmpFile); err != nil {
		return 0, fmt.Errorf("writing %q: %w", outPath, err)
	}

	if err = tc.Commit(); err != nil {
		return 0, err
	}

	return FinalizeOutput(outPath)
}

// FinalizeOutput returns the output file size.
func FinalizeOutput(outPath string) (int64, error) {
	outInfo, err := os.Stat(outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", outPath, err)
	}

	return outInfo.Size(), nil
}
