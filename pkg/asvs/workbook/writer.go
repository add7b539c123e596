package workbook

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"asvsgen/pkg/asvs"
)

// Write serializes the workbook to path, overwriting any existing file.
// The workbook is staged through a temporary file in the destination
// directory and renamed into place, so a failure never leaves a partial
// workbook behind. Failures return a *asvs.WriteError.
func Write(f *excelize.File, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".asvsgen-*.xlsx")
	if err != nil {
		return asvs.NewWriteError(path, err)
	}
	tmpName := tmp.Name()

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return asvs.NewWriteError(path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return asvs.NewWriteError(path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return asvs.NewWriteError(path, err)
	}
	return nil
}
