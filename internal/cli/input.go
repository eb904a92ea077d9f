package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MarkdownExt is the extension given to converted files.
const MarkdownExt = ".md"

// InputError is a file-level failure with a stable error code.
type InputError struct {
	Code    string
	Message string
	Err     error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// reportInputError prints err through the formatter and returns the exit error.
// Errors that are not InputErrors are reported as generic failures.
func reportInputError(formatter *OutputFormatter, err error) error {
	var ie *InputError
	if errors.As(err, &ie) {
		return outputError(formatter, ie.Code, ie.Message, ie.Err)
	}
	return outputError(formatter, ErrCodeGeneric, err.Error(), nil)
}

// readInput loads a BBCode source file.
// The path must name an existing regular file holding valid UTF-8.
func readInput(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", &InputError{Code: ErrCodeNotFound, Message: fmt.Sprintf("file '%s' does not exist", path)}
	}
	if err != nil {
		return "", &InputError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("cannot access '%s'", path), Err: err}
	}
	if !info.Mode().IsRegular() {
		return "", &InputError{Code: ErrCodeNotFound, Message: fmt.Sprintf("'%s' is not a regular file", path)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &InputError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("cannot read '%s'", path), Err: err}
	}
	if !utf8.Valid(data) {
		return "", &InputError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("file '%s' is not valid UTF-8", path)}
	}
	return string(data), nil
}

// DeriveOutputPath replaces the extension of path with .md.
//
// The extension is the text from the last dot of the final path element.
// Leading dots do not start an extension, so ".notes" becomes ".notes.md",
// and a path without an extension gets .md appended.
func DeriveOutputPath(path string) string {
	return strings.TrimSuffix(path, extension(path)) + MarkdownExt
}

func extension(path string) string {
	base := path
	if i := strings.LastIndexAny(base, `/`+string(filepath.Separator)); i >= 0 {
		base = base[i+1:]
	}
	dot := strings.LastIndex(base, ".")
	if dot <= 0 || strings.TrimLeft(base[:dot], ".") == "" {
		return ""
	}
	return base[dot:]
}

// writeOutput replaces path with data.
// The content is written to a temporary file in the same directory and then
// renamed over the target, so a failed write leaves any previous file intact.
func writeOutput(path string, data string) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))
	if err := os.WriteFile(tmp, []byte(data), 0644); err != nil {
		_ = os.Remove(tmp)
		return &InputError{Code: ErrCodeWriteFailed, Message: fmt.Sprintf("cannot write '%s'", path), Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &InputError{Code: ErrCodeWriteFailed, Message: fmt.Sprintf("cannot write '%s'", path), Err: err}
	}
	return nil
}
