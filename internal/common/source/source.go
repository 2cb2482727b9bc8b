// source - пакет с реализациями получения исходного текста записей хранилища паролей.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	repoSource "github.com/abezemskiy/passentry/internal/repositories/source"
)

const (
	// DefaultPassBin - имя исполняемого файла pass по умолчанию.
	DefaultPassBin = "pass"
	// storeDirEnv - переменная окружения pass с путем к хранилищу.
	storeDirEnv = "PASSWORD_STORE_DIR"
)

// Типы источников записей.
const (
	PASS = "pass"
	FILE = "file"
)

// ErrInvalidName - имя записи не может быть передано источнику.
var ErrInvalidName = errors.New("invalid entry name")

// ValidateName - функция для проверки имени записи перед обращением к источнику.
// Имя не должно быть пустым, начинаться с "-" и содержать сегмент "..".
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("%w: name %s starts with \"-\"", ErrInvalidName, name)
	}
	for _, part := range strings.Split(filepath.ToSlash(name), "/") {
		if part == ".." {
			return fmt.Errorf("%w: name %s contains \"..\"", ErrInvalidName, name)
		}
	}
	return nil
}

// PassFetcher - источник, который получает запись вызовом "pass show <name>".
type PassFetcher struct {
	bin      string // путь к исполняемому файлу pass
	storeDir string // путь к хранилищу, если пустой то используется значение pass по умолчанию
}

// NewPassFetcher - фабричная функция для создания источника на основе pass.
func NewPassFetcher(bin, storeDir string) *PassFetcher {
	if bin == "" {
		bin = DefaultPassBin
	}
	return &PassFetcher{
		bin:      bin,
		storeDir: storeDir,
	}
}

// Fetch - метод для получения текста записи из вывода pass.
func (p *PassFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, p.bin, "show", name)
	if p.storeDir != "" {
		cmd.Env = append(os.Environ(), storeDirEnv+"="+p.storeDir)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to run %s show %s, %w: %s", p.bin, name, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// FileFetcher - источник, который читает уже расшифрованные записи из каталога.
type FileFetcher struct {
	dir string
}

// NewFileFetcher - фабричная функция для создания источника на основе каталога.
func NewFileFetcher(dir string) *FileFetcher {
	return &FileFetcher{
		dir: dir,
	}
}

// Fetch - метод для чтения файла <dir>/<name>.
func (f *FileFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(f.dir, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %s, %w", name, err)
	}
	return data, nil
}

// ReaderFetcher - источник, который возвращает всё содержимое io.Reader, например stdin.
// Имя записи не используется для поиска, только проверяется.
type ReaderFetcher struct {
	r io.Reader
}

// NewReaderFetcher - фабричная функция для создания источника на основе io.Reader.
func NewReaderFetcher(r io.Reader) *ReaderFetcher {
	return &ReaderFetcher{
		r: r,
	}
}

// Fetch - метод для чтения всего содержимого io.Reader.
func (rf *ReaderFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(rf.r)
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %s, %w", name, err)
	}
	return data, nil
}

// New - фабричная функция для создания источника по его типу.
func New(kind, bin, storeDir string) (repoSource.Fetcher, error) {
	switch kind {
	case PASS, "":
		return NewPassFetcher(bin, storeDir), nil
	case FILE:
		if storeDir == "" {
			return nil, fmt.Errorf("store directory must be set for source %s", FILE)
		}
		return NewFileFetcher(storeDir), nil
	}
	return nil, fmt.Errorf("unknown source %s", kind)
}
