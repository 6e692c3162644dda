package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"pycc/internal/emit"
)

// FileResult — результат конвертации одного файла пакетного запуска.
type FileResult struct {
	Path   string  // путь к исходнику
	Result *Result // nil при ошибке ввода-вывода
	Err    error   // ErrInvalidSource или ошибка чтения
}

// ListPyFiles возвращает отсортированный список всех *.py файлов в
// каталоге, рекурсивно.
func ListPyFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".py") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// детерминированный порядок
	sort.Strings(files)
	return files, nil
}

// ConvertFiles конвертирует файлы параллельно. Ошибки отдельных
// файлов (включая ErrInvalidSource) попадают в соответствующий
// FileResult и не прерывают остальных; прерывает только отмена ctx.
func ConvertFiles(ctx context.Context, paths []string, prof emit.Profile, opts Options, jobs int) ([]FileResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(paths), 1)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := ConvertFile(path, prof, opts)
			results[i] = FileResult{Path: path, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ConvertDir конвертирует все *.py файлы каталога параллельно.
func ConvertDir(ctx context.Context, dir string, prof emit.Profile, opts Options, jobs int) ([]FileResult, error) {
	files, err := ListPyFiles(dir)
	if err != nil {
		return nil, err
	}
	return ConvertFiles(ctx, files, prof, opts, jobs)
}
