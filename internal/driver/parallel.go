package driver

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"pawnfmt/internal/diag"
	"pawnfmt/internal/source"
)

// ListSourceFiles возвращает отсортированный список всех подходящих файлов
// в директории.
func ListSourceFiles(dir string, extensions []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range extensions {
			if ext == want {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CollectFiles expands a mix of files and directories into a deterministic
// file list. Explicit file arguments are taken as-is regardless of
// extension.
func CollectFiles(paths []string, extensions []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			sub, err := ListSourceFiles(p, extensions)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
			continue
		}
		files = append(files, p)
	}
	sort.Strings(files)
	return files, nil
}

// FormatPaths formats the given files in parallel. Result order matches the
// input order; a per-file load failure becomes a diagnostic in that file's
// bag rather than aborting the run.
func FormatPaths(ctx context.Context, paths []string, cache *DiskCache, opt Options) (*source.FileSet, []Result, error) {
	opt = opt.withDefaults()

	fileSet := source.NewFileSet()
	fileIDs := make(map[string]source.FileID, len(paths))
	loadErrors := make(map[string]error, len(paths))

	for _, path := range paths {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	// Результаты: индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	limit := opt.Jobs
	if limit > len(paths) {
		limit = len(paths)
	}
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opt.MaxDiagnostics)
			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFile,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = Result{Path: path, Bag: bag}
				return nil
			}

			sf := fileSet.Get(fileIDs[path])
			key := cacheKey(sf.Hash, opt)
			if cache != nil && !opt.NoCache {
				var p diskPayload
				if ok, _ := cache.get(key, &p); ok {
					results[i] = Result{
						Path:    path,
						FileID:  sf.ID,
						Output:  p.Output,
						Changed: p.Changed,
						Bag:     bag,
					}
					return nil
				}
			}

			out := formatSource(sf, bag, opt)
			results[i] = Result{
				Path:    path,
				FileID:  sf.ID,
				Output:  out,
				Changed: !bytes.Equal(out, sf.Content),
				Bag:     bag,
			}
			if cache != nil && !opt.NoCache && bag.Len() == 0 {
				_ = cache.put(key, &diskPayload{
					Schema:  diskCacheSchemaVersion,
					Output:  out,
					Changed: results[i].Changed,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
