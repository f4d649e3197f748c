package cli

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/odxtools/attrex/internal/adapters/xmlfile"
	"github.com/odxtools/attrex/internal/presentation/tui"
)

// fileOutcome is the per-file result collected by the workers.
type fileOutcome struct {
	path   string
	src    []byte
	result *xmlfile.Result
	err    error
}

// Run executes a convert or check pass over every discovered file and
// returns an error when any file failed, so the command can exit non-zero.
func Run(opts Options) error {
	opts, logger, err := opts.resolve()
	if err != nil {
		return err
	}
	if len(opts.Globs) == 0 {
		return fmt.Errorf("no paths given and no include globs configured")
	}

	files, err := Discover(opts.Globs, opts.Excludes)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Warn("no files matched", "globs", opts.Globs)
		return nil
	}

	if opts.Test {
		logger.Warn("test mode enabled, no file will be modified")
	}

	outcomes := processFiles(files, opts, logger)

	differ := tui.NewDiffer(os.Stdout)
	var failures int
	var converted, columns int
	for _, oc := range outcomes {
		if oc.err != nil {
			failures++
			logger.Error("conversion failed", "file", oc.path, "err", oc.err)
			continue
		}
		for _, issue := range oc.result.Issues {
			failures++
			logger.Error("element skipped", "file", oc.path, "path", issue.Path, "err", issue.Err)
		}
		converted += oc.result.Converted
		columns += oc.result.ColumnInvisible
		if opts.Test && oc.result.Changed {
			if err := differ.Print(oc.path, oc.src, oc.result.Output); err != nil {
				return err
			}
		}
	}

	logger.Info("done",
		"files", len(files),
		"attrs_converted", converted,
		"column_invisible", columns,
		"failures", failures,
	)
	if failures > 0 {
		return fmt.Errorf("%d conversion failure(s)", failures)
	}
	return nil
}

// processFiles fans the file list out over opts.Jobs workers. The rewriter
// itself is pure per document, so files are independent.
func processFiles(files []string, opts Options, logger *slog.Logger) []fileOutcome {
	rewriter := xmlfile.New(opts.AttrsAttr, logger)
	outcomes := make([]fileOutcome, len(files))

	var wg sync.WaitGroup
	sem := make(chan struct{}, opts.Jobs)
	for i, path := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			outcomes[i] = processFile(rewriter, path, opts, logger)
		}(i, path)
	}
	wg.Wait()
	return outcomes
}

func processFile(rewriter *xmlfile.Rewriter, path string, opts Options, logger *slog.Logger) fileOutcome {
	oc := fileOutcome{path: path}

	src, err := os.ReadFile(path)
	if err != nil {
		oc.err = fmt.Errorf("failed to read %s: %w", path, err)
		return oc
	}
	oc.src = src

	res, err := rewriter.Rewrite(src)
	if err != nil {
		oc.err = fmt.Errorf("%s: %w", path, err)
		return oc
	}
	oc.result = res
	logger.Debug("processed",
		"file", path,
		"changed", res.Changed,
		"attrs", res.Converted,
		"column_invisible", res.ColumnInvisible,
	)

	if !res.Changed || opts.Test || opts.Check {
		return oc
	}
	if err := writeFile(path, res.Output); err != nil {
		oc.err = err
	}
	return oc
}

// writeFile replaces path preserving its permissions.
func writeFile(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
