package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jamesrr39/file-informer-app/informer"
	"github.com/jamesrr39/goutil/errorsx"
	"github.com/jamesrr39/goutil/logpkg"
	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	logger *logpkg.Logger
	app    *kingpin.Application
)

func main() {
	logger = logpkg.NewLogger(os.Stderr, logpkg.LogLevelInfo)
	app = kingpin.New("file-informer", "show an information panel for each given path")
	paths := app.Arg("paths", "paths to inspect").Required().Strings()

	app.Action(func(ctx *kingpin.ParseContext) error {
		return run(afero.NewOsFs(), os.Stdout, logger, *paths)
	})

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

// run inspects each path in argument order. A path that can't be
// inspected is logged and skipped; the error returned at the end makes
// the process exit non-zero if any path failed.
func run(fs afero.Fs, out io.Writer, logger *logpkg.Logger, paths []string) errorsx.Error {
	failedCount := 0

	for _, path := range paths {
		report, err := informer.NewFileReport(fs, path)
		if nil != err {
			logger.Error("couldn't inspect '%s'. Error: %s", path, err)
			failedCount++
			continue
		}

		fmt.Fprintln(out, informer.RenderPanel(report))
	}

	if 0 != failedCount {
		return errorsx.Errorf("failed to inspect %d of %d paths", failedCount, len(paths))
	}

	return nil
}
