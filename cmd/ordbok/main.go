package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/darkclainer/ordbok/pkg/dictionary"
	"github.com/darkclainer/ordbok/pkg/parser"
	"github.com/darkclainer/ordbok/pkg/source"
)

const (
	codeErrorArgs = iota + 1
	codeInternalError
)

func exitf(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(code)
}

// parseFile picks the reader by extension: .json is the bundled format,
// .html/.htm a published sheet page and anything else CSV.
func parseFile(path string) ([]parser.Entry, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return dictionary.LoadFile(path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can not open file %s: %w", path, err)
	}
	defer file.Close()
	parse := parser.ParseCSV
	if ext == ".html" || ext == ".htm" {
		parse = parser.ParseTableHTML
	}
	return parse(file)
}

// run prints the entries matching query as JSON. Entries come from the
// local file, else the bundled list, replaced by the remote sheet when
// sheetURL is given and yields entries.
func run(out io.Writer, logger *zap.Logger, localPath, sheetURL, query string) error {
	var entries []parser.Entry
	var err error
	if localPath != "" {
		entries, err = parseFile(localPath)
	} else {
		entries, err = dictionary.Bundled()
	}
	if err != nil {
		return err
	}

	dict := dictionary.New(logger, entries)
	if sheetURL != "" {
		remote := source.NewRemote(nil, nil, nil)
		<-dict.LoadRemote(remote, sheetURL)
		_ = remote.Close(context.Background())
	}
	dict.SetQuery(query)

	s, err := json.MarshalIndent(dict.Results(), "", "\t")
	if err != nil {
		return fmt.Errorf("can not marshal entries: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s\n", s)
	return err
}

func main() {
	localPath := pflag.StringP("file", "f", "", "local CSV, HTML or JSON file to read")
	sheetURL := pflag.StringP("url", "u", "", "spreadsheet share link or CSV export URL")
	query := pflag.StringP("query", "q", "", "show only entries matching query")
	verbose := pflag.BoolP("verbose", "v", false, "log more than warnings to stderr")
	pflag.Parse()

	if *localPath != "" && *sheetURL != "" {
		exitf(codeErrorArgs, "both -f and -u can not be specified at the same time!\n")
	}

	zapConf := zap.NewDevelopmentConfig()
	if !*verbose {
		zapConf.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := zapConf.Build()
	if err != nil {
		exitf(codeInternalError, "can not create logger: %s\n", err.Error())
	}
	defer logger.Sync() // nolint:errcheck // nothing to do on failure

	if err := run(os.Stdout, logger, *localPath, *sheetURL, *query); err != nil {
		exitf(codeInternalError, "%s\n", err.Error())
	}
}
