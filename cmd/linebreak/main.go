package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"pkt.systems/linebreak"
	"pkt.systems/version"
)

const previewWidth = 72

func init() {
	version.SetDefaultModule("pkt.systems/linebreak")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type thresholdFlags struct {
	minSentence   int
	colonMin      int
	minPart       int
	dashMin       int
	veryLong      int
	abbreviations []string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		write       bool
		list        bool
		check       bool
		outPath     string
		configPath  string
		jobs        int
		verbose     bool
		showVersion bool
		th          thresholdFlags
	)

	flags := pflag.NewFlagSet("linebreak", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVarP(&write, "write", "w", false, "Rewrite input files in place")
	flags.BoolVarP(&list, "list", "l", false, "List files whose formatting would change")
	flags.BoolVarP(&check, "check", "c", false, "Verify that reflowed output renders to the same text")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVar(&configPath, "config", "", "Settings file (default: "+linebreak.DefaultSettingsFile+" if present)")
	flags.IntVarP(&jobs, "jobs", "j", 0, "Files processed in parallel with --write/--list (0 uses GOMAXPROCS)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log per-file details")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.IntVar(&th.minSentence, "min-sentence-length", linebreak.DefaultMinSentenceLength, "Shortest sentence fragment a split may leave")
	flags.IntVar(&th.colonMin, "colon-min-length", linebreak.DefaultColonMinLength, "Length a piece must exceed to split at a colon or semicolon")
	flags.IntVar(&th.minPart, "min-part-length", linebreak.DefaultMinPartLength, "Shortest part a clause, parenthesis or comma split may leave")
	flags.IntVar(&th.dashMin, "dash-min-length", linebreak.DefaultDashMinLength, "Length a piece must exceed to split at an em-dash")
	flags.IntVar(&th.veryLong, "very-long-length", linebreak.DefaultVeryLongLength, "Length above which parenthesis and comma breaks engage")
	flags.StringSliceVar(&th.abbreviations, "abbreviations", linebreak.DefaultAbbreviations(), "Words that never end a sentence")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: linebreak [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, the document is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}

	logger := log.NewWithOptions(stderr, log.Options{Prefix: "linebreak"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	settings, err := loadSettings(configPath, logger)
	if err != nil {
		logger.Error("load settings", "err", err)
		return 2
	}
	settings = settings.Merge(flagSettings(flags, th))
	if err := settings.Validate(); err != nil {
		logger.Error("invalid settings", "err", err)
		return 2
	}

	inputs := flags.Args()
	switch {
	case (write || list) && len(inputs) == 0:
		fmt.Fprintln(stderr, "--write and --list need file arguments")
		return 2
	case (write || list) && outPath != "":
		fmt.Fprintln(stderr, "--output cannot be combined with --write or --list")
		return 2
	case len(inputs) == 0 && isTerminal(stdin):
		flags.Usage()
		return 2
	}

	a := &app{
		breaker: linebreak.New(settings.Options()...),
		enabled: settings.IsEnabled(),
		check:   check,
		logger:  logger,
		stdout:  stdout,
	}
	if write || list {
		return a.rewrite(inputs, jobs, write, list)
	}
	return a.stream(inputs, stdin, outPath)
}

func loadSettings(path string, logger *log.Logger) (linebreak.Settings, error) {
	if path != "" {
		return linebreak.LoadSettings(normalizePath(path))
	}
	s, found, err := linebreak.LoadDefaultSettings("")
	if found {
		logger.Debug("using settings file", "path", linebreak.DefaultSettingsFile)
	}
	return s, err
}

// flagSettings returns the thresholds given explicitly on the command line.
func flagSettings(flags *pflag.FlagSet, th thresholdFlags) linebreak.Settings {
	changed := func(name string, value int) *int {
		if !flags.Changed(name) {
			return nil
		}
		return &value
	}
	s := linebreak.Settings{
		MinSentenceLength: changed("min-sentence-length", th.minSentence),
		ColonMinLength:    changed("colon-min-length", th.colonMin),
		MinPartLength:     changed("min-part-length", th.minPart),
		DashMinLength:     changed("dash-min-length", th.dashMin),
		VeryLongLength:    changed("very-long-length", th.veryLong),
	}
	if flags.Changed("abbreviations") {
		s.Abbreviations = th.abbreviations
	}
	return s
}

type app struct {
	breaker *linebreak.Breaker
	enabled bool
	check   bool
	logger  *log.Logger
	stdout  io.Writer
}

// format reflows one document and, with --check, verifies the result.
func (a *app) format(name string, src []byte) ([]byte, linebreak.Report, error) {
	if !a.enabled {
		return src, linebreak.Report{}, nil
	}
	var out bytes.Buffer
	out.Grow(len(src) + len(src)/8)
	report, err := linebreak.Process(linebreak.ProcessRequest{
		Reader:  bytes.NewReader(src),
		Writer:  &out,
		Breaker: a.breaker,
	})
	if err != nil {
		return nil, report, err
	}
	for _, w := range report.Warnings {
		a.logger.Warn(w, "file", name)
	}
	if a.check {
		if err := linebreak.CheckEquivalent(src, out.Bytes()); err != nil {
			return nil, report, fmt.Errorf("check: %w", err)
		}
	}
	a.logger.Debug("processed", "file", name, "lines", report.Lines, "reflowed", report.Reflowed,
		"longest_before", report.LongestBefore, "longest_after", report.LongestAfter)
	if report.Changed() {
		a.logger.Debug("first reflow", "file", name, "line", report.FirstReflowed,
			"text", linebreak.Preview(report.Sample, previewWidth))
	}
	return out.Bytes(), report, nil
}

// stream formats stdin or each input in turn and writes the results to
// outPath or stdout.
func (a *app) stream(inputs []string, stdin io.Reader, outPath string) int {
	writer, closeOut, err := resolveOutput(outPath, a.stdout)
	if err != nil {
		a.logger.Error("open output", "err", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	sources, err := openInputs(inputs, stdin)
	if err != nil {
		a.logger.Error("open input", "err", err)
		return 2
	}
	for _, src := range sources {
		data, err := src.read()
		if err != nil {
			a.logger.Error("read input", "file", src.name, "err", err)
			return 1
		}
		out, _, err := a.format(src.name, data)
		if err != nil {
			a.logger.Error("format", "file", src.name, "err", err)
			return 1
		}
		if _, err := writer.Write(out); err != nil {
			a.logger.Error("write output", "err", err)
			return 1
		}
	}
	return 0
}

// rewrite formats files in parallel, rewriting them with --write and
// listing the changed ones with --list.
func (a *app) rewrite(paths []string, jobs int, write, list bool) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	changed := make([]bool, len(paths))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, p := range paths {
		g.Go(func() error {
			if isURL(p) {
				return fmt.Errorf("%s: cannot rewrite a URL", p)
			}
			path := normalizePath(p)
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			out, _, err := a.format(p, src)
			if errors.Is(err, linebreak.ErrBinaryInput) || errors.Is(err, linebreak.ErrInvalidUTF8) {
				a.logger.Warn("skipping", "file", p, "err", err)
				return nil
			}
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			if bytes.Equal(src, out) {
				return nil
			}
			changed[i] = true
			if write {
				if err := writeFileAtomic(path, out); err != nil {
					return fmt.Errorf("%s: %w", p, err)
				}
				a.logger.Info("reflowed", "file", p)
			}
			return nil
		})
	}
	err := g.Wait()
	if list {
		for i, p := range paths {
			if changed[i] {
				fmt.Fprintln(a.stdout, p)
			}
		}
	}
	if err != nil {
		a.logger.Error("rewrite", "err", err)
		return 1
	}
	return 0
}

type inputSource struct {
	name string
	open func() (io.Reader, io.Closer, error)
}

func (s inputSource) read() ([]byte, error) {
	r, closer, err := s.open()
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	return io.ReadAll(r)
}

func openInputs(args []string, stdin io.Reader) ([]inputSource, error) {
	if len(args) == 0 {
		return []inputSource{{name: "<stdin>", open: func() (io.Reader, io.Closer, error) {
			return stdin, nil, nil
		}}}, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{name: raw, open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{name: raw, open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{name: raw, open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func isURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "file":
		return true
	}
	return false
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	clean := normalizePath(path)
	f, err := os.Open(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
