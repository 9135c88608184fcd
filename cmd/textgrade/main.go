// Command textgrade scores the readability of English and Russian
// texts and reports a difficulty level, a target audience and
// improvement recommendations.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"

	"github.com/eshatrova/textgrade/internal/analyze"
	"github.com/eshatrova/textgrade/internal/config"
	"github.com/eshatrova/textgrade/internal/discovery"
	"github.com/eshatrova/textgrade/internal/engine"
	"github.com/eshatrova/textgrade/internal/log"
	"github.com/eshatrova/textgrade/internal/output"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: textgrade <command> [flags] [files...]

Commands:
  analyze   Score a single text (file argument or piped stdin)
  compare   Score several texts and report them side by side
  stats     Print basic text statistics without readability scoring
  init      Generate a default .textgrade.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'textgrade <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := os.Args[1]

	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch first {
	case "analyze":
		return runAnalyze(os.Args[2:])
	case "compare":
		return runCompare(os.Args[2:])
	case "stats":
		return runStats(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "textgrade: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("textgrade %s\n", version)
}

// commonFlags are the flags shared by analyze, compare and stats.
type commonFlags struct {
	configPath string
	format     string
	language   string
	outPath    string
	noColor    bool
	verbose    bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&f.format, "format", "f", "", "Output format: text, json, markdown")
	fs.StringVarP(&f.language, "lang", "l", "", "Text language: english, russian, auto")
	fs.StringVarP(&f.outPath, "output", "o", "", "Write output to a file instead of stdout")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVar(&f.verbose, "verbose", false, "Print progress details to stderr")
}

// setup loads configuration and applies flag overrides on top of it.
func setup(f *commonFlags) (*config.Config, *log.Logger, error) {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return nil, nil, err
	}
	if f.language != "" {
		cfg.Language = f.language
	}
	if f.format != "" {
		cfg.Format = f.format
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, log.New(f.verbose, os.Stderr), nil
}

// outWriter returns the destination for rendered output: stdout, or
// the --output file. The caller must call the returned close func.
func outWriter(outPath string) (io.Writer, func() error, error) {
	if outPath == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %q: %w", outPath, err)
	}
	return f, f.Close, nil
}

// runAnalyze implements the "analyze" subcommand: score one text.
func runAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	var f commonFlags
	addCommonFlags(fs, &f)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textgrade analyze [flags] [file]\n\n"+
			"Score the readability of a single text.\n\n"+
			"Reads the named file, or stdin when no file is given and input is piped.\n"+
			"Markdown files are reduced to their prose before scoring.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "textgrade: analyze takes at most one file\n")
		return 2
	}

	cfg, logger, err := setup(&f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textgrade: %v\n", err)
		return 2
	}
	runner := &engine.Runner{Config: cfg, Log: logger}

	var (
		name string
		res  *analyze.Result
	)
	if fs.NArg() == 1 {
		name = fs.Arg(0)
		logger.Printf("analyzing %s (language %s)", name, cfg.EffectiveMode(name))
		res, err = analyze.New(cfg.EffectiveMode(name)).AnalyzeFile(name)
	} else {
		if !isStdinPipe() {
			fs.Usage()
			return 2
		}
		source, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "textgrade: reading stdin: %v\n", readErr)
			return 2
		}
		name = ""
		res, err = runner.RunSource("<stdin>", string(source))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "textgrade: %v\n", err)
		if _, ok := err.(*analyze.ValidationError); ok {
			return 1
		}
		return 2
	}

	return render(cfg, f, func(fmtr output.Formatter, w io.Writer) error {
		return fmtr.FormatResult(w, name, res)
	})
}

// runCompare implements the "compare" subcommand: score many texts.
func runCompare(args []string) int {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	var f commonFlags
	addCommonFlags(fs, &f)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textgrade compare [flags] <files...>\n\n"+
			"Score several texts and report them side by side.\n\n"+
			"Files can be paths, directories (walked recursively for text and\n"+
			"Markdown files), or glob patterns. One unreadable or invalid text\n"+
			"does not stop the rest of the batch.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, logger, err := setup(&f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textgrade: %v\n", err)
		return 2
	}

	files, err := discovery.Resolve(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "textgrade: %v\n", err)
		return 2
	}
	if len(files) == 0 {
		return 0
	}

	runner := &engine.Runner{Config: cfg, Log: logger}
	items := runner.Run(files)

	code := render(cfg, f, func(fmtr output.Formatter, w io.Writer) error {
		return fmtr.FormatComparison(w, items)
	})
	if code != 0 {
		return code
	}
	for _, item := range items {
		if item.Err != nil {
			return 1
		}
	}
	return 0
}

// runStats implements the "stats" subcommand: raw counts only.
func runStats(args []string) int {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	var f commonFlags
	addCommonFlags(fs, &f)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textgrade stats [flags] [file]\n\n"+
			"Print basic text statistics (characters, words, sentences,\n"+
			"paragraphs) without readability scoring or length validation.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "textgrade: stats takes at most one file\n")
		return 2
	}

	var text string
	if fs.NArg() == 1 {
		t, err := analyze.ReadText(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "textgrade: %v\n", err)
			return 2
		}
		text = t
	} else {
		if !isStdinPipe() {
			fs.Usage()
			return 2
		}
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "textgrade: reading stdin: %v\n", err)
			return 2
		}
		text = string(source)
	}

	s := analyze.Stats(text)
	fmt.Printf("characters: %d\ncharacters (no spaces): %d\nwords: %d\n"+
		"unique words: %d\nsentences: %d\nparagraphs: %d\n",
		s.Characters, s.CharactersNoSpaces, s.Words,
		s.UniqueWords, s.Sentences, s.Paragraphs)
	return 0
}

// runInit implements the "init" subcommand: generate .textgrade.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textgrade init\n\n"+
			"Generate a default .textgrade.yml config file in the current directory.\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "textgrade: init takes no arguments\n")
		return 2
	}

	const configFile = ".textgrade.yml"

	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(os.Stderr, "textgrade: %s already exists\n", configFile)
		return 2
	}

	data, err := config.Defaults().Dump()
	if err != nil {
		fmt.Fprintf(os.Stderr, "textgrade: marshalling config: %v\n", err)
		return 2
	}

	if err := os.WriteFile(configFile, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "textgrade: writing %s: %v\n", configFile, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "textgrade: created %s\n", configFile)
	return 0
}

// render builds the configured formatter and writes through it to the
// selected destination.
func render(cfg *config.Config, f commonFlags, write func(output.Formatter, io.Writer) error) int {
	fmtr, err := output.New(cfg.Format, !f.noColor && f.outPath == "", cfg.ReportTitle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textgrade: %v\n", err)
		return 2
	}

	w, closeOut, err := outWriter(f.outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textgrade: %v\n", err)
		return 2
	}

	if err := write(fmtr, w); err != nil {
		_ = closeOut()
		fmt.Fprintf(os.Stderr, "textgrade: error writing output: %v\n", err)
		return 2
	}
	if err := closeOut(); err != nil {
		fmt.Fprintf(os.Stderr, "textgrade: %v\n", err)
		return 2
	}
	return 0
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// loadConfig loads configuration by either using the specified path or
// discovering a .textgrade.yml from the current directory upward.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Defaults(), nil
	}

	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		return config.Defaults(), nil
	}

	return config.Load(discovered)
}
