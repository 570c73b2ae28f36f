package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"syscall"
	"time"

	"pathseg/internal/config"
	"pathseg/internal/logging"
	"pathseg/internal/model"
	"pathseg/internal/render"
	"pathseg/internal/segment"
	"pathseg/internal/shell"
	"pathseg/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

// Release location for --update. Override at build time with
// -ldflags "-X main.releaseOwner=... -X main.releaseRepo=...".
var (
	releaseOwner = "abulka"
	releaseRepo  = "pathseg"
)

func checkUpdate(w io.Writer, src latest.Source, currentVer string) error {
	res, err := latest.Check(src, currentVer)
	if err != nil {
		return fmt.Errorf("could not check for updates: %w", err)
	}

	if res.Outdated {
		fmt.Fprintf(w, "✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Fprintf(w, "👉 Download it from https://github.com/%s/%s/releases\n", releaseOwner, releaseRepo)
	} else {
		fmt.Fprintf(w, "✅ You are using the latest version: %s\n", currentVer)
	}
	return nil
}

// cliFlags holds the flags that are not settings.
type cliFlags struct {
	home       *string
	noNewline  *bool
	json       *bool
	preview    *bool
	init       *string
	time       *bool
	timeFormat *string
	verbosity  *int
	log        *string
	version    *bool
	update     *bool
	help       *bool
}

// defineFlags registers every flag on fs. Settings flags write straight into
// cfg, so their defaults are the already layered values.
func defineFlags(fs *pflag.FlagSet, cfg *config.Config) *cliFlags {
	fs.StringVarP(&cfg.Separator, "separator", "s", cfg.Separator, "Text placed between path elements")
	fs.IntVarP(&cfg.MaxElems, "max", "m", cfg.MaxElems, "Maximum number of elements to show (negative for no limit)")
	fs.StringVar(&cfg.Ellipsis, "ellipsis", cfg.Ellipsis, "Truncation marker (reserved, not currently written)")
	fs.BoolVar(&cfg.ShowHome, "show-home", cfg.ShowHome, "Abbreviate the home directory to ~")
	fs.StringVar(&cfg.Foreground, "fg", cfg.Foreground, "Foreground color: name, 0-255 or #rrggbb")
	fs.StringVar(&cfg.Background, "bg", cfg.Background, "Background color: name, 0-255 or #rrggbb")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "When to use color: always, auto or never")
	fs.StringVar(&cfg.Shell, "shell", cfg.Shell, "Wrap escapes for a prompt: zsh, bash or plain")

	return &cliFlags{
		home:       fs.String("home", "", "Home directory to abbreviate (default: the current user's)"),
		noNewline:  fs.BoolP("no-newline", "n", false, "Do not print the trailing newline"),
		json:       fs.BoolP("json", "j", false, "Output the path elements as JSON"),
		preview:    fs.BoolP("preview", "p", false, "Preview the rendering interactively"),
		init:       fs.String("init", "", "Print prompt setup for a shell: auto ($SHELL), zsh or bash"),
		time:       fs.BoolP("time", "t", false, "Show the current time instead of a path"),
		timeFormat: fs.String("time-format", segment.DefaultTimeFormat, "strftime format for --time"),
		verbosity:  fs.CountP("verbose", "v", "Increase log verbosity (repeatable)"),
		log:        fs.String("log", "", "Also write logs to a file (auto: XDG state directory)"),
		version:    fs.BoolP("version", "V", false, "Print version information"),
		update:     fs.BoolP("update", "u", false, "Check for a newer release"),
		help:       fs.BoolP("help", "h", false, "Show this help message"),
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pathseg [options] [path]\n\n")
		fmt.Fprintf(os.Stderr, "pathseg prints a path as a short, colored prompt segment.\n")
		fmt.Fprintf(os.Stderr, "The home directory is shown as ~ and long paths are cut to --max elements.\n")
		fmt.Fprintf(os.Stderr, "Every option can also be set with a PATHSEG_* environment variable\n")
		fmt.Fprintf(os.Stderr, "(e.g. PATHSEG_SEPARATOR, PATHSEG_MAX_ELEMS, PATHSEG_FG).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pathseg                      # Current directory, e.g. ~ / src / app\n")
		fmt.Fprintf(os.Stderr, "  pathseg -s ' > ' -m -1 /etc  # Custom separator, no limit\n")
		fmt.Fprintf(os.Stderr, "  eval \"$(pathseg --init auto)\" # Install into your prompt ($SHELL)\n")
		fmt.Fprintf(os.Stderr, "  pathseg --init bash          # Prompt setup for a specific shell\n")
		fmt.Fprintf(os.Stderr, "  pathseg -t --time-format %%R  # Current time, e.g. 14:07\n")
		fmt.Fprintf(os.Stderr, "  pathseg --preview            # Try settings interactively\n")
	}

	flags := defineFlags(pflag.CommandLine, cfg)
	pflag.Parse()

	if *flags.help {
		pflag.Usage()
		return
	}

	if *flags.version {
		fmt.Printf("pathseg version %s\n", model.Version)
		return
	}

	logFile, err := logging.ResolveLogFile(*flags.log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.SetupLogger(*flags.verbosity, os.Stderr, logFile)

	if *flags.update {
		src := &latest.GithubTag{Owner: releaseOwner, Repository: releaseRepo}
		if err := checkUpdate(os.Stdout, src, model.Version); err != nil {
			log.Debug().Err(err).Str("owner", releaseOwner).Str("repo", releaseRepo).Msg("Update check failed")
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *flags.init != "" {
		if err := runInitMode(os.Stdout, *flags.init); err != nil {
			log.Error().Err(err).Msg("Cannot print prompt setup")
			os.Exit(1)
		}
		return
	}

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("Invalid settings")
		os.Exit(1)
	}

	if *flags.time {
		if *flags.json || *flags.preview || pflag.NArg() > 0 {
			log.Error().Msg("--time cannot be combined with a path, --json or --preview")
			os.Exit(1)
		}
		clock := segment.NewDateTime(time.Now(), *flags.timeFormat)
		exitOnRenderError(runRenderMode(cfg, clock.Elements(), !*flags.noNewline))
		return
	}

	path, err := resolvePath(pflag.Args())
	if err != nil {
		log.Error().Err(err).Msg("Cannot determine path")
		os.Exit(1)
	}
	home := resolveHome(*flags.home)

	log.Debug().
		Str("path", path).
		Str("home", home).
		Bool("showHome", cfg.ShowHome).
		Int("maxElems", cfg.MaxElems).
		Str("color", cfg.Color).
		Str("shell", cfg.Shell).
		Msg("Settings resolved")

	seg := segment.New(path, home, cfg.ShowHome)

	if *flags.preview {
		if err := runPreviewMode(cfg, seg, home); err != nil {
			log.Error().Err(err).Msg("Cannot run preview")
			os.Exit(1)
		}
		return
	}

	if *flags.json {
		runJsonMode(cfg, seg, home)
		return
	}

	exitOnRenderError(runRenderMode(cfg, seg.Elements(), !*flags.noNewline))
}

// exitOnRenderError exits 1 on a failed render. A closed pipe is not logged;
// the reader went away.
func exitOnRenderError(err error) {
	if err == nil {
		return
	}
	if !errors.Is(err, syscall.EPIPE) {
		log.Error().Err(err).Msg("Failed to write segment")
	}
	os.Exit(1)
}

func runRenderMode(cfg *config.Config, elems iter.Seq[model.Element], newline bool) error {
	profile := render.ProfileFor(cfg.ColorMode(), os.Stdout)
	w := render.NewTermWriter(os.Stdout, profile, cfg.Dialect())

	if err := render.WriteStyled(w, elems, cfg.JoinPolicy(), cfg.Style()); err != nil {
		return err
	}
	if newline {
		_, err := fmt.Fprintln(os.Stdout)
		return err
	}
	return nil
}

type jsonOutput struct {
	Path     string   `json:"path"`
	Home     string   `json:"home,omitempty"`
	ShowHome bool     `json:"showHome"`
	Elements []string `json:"elements"`
	Rendered string   `json:"rendered"`
	Total    int      `json:"total"`
	Dropped  int      `json:"dropped"`
}

func runJsonMode(cfg *config.Config, seg *segment.Path, home string) {
	policy := cfg.JoinPolicy()

	shown := []string{}
	for e := range render.Take(seg.Elements(), policy.MaxElems) {
		shown = append(shown, e.Text)
	}
	total := seg.Len()

	out := jsonOutput{
		Path:     seg.Source(),
		Home:     home,
		ShowHome: cfg.ShowHome,
		Elements: shown,
		Rendered: render.String(seg.Elements(), policy),
		Total:    total,
		Dropped:  total - len(shown),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON")
		os.Exit(1)
	}
}

func runPreviewMode(cfg *config.Config, seg *segment.Path, home string, opts ...tea.ProgramOption) error {
	m := tui.InitialModel(seg.Source(), home, cfg.JoinPolicy(), cfg.Style(), cfg.ShowHome)
	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}

func runInitMode(w io.Writer, name string) error {
	var sh shell.Shell
	if name == "auto" {
		sh = shell.DetectShell(os.Getenv("SHELL"))
	} else {
		found, err := shell.Lookup(name)
		if err != nil {
			return err
		}
		sh = found
	}

	script := sh.InitScript(executable())
	if script == "" {
		return fmt.Errorf("no prompt setup for shell %q", sh.Name())
	}
	_, err := io.WriteString(w, script)
	return err
}

func executable() string {
	exe, err := os.Executable()
	if err != nil {
		log.Debug().Err(err).Msg("Cannot locate executable, using bare name")
		return "pathseg"
	}
	return exe
}

func resolvePath(args []string) (string, error) {
	switch len(args) {
	case 0:
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("expected at most one path, got %d", len(args))
	}
}

// resolveHome returns the home directory to abbreviate, or "" when it cannot
// be determined, in which case paths are shown in full.
func resolveHome(override string) string {
	if override != "" {
		return override
	}
	home, err := os.UserHomeDir()
	if err != nil {
		log.Debug().Err(err).Msg("Home directory unavailable, showing full paths")
		return ""
	}
	return home
}
