// Command arbsh is the interactive bidirectional-text-aware shell.
// It wires together configuration, logging, the command registry, the
// tokenizer/parser, and the pipeline executor, following the same
// flag-parse-then-wire-subsystems shape the teacher's own main uses.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/arbsh/arbsh/internal/buildinfo"
	"github.com/arbsh/arbsh/internal/command"
	"github.com/arbsh/arbsh/internal/config"
	"github.com/arbsh/arbsh/internal/display"
	"github.com/arbsh/arbsh/internal/exec"
	"github.com/arbsh/arbsh/internal/logging"
	"github.com/arbsh/arbsh/internal/registry"
	"github.com/arbsh/arbsh/internal/session"
	"github.com/arbsh/arbsh/internal/shellio"
)

const (
	exitOK                  = 0
	exitScriptNotExecutable = 126
	exitScriptNotFound      = 127
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		debugConsole = flag.Bool("debug-console", false, "print console/input diagnostics before starting")
		logLevel     = flag.String("log-level", "", "override the configured log level")
		envFile      = flag.String("env", "", "path to an alternate .env file")
		showVersion  = flag.Bool("version", false, "print build version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(buildinfo.Current())
		return exitOK
	}

	if *envFile != "" {
		os.Setenv("ARBSH_DOTENV", *envFile)
	}

	cfg := config.New(nil)
	cfg.Load()
	if *logLevel != "" {
		cfg.Set("LOG_LEVEL", *logLevel)
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.String("LOG_LEVEL"),
		LogFile: cfg.String("LOG_FILE"),
		JSON:    cfg.String("ENV") == "prod",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "arbsh: cannot initialize logger: %v\n", err)
		return exitScriptNotFound
	}
	defer logger.Sync()

	sess, err := session.New(".")
	if err != nil {
		logger.Error("cannot start session", zap.Error(err))
		return exitScriptNotFound
	}

	reg := registry.New()
	registry.RegisterBuiltins(reg)
	if manifestPath := cfg.String("COMMANDS_MANIFEST"); manifestPath != "" {
		loadManifest(reg, manifestPath, logger)
	}

	stdout := bufio.NewWriter(os.Stdout)
	stderr := bufio.NewWriter(os.Stderr)
	defer stdout.Flush()
	defer stderr.Flush()

	executor := exec.New(reg, sess, logger, stdout, stderr)
	executor.QueueCapacity = cfg.Int("QUEUE_CAPACITY", executor.QueueCapacity)

	if *debugConsole {
		printDebugConsole(stdout, sess)
	}

	args := flag.Args()
	if len(args) > 0 {
		return runScript(executor, sess, args[0])
	}
	return runInteractive(executor, sess, logger)
}

func loadManifest(reg *registry.Registry, path string, logger *zap.Logger) {
	f, err := os.Open(path)
	if err != nil {
		logger.Debug("no command manifest found", zap.String("path", path), zap.Error(err))
		return
	}
	defer f.Close()
	entries, err := registry.ReadManifest(f)
	if err != nil {
		logger.Warn("cannot parse command manifest", zap.String("path", path), zap.Error(err))
		return
	}
	if err := reg.LoadManifest(entries); err != nil {
		logger.Warn("cannot apply command manifest", zap.String("path", path), zap.Error(err))
	}
}

func printDebugConsole(out *bufio.Writer, sess *session.State) {
	fmt.Fprintf(out, "arbsh debug console\n")
	fmt.Fprintf(out, "  version:     %s\n", buildinfo.Current())
	fmt.Fprintf(out, "  os/arch:     %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "  stdin tty:   %v\n", isatty.IsTerminal(os.Stdin.Fd()))
	fmt.Fprintf(out, "  stdout tty:  %v\n", isatty.IsTerminal(os.Stdout.Fd()))
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		fmt.Fprintf(out, "  terminal:    %dx%d\n", w, h)
	} else {
		fmt.Fprintf(out, "  terminal:    unavailable (%v)\n", err)
	}
	fmt.Fprintf(out, "  session id:  %s\n", sess.ID())
	fmt.Fprintf(out, "  cwd:         %s\n", sess.CurrentDirectory())
	fmt.Fprintf(out, "  language:    %s\n", sess.Language())
	out.Flush()
}

// runScript executes lines from path as if typed interactively, per
// spec §6's "shell <script>" invocation form.
func runScript(executor *exec.Executor, sess *session.State, path string) int {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arbsh: %s: no such script\n", path)
		return exitScriptNotFound
	}
	if info.Mode()&0111 == 0 {
		fmt.Fprintf(os.Stderr, "arbsh: %s: not executable\n", path)
		return exitScriptNotExecutable
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arbsh: %s: %v\n", path, err)
		return exitScriptNotFound
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if runLine(executor, sess, line) == errExitRequestedCode {
			return exitOK
		}
	}
	return exitOK
}

const errExitRequestedCode = -1

// runLine tokenizes, parses, and runs one line, returning
// errExitRequestedCode if the line invoked خروج.
func runLine(executor *exec.Executor, sess *session.State, line string) int {
	tokens := command.NewTokenizer(line).Tokenize()
	parsed := command.NewParser(tokens, sess.Variable).Parse()
	for _, w := range parsed.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.Message)
	}
	for _, stmt := range parsed.Statements {
		if err := executor.RunStatement(stmt); err != nil {
			if isExitRequested(err) {
				return errExitRequestedCode
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
	return exitOK
}

// isExitRequested checks the error text rather than errors.Is:
// RunStatement joins multiple stage errors into one formatted string, which loses
// the %w chain خروج's sentinel would otherwise travel through.
func isExitRequested(err error) bool {
	return strings.Contains(err.Error(), registry.ErrExitRequested.Error())
}

// runInteractive drives the liner REPL loop, following the teacher's
// own Start loop shape: prompt, read, append history, run, repeat.
func runInteractive(executor *exec.Executor, sess *session.State, logger *zap.Logger) int {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	formatter := display.New()
	historyPath := filepath.Join(os.TempDir(), "arbsh_history")
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Println("arbsh — type مساعدة for a command list, خروج to quit")

	for {
		prompt := shellio.Prompt(sess, formatter)
		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				break
			}
			logger.Error("reading input", zap.Error(err))
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if runLine(executor, sess, input) == errExitRequestedCode {
			break
		}
	}

	if f, err := os.Create(historyPath); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
	return exitOK
}
