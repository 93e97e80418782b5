// Package app runs one filetime invocation: it parses the arguments, then
// queries, sets or syncs file timestamps and reports the outcome as plain
// status lines.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/joe/filetime/internal/config"
	pkgerrors "github.com/joe/filetime/pkg/errors"
	"github.com/joe/filetime/pkg/filesystem"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const syncFailurePrefix = "Error while syncing file times:"

// Processor executes invocations against the stores returned by its Opener.
type Processor struct {
	stdout   io.Writer
	stderr   io.Writer
	out      *printer
	open     filesystem.Opener
	enricher pkgerrors.Enricher
}

// NewProcessor creates a Processor. Status lines go to stdout; suggestions and
// log records go to stderr.
func NewProcessor(stdout, stderr io.Writer, renderer *lipgloss.Renderer, open filesystem.Opener) *Processor {
	return &Processor{
		stdout:   stdout,
		stderr:   stderr,
		out:      newPrinter(stdout, renderer),
		open:     open,
		enricher: pkgerrors.NewEnricher(),
	}
}

// Run processes one argument list and returns the process exit code.
// The file branch and the sync branch run independently; a failure in one
// does not skip the other.
func (p *Processor) Run(args []string) int {
	opts, err := config.Parse(args)
	if err != nil {
		return p.handleParseError(err)
	}

	if err := opts.Validate(); err != nil {
		p.out.Error(err.Error() + ".")
		p.writeHelp()

		return ExitFailure
	}

	logger := newLogger(opts.Verbose, p.stderr)
	logger.Debug("parsed arguments",
		"file", opts.File,
		"get", opts.Get,
		"creation", opts.Creation.String(),
		"modification", opts.Modification.String(),
		"access", opts.Access.String(),
		"sync", opts.Sync)

	code := ExitOK

	if opts.File != "" || opts.Get {
		if !p.runFile(opts, logger) {
			code = ExitFailure
		}
	}

	if opts.HasSync() {
		if !p.runSync(opts.SyncSource(), opts.SyncTarget(), logger) {
			code = ExitFailure
		}
	}

	return code
}

func (p *Processor) handleParseError(err error) int {
	var (
		unknown *config.UnknownArgumentError
		missing *config.MissingValueError
		invalid *config.InvalidTimestampError
	)

	switch {
	case errors.Is(err, config.ErrHelp):
		p.writeHelp()
		return ExitOK
	case errors.Is(err, config.ErrVersion):
		p.out.Line(config.Options{}.Version())
		return ExitOK
	case errors.As(err, &unknown):
		p.out.Line(unknown.Error())
		p.writeHelp()
	case errors.As(err, &missing):
		p.out.Error(missing.Error() + ".")
		p.writeHelp()
	case errors.As(err, &invalid):
		p.out.Error(invalid.Error())
	default:
		p.out.Error(err.Error())
	}

	return ExitUsage
}

func (p *Processor) writeHelp() {
	if err := config.WriteHelp(p.stdout); err != nil {
		p.out.Error(err.Error())
	}
}

// runFile handles --file together with --get or the set flags.
func (p *Processor) runFile(opts *config.Options, logger *slog.Logger) bool {
	if opts.File == "" {
		if opts.FileGiven() {
			p.out.Error("--file path is empty.")
		} else {
			p.out.Error("--get requires --file.")
		}

		return false
	}

	store, path, closer, err := p.open(opts.File)
	if err != nil {
		p.reportError("Error:", err, opts.File)
		return false
	}
	defer closer()

	exists, err := store.Exists(path)
	if err != nil {
		p.reportError("Error:", err, opts.File)
		return false
	}

	if !exists {
		p.out.Error(fmt.Sprintf("File '%s' does not exist.", opts.File))
		return false
	}

	if opts.Get {
		if hasSetFlags(opts) {
			logger.Warn("--get given, ignoring timestamps to set", "file", opts.File)
		}

		return p.query(store, path, opts.File)
	}

	return p.set(store, path, opts, logger)
}

func (p *Processor) query(store filesystem.TimeStore, path, display string) bool {
	times, err := store.Times(path)
	if err != nil {
		p.reportError("Error:", err, display)
		return false
	}

	p.out.Linef("File: %s", display)

	for _, attr := range filesystem.Attributes {
		p.out.Linef("%s Time: %s", attr, config.FormatTime(times.Get(attr)))
	}

	return true
}

// set writes each requested timestamp in attribute order and stops at the
// first I/O failure. Writes already made stay in place. A creation time the
// store cannot write is reported and the remaining attributes are still set.
func (p *Processor) set(
	store filesystem.TimeStore,
	path string,
	opts *config.Options,
	logger *slog.Logger,
) bool {
	unsupported := false

	for _, attr := range filesystem.Attributes {
		ts := requested(opts, attr)
		if !ts.IsSet() {
			continue
		}

		logger.Debug("setting time", "file", opts.File, "attribute", attr.String(), "value", ts.String())

		if err := filesystem.Set(store, attr, path, ts.Time()); err != nil {
			p.reportError("Error:", err, opts.File)

			if errors.Is(err, filesystem.ErrCreationUnsupported) {
				unsupported = true
				continue
			}

			return false
		}

		p.out.Success(fmt.Sprintf("%s time set to %s.", attr, ts))
	}

	if unsupported {
		return false
	}

	p.out.Success("File time properties updated successfully.")

	return true
}

// runSync copies all three timestamps from source onto target.
func (p *Processor) runSync(source, target string, logger *slog.Logger) bool {
	srcStore, dstStore, srcPath, dstPath, closer, err := filesystem.OpenPair(p.open, source, target)
	if err != nil {
		p.reportError(syncFailurePrefix, err, "")
		return false
	}
	defer closer()

	if ok := p.checkSyncFile(srcStore, srcPath, "Source", source); !ok {
		return false
	}

	if ok := p.checkSyncFile(dstStore, dstPath, "Target", target); !ok {
		return false
	}

	times, err := srcStore.Times(srcPath)
	if err != nil {
		p.reportError(syncFailurePrefix, err, source)
		return false
	}

	for _, attr := range filesystem.Attributes {
		value := times.Get(attr)

		if attr == filesystem.Creation && !dstStore.CanSetCreation() {
			logger.Warn("target cannot store creation time, skipping it", "target", target)
			continue
		}

		if value.IsZero() {
			logger.Warn("source does not report this time, skipping it",
				"source", source, "attribute", attr.String())

			continue
		}

		if err := filesystem.Set(dstStore, attr, dstPath, value); err != nil {
			p.reportError(syncFailurePrefix, err, target)
			return false
		}

		logger.Debug("copied time", "attribute", attr.String(), "value", config.FormatTime(value))
	}

	p.out.Success(fmt.Sprintf("Synced times from source '%s' to target '%s'.", source, target))

	return true
}

func (p *Processor) checkSyncFile(store filesystem.TimeStore, path, role, display string) bool {
	exists, err := store.Exists(path)
	if err != nil {
		p.reportError(syncFailurePrefix, err, display)
		return false
	}

	if !exists {
		p.out.Error(fmt.Sprintf("%s file '%s' does not exist.", role, display))
		return false
	}

	return true
}

// reportError prints the failure line on stdout and any suggestions on stderr.
func (p *Processor) reportError(prefix string, err error, affectedPath string) {
	p.out.Failure(prefix, err.Error())

	suggestions := pkgerrors.FormatSuggestions(p.enricher.Enrich(err, affectedPath))
	if suggestions == "" {
		return
	}

	_, _ = fmt.Fprintf(p.stderr, "Try these solutions:\n%s\n", suggestions)
}

func requested(opts *config.Options, attr filesystem.Attribute) config.Timestamp {
	switch attr {
	case filesystem.Creation:
		return opts.Creation
	case filesystem.Modification:
		return opts.Modification
	case filesystem.Access:
		return opts.Access
	default:
		return config.Timestamp{}
	}
}

func hasSetFlags(opts *config.Options) bool {
	return opts.Creation.IsSet() || opts.Modification.IsSet() || opts.Access.IsSet()
}
