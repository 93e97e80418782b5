// Package config handles command-line argument parsing, validation and help output.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexflint/go-arg"
)

// ProgramName is the name shown in usage text.
const ProgramName = "filetime"

// Exported errors.
var (
	// ErrHelp is returned by Parse when usage text was requested.
	ErrHelp = errors.New("help requested")
	// ErrVersion is returned by Parse when the version was requested.
	ErrVersion = errors.New("version requested")
	// ErrMissingTarget is returned by Validate when there is nothing to operate on.
	ErrMissingTarget = errors.New("--file or --sync parameter is required")
)

// Flag identifies a recognized command-line flag.
type Flag int

// Recognized flags.
const (
	FlagFile Flag = iota
	FlagGet
	FlagCreation
	FlagModification
	FlagAccess
	FlagSync
	FlagVerbose
	FlagVersion
	FlagHelp
)

// String returns the canonical spelling of the flag.
func (f Flag) String() string {
	switch f {
	case FlagFile:
		return "--file"
	case FlagGet:
		return "--get"
	case FlagCreation:
		return "--creation"
	case FlagModification:
		return "--modification"
	case FlagAccess:
		return "--access"
	case FlagSync:
		return "--sync"
	case FlagVerbose:
		return "--verbose"
	case FlagVersion:
		return "--version"
	case FlagHelp:
		return "--help"
	default:
		return "unknown"
	}
}

// Operands returns how many following tokens the flag consumes.
func (f Flag) Operands() int {
	switch f {
	case FlagFile, FlagCreation, FlagModification, FlagAccess:
		return 1
	case FlagSync:
		return 2 //nolint:mnd // --sync <source> <target>
	default:
		return 0
	}
}

// LookupFlag maps a token to a flag. Matching is case-sensitive except for --help.
func LookupFlag(token string) (Flag, bool) {
	if strings.EqualFold(token, "--help") || token == "-h" {
		return FlagHelp, true
	}

	switch token {
	case "--file":
		return FlagFile, true
	case "--get":
		return FlagGet, true
	case "--creation":
		return FlagCreation, true
	case "--modification":
		return FlagModification, true
	case "--access":
		return FlagAccess, true
	case "--sync":
		return FlagSync, true
	case "--verbose", "-v":
		return FlagVerbose, true
	case "--version":
		return FlagVersion, true
	default:
		return 0, false
	}
}

// Options holds one invocation's parsed arguments.
// The go-arg tags describe the flags for the usage text.
type Options struct {
	File         string    `arg:"--file" placeholder:"PATH" help:"path to the file to query or update (local path or sftp://user@host/path)"`
	Get          bool      `arg:"--get" help:"print the creation, modification and access time of --file (unknown when the filesystem does not record it)"`
	Creation     Timestamp `arg:"--creation" placeholder:"TIME" help:"creation time to set (format: yyyy-MM-dd HH:mm:ss)"`
	Modification Timestamp `arg:"--modification" placeholder:"TIME" help:"modification time to set (format: yyyy-MM-dd HH:mm:ss)"`
	Access       Timestamp `arg:"--access" placeholder:"TIME" help:"access time to set (format: yyyy-MM-dd HH:mm:ss)"`
	Sync         []string  `arg:"--sync" placeholder:"SOURCE TARGET" help:"copy all three times from SOURCE onto TARGET; TARGET must already exist"`
	Verbose      bool      `arg:"-v,--verbose" help:"log debug details to stderr"`

	fileGiven bool
}

// Description returns the program description for go-arg
func (Options) Description() string {
	return "Read, set or copy the creation, modification and access times of a file."
}

// Epilogue returns the example block printed after the options.
func (Options) Epilogue() string {
	return strings.Join([]string{
		"Examples:",
		`  filetime --file test.txt --creation "2025-01-01 12:00:00" --modification "2025-01-02 14:00:00"`,
		"  filetime --file test.txt --get",
		"  filetime --sync source.txt target.txt",
	}, "\n")
}

// Version returns the version string for go-arg
func (Options) Version() string {
	return "filetime 1.0.0"
}

// FileGiven reports whether --file appeared, even with an empty path.
func (o *Options) FileGiven() bool {
	return o.fileGiven
}

// HasSync reports whether --sync was given with a source path.
// An empty target is left to the existence check.
func (o *Options) HasSync() bool {
	return len(o.Sync) == 2 && o.Sync[0] != ""
}

// SyncSource returns the file whose times are copied.
func (o *Options) SyncSource() string {
	if len(o.Sync) == 0 {
		return ""
	}

	return o.Sync[0]
}

// SyncTarget returns the file whose times are overwritten.
func (o *Options) SyncTarget() string {
	if len(o.Sync) < 2 { //nolint:mnd // source and target
		return ""
	}

	return o.Sync[1]
}

// Validate checks that the invocation names something to operate on.
func (o *Options) Validate() error {
	if o.File == "" && o.SyncSource() == "" && !o.Get {
		return ErrMissingTarget
	}

	return nil
}

// WriteHelp writes the usage text to w.
func WriteHelp(w io.Writer) error {
	parser, err := arg.NewParser(arg.Config{Program: ProgramName}, &Options{})
	if err != nil {
		return fmt.Errorf("failed to build usage text: %w", err)
	}

	parser.WriteHelp(w)

	return nil
}
