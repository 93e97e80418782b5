package config

import (
	"fmt"
)

// UnknownArgumentError reports a token that is not a recognized flag.
type UnknownArgumentError struct {
	Arg string
}

func (e *UnknownArgumentError) Error() string {
	return "Unknown argument: " + e.Arg
}

// MissingValueError reports a flag given as the last token without its operands.
type MissingValueError struct {
	Flag Flag
}

func (e *MissingValueError) Error() string {
	return "missing value for " + e.Flag.String()
}

// InvalidTimestampError reports a timestamp operand that does not match TimestampLayout.
type InvalidTimestampError struct {
	Flag  Flag
	Value string
	Err   error
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid %s value %q: %v", e.Flag, e.Value, e.Err)
}

func (e *InvalidTimestampError) Unwrap() error {
	return e.Err
}

// Parse consumes tokens left to right and returns the parsed options.
// Value-bearing flags take the following tokens unconditionally, even when they
// look like flags. No tokens at all, or --help in any letter case, yields ErrHelp.
//
//nolint:cyclop // One case per flag
func Parse(tokens []string) (*Options, error) {
	if len(tokens) == 0 {
		return nil, ErrHelp
	}

	opts := &Options{}

	for i := 0; i < len(tokens); i++ {
		flag, ok := LookupFlag(tokens[i])
		if !ok {
			return nil, &UnknownArgumentError{Arg: tokens[i]}
		}

		n := flag.Operands()
		if i+n >= len(tokens) {
			return nil, &MissingValueError{Flag: flag}
		}

		operands := tokens[i+1 : i+1+n]
		i += n

		switch flag {
		case FlagHelp:
			return nil, ErrHelp
		case FlagVersion:
			return nil, ErrVersion
		case FlagFile:
			opts.File = operands[0]
			opts.fileGiven = true
		case FlagGet:
			opts.Get = true
		case FlagCreation:
			if err := parseTimestampOperand(&opts.Creation, flag, operands[0]); err != nil {
				return nil, err
			}
		case FlagModification:
			if err := parseTimestampOperand(&opts.Modification, flag, operands[0]); err != nil {
				return nil, err
			}
		case FlagAccess:
			if err := parseTimestampOperand(&opts.Access, flag, operands[0]); err != nil {
				return nil, err
			}
		case FlagSync:
			opts.Sync = []string{operands[0], operands[1]}
		case FlagVerbose:
			opts.Verbose = true
		}
	}

	return opts, nil
}

func parseTimestampOperand(dst *Timestamp, flag Flag, value string) error {
	if err := dst.UnmarshalText([]byte(value)); err != nil {
		return &InvalidTimestampError{Flag: flag, Value: value, Err: err}
	}

	return nil
}
