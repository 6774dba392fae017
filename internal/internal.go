// Package internal holds the process-wide configuration surface: the CLI
// flags, their environment variable fallbacks, and the typed values the
// rest of the application reads.
package internal

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Flag describes a CLI flag with an environment variable fallback.
// Environment variables take precedence over flag defaults; an explicit
// flag on the command line takes precedence over both.
type Flag struct {
	Name    string
	EnvVar  string
	Default string
	Usage   string

	registered bool
	value      string
}

// Value returns the effective value of the flag.
func (f *Flag) Value() string {
	if !f.registered {
		return f.lookupDefault()
	}
	return f.value
}

func (f *Flag) lookupDefault() string {
	if v, ok := os.LookupEnv(f.EnvVar); ok {
		return v
	}
	return f.Default
}

// Typed configuration values populated by ValidateEnv.
var (
	Env           string
	LogLevel      string
	Port          uint16
	Understanding string
)

// Flag definitions.
var (
	EnvFlag = Flag{
		Name:    "env",
		EnvVar:  "ADSTREAM_ENV",
		Default: "development",
		Usage:   "deployment environment name",
	}
	LogLevelFlag = Flag{
		Name:    "log-level",
		EnvVar:  "ADSTREAM_LOG_LEVEL",
		Default: "info",
		Usage:   "log level (trace|debug|info|warn|error)",
	}
	PortFlag = Flag{
		Name:    "port",
		EnvVar:  "ADSTREAM_PORT",
		Default: "50051",
		Usage:   "ads service port",
	}
	UnderstandingFlag = Flag{
		Name:    "understanding",
		EnvVar:  "ADSTREAM_UNDERSTANDING",
		Default: "refined understanding based on query analysis",
		Usage:   "refined understanding sent with the second context",
	}
)

// RegisterCommandFlags registers the given flags on the command.
func RegisterCommandFlags(cmd *cobra.Command, flags []*Flag) error {
	for _, f := range flags {
		if f.Name == "" {
			return errors.New("flag name must not be empty")
		}
		cmd.PersistentFlags().StringVar(&f.value, f.Name, f.lookupDefault(), f.Usage)
		f.registered = true
	}
	return nil
}

// ValidateEnv parses the registered flag values into the typed package
// variables, rejecting values that cannot be used.
func ValidateEnv() error {
	Env = EnvFlag.Value()

	LogLevel = LogLevelFlag.Value()
	switch LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unknown log level %q", LogLevel)
	}

	port, err := strconv.ParseUint(PortFlag.Value(), 10, 16)
	if err != nil {
		return errors.Wrapf(err, "parse port %q failed", PortFlag.Value())
	}
	if port == 0 {
		return errors.New("port must be non-zero")
	}
	Port = uint16(port)

	Understanding = UnderstandingFlag.Value()
	return nil
}
