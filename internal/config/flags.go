package config

import (
	"flag"
	"os"
	"time"

	"github.com/tenzodev/tenzoauth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-n string   application name
//	-s string   application secret
//	-v string   application version
//	-u string   base URL of the remote store
//	-t int      request timeout (seconds)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-n", "-s", "-v", "-u", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AppName, "n", cfg.AppName, "application name")
	fs.StringVar(&cfg.Secret, "s", cfg.Secret, "application secret")
	fs.StringVar(&cfg.Version, "v", cfg.Version, "application version")
	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "base URL of the remote store")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
