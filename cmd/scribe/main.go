package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iw2rmb/scribe"
	"github.com/iw2rmb/scribe/diag"
	"github.com/iw2rmb/scribe/internal/app"
)

const defaultText = "Welcome to scribe.\n\nType to edit. Ctrl+arrows scroll.\nCtrl+L toggles the log, Ctrl+C quits."

func main() {
	text := flag.String("text", defaultText, "initial buffer contents")
	showLog := flag.Bool("log", true, "show the diagnostics panel at start")
	level := flag.String("log-level", "info", "diagnostics level: debug, info, warn or error")
	logMax := flag.Int("log-max", diag.DefaultMaxLines, "maximum number of diagnostics lines kept")
	followOnly := flag.Bool("follow-only", false, "disable manual scrolling; the view only follows the cursor")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(scribe.Banner())
		return
	}

	lvl, err := diag.ParseLevel(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := app.Config{
		Text:       *text,
		ShowLog:    *showLog,
		LogLevel:   lvl,
		LogMax:     *logMax,
		FollowOnly: *followOnly,
	}
	if err := app.Run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
