package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/roe680/bitothello/engine"
)

func main() {
	depth := flag.Int("depth", 5, "default search depth for go, analyze and the AI level")
	logLevel := flag.String("loglevel", "info", "zerolog level: debug, info, warn, error")
	configPath := flag.String("config", "", "optional JSON file overriding engine settings")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid -loglevel:", err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		cfg, err = engine.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	c, err := newConsole(os.Stdout, cfg, *depth)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	c.run(os.Stdin)
}
