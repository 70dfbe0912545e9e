// Copyright 2024 The phamt Authors
// This file is part of phamt.
//
// phamt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Command phamtbench is a demonstration and benchmark harness around the
// trie package's persistent map: a urfave/cli.v1 app, a TOML-backed config,
// and go-ethereum/log for diagnostics.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/urfave/cli.v1"
)

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	sizesFlag = cli.IntSliceFlag{
		Name:  "sizes",
		Usage: "map sizes to benchmark (repeatable)",
	}
	workersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "parallel.ForEach worker count",
		Value: 4,
	}
	memoHashFlag = cli.BoolFlag{
		Name:  "memo-hash",
		Usage: "memoize the key hash function via keyhash.Memo",
	}
	noColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable colorized table output",
	}
)

func buildConfig(ctx *cli.Context) (benchConfig, error) {
	cfg := defaultBenchConfig()
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	if sizes := ctx.GlobalIntSlice(sizesFlag.Name); len(sizes) > 0 {
		cfg.Sizes = sizes
	}
	if ctx.GlobalIsSet(workersFlag.Name) {
		cfg.Workers = ctx.GlobalInt(workersFlag.Name)
	}
	if ctx.GlobalIsSet(memoHashFlag.Name) {
		cfg.MemoHash = ctx.GlobalBool(memoHashFlag.Name)
	}
	if ctx.GlobalIsSet(noColorFlag.Name) {
		cfg.ShowColor = !ctx.GlobalBool(noColorFlag.Name)
	}
	return cfg, nil
}

func runCommand(ctx *cli.Context) error {
	cfg, err := buildConfig(ctx)
	if err != nil {
		log.Error("failed to build config", "err", err)
		return err
	}
	return runBenchmarks(cfg, os.Stdout)
}

func dumpConfigCommand(ctx *cli.Context) error {
	cfg, err := buildConfig(ctx)
	if err != nil {
		return err
	}
	return dumpConfig(cfg, os.Stdout)
}

func main() {
	app := cli.NewApp()
	app.Name = "phamtbench"
	app.Usage = "benchmark and demonstrate the persistent hash array mapped trie"
	app.Flags = []cli.Flag{configFileFlag, sizesFlag, workersFlag, memoHashFlag, noColorFlag}
	app.Commands = []cli.Command{
		{
			Name:   "run",
			Usage:  "run the benchmark matrix and print a results table",
			Action: runCommand,
		},
		{
			Name:   "dumpconfig",
			Usage:  "print the effective configuration as TOML",
			Action: dumpConfigCommand,
		},
	}
	app.Action = runCommand

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
