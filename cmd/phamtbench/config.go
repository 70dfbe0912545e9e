// Copyright 2024 The phamt Authors
// This file is part of phamt.
//
// phamt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
)

// tomlSettings keeps struct field names as the TOML keys verbatim, and
// treats an unrecognized field as a hard error rather than a silent skip.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string { return key },
	FieldToKey:    func(rt reflect.Type, field string) string { return field },
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://pkg.go.dev/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// benchConfig is the effective configuration for a `phamtbench run`
// invocation, loadable from a TOML file and overridable by flags.
type benchConfig struct {
	Sizes      []int `toml:",omitempty"`
	Workers    int
	MemoHash   bool
	MemoSize   int
	ShowColor  bool
}

func defaultBenchConfig() benchConfig {
	return benchConfig{
		Sizes:     []int{1_000, 10_000, 100_000},
		Workers:   4,
		MemoHash:  false,
		MemoSize:  4096,
		ShowColor: true,
	}
}

func loadConfig(file string, cfg *benchConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

func dumpConfig(cfg benchConfig, out *os.File) error {
	data, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
