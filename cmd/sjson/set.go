package main

import (
	"fmt"

	sjson "github.com/sjson-format/go-sjson"
	"github.com/sjson-format/go-sjson/encode"
	"github.com/sjson-format/go-sjson/parse"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: set requires a path, a value and optionally a file", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	val, err := parse.ParseString(args[1])
	if err != nil {
		return fmt.Errorf("%w: invalid value %q: %v", cli.ErrUsage, args[1], err)
	}
	var doc *sjson.Document
	if len(args) == 3 {
		doc, err = loadDocument(cc, args[2])
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[2], err)
		}
	} else {
		doc = sjson.New()
	}
	if err := doc.SetPath(path, val); err != nil {
		return fmt.Errorf("error setting %s: %w", path, err)
	}
	if err := encode.Encode(doc.Node(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}
