package main

import (
	"fmt"
	"io"

	"github.com/sjson-format/go-sjson/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := viewArg(cfg, cc, cc.Out, arg); err != nil {
			return err
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}

func viewArg(cfg *ViewConfig, cc *cli.Context, w io.Writer, arg string) error {
	doc, err := loadDocument(cc, arg)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if err := encode.Encode(doc.Node(), w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", arg, err)
	}
	return nil
}
