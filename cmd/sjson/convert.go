package main

import (
	"fmt"

	"github.com/sjson-format/go-sjson/encode"
	"github.com/sjson-format/go-sjson/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		doc, err := loadDocument(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if cfg.Y {
			d, err := yaml.Marshal(ir.ToAny(doc.Node()))
			if err != nil {
				return fmt.Errorf("error encoding %s as yaml: %w", arg, err)
			}
			if _, err := cc.Out.Write(d); err != nil {
				return err
			}
			continue
		}
		if err := encode.Encode(doc.Node(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
