package main

import (
	"fmt"

	"github.com/sjson-format/go-sjson/ir"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := loadDocument(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := loadDocument(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if ir.Equal(a.Node(), b.Node()) {
		return nil
	}
	aText, err := a.Text()
	if err != nil {
		return err
	}
	bText, err := b.Text()
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(aText, bText, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if _, err := cc.Out.Write([]byte(dmp.DiffPrettyText(diffs))); err != nil {
		return err
	}
	if _, err := cc.Out.Write([]byte("\n")); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
