package main

import (
	"fmt"
	"io"
	"os"

	sjson "github.com/sjson-format/go-sjson"

	"github.com/scott-cotton/cli"
)

func loadDocument(cc *cli.Context, path string) (*sjson.Document, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return sjson.ParseBytes(d)
}
