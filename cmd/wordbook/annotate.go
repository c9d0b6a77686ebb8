package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/wordbook/render"
)

func (e *env) annotateCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: %s annotate <target> <sentence>", c.App.Name)
	}

	format := c.String("format")
	if !render.IsSupported(format) {
		return fmt.Errorf("unknown format %q, supported: %s", format, strings.Join(render.SupportedFormats(), ", "))
	}

	target := c.Args().First()
	sentence := strings.Join(c.Args().Tail(), " ")

	_, annotator := e.mustResolver()
	fragments := annotator.Annotate(sentence, target)

	if c.Bool("json") {
		return render.NewJSONRenderer(e.ui.Out).Render(fragments)
	}

	r := render.NewRenderer(e.ui.Out)
	r.Format = format
	r.Fragments(fragments)
	return nil
}
