package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/wordbook/server"
)

func (e *env) serveCommand(c *cli.Context) error {
	if c.IsSet("addr") {
		e.conf.ListenAddress = c.String("addr")
	}
	if c.IsSet("port") {
		e.conf.ListenPort = c.Int("port")
	}
	if c.IsSet("cors-origin") {
		e.conf.CorsAllowedOrigins = c.StringSlice("cors-origin")
	}

	repo, closeRepo, err := NewWordRepository(e.conf.WordsPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	resolver, annotator := e.mustResolver()

	handler := server.NewHandler(e.conf, server.NewActions(resolver, annotator, repo), BuildTag)
	return server.Run(e.conf, handler)
}
