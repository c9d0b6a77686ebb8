package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const complete = `#! /bin/bash

_wordbook_autocomplete() {
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    # the cli lists the commands and flags valid after the typed words
    opts=$("${COMP_WORDS[@]:0:$COMP_CWORD}" --generate-bash-completion 2>/dev/null)

    if [ $? -eq 0 ]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
    fi
}

complete -o default -F _wordbook_autocomplete wordbook
`

func (e *env) bashCommand(c *cli.Context) error {
	_, err := fmt.Fprint(e.ui.Out, complete)
	return err
}
