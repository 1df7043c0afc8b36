package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/vegasq/csvcat/output"
	"github.com/vegasq/csvcat/query"
)

// repl runs the interactive prompt loop against a loaded table. Every
// query error is printed and the loop continues; only the EXIT/QUIT
// sentinel (or EOF) ends the session.
func repl(tbl *query.Table, formatter output.Formatter, limit int) {
	lin := liner.NewLiner()
	defer func() { _ = lin.Close() }()
	lin.SetCtrlCAborts(true)

	fmt.Printf("Loaded table '%s' (%d rows, %d columns).\n", tbl.Name, len(tbl.Rows), len(tbl.Columns))
	fmt.Println("Type EXIT or QUIT to leave.")

	for {
		line, err := lin.Prompt("sql> ")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println("\nGoodbye.")
				return
			}
			fmt.Fprintf(os.Stderr, "unexpected error reading prompt: %v\n", err)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if low := strings.ToLower(line); low == "exit" || low == "quit" {
			fmt.Println("Bye.")
			return
		}

		lin.AppendHistory(line)
		if err := runQuery(line, tbl, formatter, limit); err != nil {
			fmt.Println(err)
		}
	}
}

// runQuery parses and executes one query and renders its result
func runQuery(text string, tbl *query.Table, formatter output.Formatter, limit int) error {
	q, err := query.Parse(text)
	if err != nil {
		return err
	}

	res, err := query.Execute(q, tbl)
	if err != nil {
		return err
	}

	if limit > 0 && len(res.Rows) > limit {
		res.Rows = res.Rows[:limit]
	}

	return formatter.Format(res)
}
