package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/till_reconciliation_app/internal/core/currencytable"
	"github.com/charmbracelet/glamour"
)

func openTable() (*currencytable.Table, error) {
	if *tablePath == "" {
		return currencytable.Default()
	}
	return currencytable.Load(*tablePath)
}

// printMarkdown renders md for the terminal, or prints it as is when raw is set.
func printMarkdown(w io.Writer, md string, raw bool) {
	if raw {
		fmt.Fprint(w, md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
