package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/s0up4200/fotmob/batch"
	"github.com/s0up4200/fotmob/fotmob"
	"github.com/s0up4200/fotmob/query"
)

// batchLine is one line of batch output
type batchLine struct {
	ID   string `json:"id"`
	Data any    `json:"data"`
}

// printDocument writes doc to w, projected through --query when set
func printDocument(w io.Writer, doc fotmob.Value) error {
	indent := cfg.Output.Pretty || isTerminal(w)
	return render(w, doc, queryExpr, indent)
}

// printBatchItem writes one compact JSON line for a batch result
func printBatchItem(w io.Writer, item batch.Item) error {
	data, err := project(item.Value, queryExpr)
	if err != nil {
		return fmt.Errorf("%s: %w", item.ID, err)
	}
	return encode(w, batchLine{ID: item.ID, Data: data}, false)
}

func render(w io.Writer, doc fotmob.Value, expression string, indent bool) error {
	data, err := project(doc, expression)
	if err != nil {
		return err
	}
	return encode(w, data, indent)
}

func project(doc fotmob.Value, expression string) (any, error) {
	if expression == "" {
		return doc, nil
	}

	result, err := query.Evaluate(expression, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}
	return result, nil
}

func encode(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
