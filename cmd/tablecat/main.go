package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vegasq/tablecat/engine"
	"github.com/vegasq/tablecat/output"
)

var (
	dirFlag    = flag.String("d", ".", "Directory holding the table files")
	formatFlag = flag.String("f", "csv", "Output format: csv, jsonl, table")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] \"<statement>\"\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to run SQL statements over CSV tables.\n\n")
		fmt.Fprintf(os.Stderr, "IMPORTANT: All flags must come BEFORE the statement.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -d tables \"SELECT * FROM clients WHERE age > 18\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -d tables -f table \"SELECT name, age FROM clients ORDER BY age DESC\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -d tables \"INSERT INTO clients (name, age) VALUES ('Alen', 25)\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -d tables \"DELETE FROM clients WHERE city = 'Gaiman'\"\n", os.Args[0])
	}

	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing statement argument\n\n")
		flag.Usage()
		os.Exit(1)
	}
	statement := flag.Arg(0)

	var formatter output.Formatter
	switch *formatFlag {
	case "csv":
		formatter = output.NewCSVFormatter(os.Stdout)
	case "json", "jsonl":
		formatter = output.NewJSONFormatter(os.Stdout)
	case "table":
		formatter = output.NewTableFormatter(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported format '%s'\n", *formatFlag)
		fmt.Fprintf(os.Stderr, "Supported formats: csv, jsonl, table\n")
		os.Exit(1)
	}

	result, err := engine.Execute(*dirFlag, statement)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Mutating statements have no result table to print.
	if result == nil {
		return
	}

	if err := formatter.Format(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}
