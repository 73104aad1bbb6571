package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/bbtouchard/yamd"
)

func main() {
	var asJSON bool
	flag.BoolVar(&asJSON, "json", false, "print the parsed document tree as JSON instead of re-rendering it")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: yamd [-json] <input.yamd>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	inputFile := flag.Arg(0)
	data, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	doc := yamd.Deserialize(string(data))

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			fmt.Printf("Error encoding document: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(doc.String())
}
