//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/bbtouchard/yamd"
)

func main() {
	js.Global().Set("parseYAMD", js.FuncOf(parseYAMDWrapper))

	// Keep the program alive
	select {}
}

// parseYAMDWrapper wraps the deserializer with panic recovery
func parseYAMDWrapper(this js.Value, args []js.Value) interface{} {
	var result map[string]interface{}

	defer func() {
		if r := recover(); r != nil {
			result = make(map[string]interface{})
			result["tree"] = ""
			result["errors"] = []interface{}{fmt.Sprintf("panic: %v", r)}
		}
	}()

	if len(args) != 1 {
		result = make(map[string]interface{})
		result["tree"] = ""
		result["errors"] = []interface{}{"expected 1 argument (yamd source text)"}
		return js.ValueOf(result)
	}

	source := args[0].String()
	tree, errs := parseYAMD(source)

	result = make(map[string]interface{})
	result["tree"] = tree

	jsErrors := make([]interface{}, len(errs))
	for i, err := range errs {
		jsErrors[i] = err
	}
	result["errors"] = jsErrors

	return js.ValueOf(result)
}

// parseYAMD deserializes a yamd source string and returns its document tree
// as indented JSON, along with any errors.
func parseYAMD(source string) (string, []string) {
	doc := yamd.Deserialize(source)

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", []string{fmt.Sprintf("encoding error: %v", err)}
	}

	return string(out), nil
}
