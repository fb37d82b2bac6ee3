//go:build wasm

package main

import (
	"syscall/js"
)

func main() {
	// Export functions to JavaScript
	js.Global().Set("TreelangNewParser", js.FuncOf(newParser))
	js.Global().Set("TreelangParse", js.FuncOf(parse))
	js.Global().Set("TreelangParseBatch", js.FuncOf(parseBatch))
	js.Global().Set("TreelangCloseParser", js.FuncOf(closeParser))
	js.Global().Set("TreelangGetBuiltinCases", js.FuncOf(getBuiltinCases))

	// Keep WASM running
	<-make(chan struct{})
}
