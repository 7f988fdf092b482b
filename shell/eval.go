package shell

import (
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// eval tries the input as a script expression. It reports false for anything
// that fails to compile or run, so unknown commands fall through to the
// not-found message instead of leaking script errors.
func eval(expr string) (string, bool) {
	// Assignments and statements are not calculator input.
	if strings.ContainsAny(expr, ";{}") {
		return "", false
	}

	script := tengo.NewScript([]byte("__out__ := (" + expr + ")"))
	script.SetImports(stdlib.GetModuleMap("math", "text", "rand"))

	compiled, err := script.Run()
	if err != nil {
		return "", false
	}

	v := compiled.Get("__out__")
	if v == nil || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}
