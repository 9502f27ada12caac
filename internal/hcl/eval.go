package hcl

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext builds the evaluation context for a manifest located in
// baseDir. Relative paths given to file() resolve against that directory.
func newEvalContext(baseDir string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cpu_count": cty.NumberIntVal(int64(runtime.NumCPU())),
		},
		Functions: map[string]function.Function{
			"file":      fileFunc(baseDir),
			"trimspace": stdlib.TrimSpaceFunc,
			"max":       stdlib.MaxFunc,
			"min":       stdlib.MinFunc,
		},
	}
}

// fileFunc returns a function reading a file's contents as a string.
func fileFunc(baseDir string) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "path", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			path := args[0].AsString()
			if !filepath.IsAbs(path) {
				path = filepath.Join(baseDir, path)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return cty.NilVal, fmt.Errorf("failed to read %s: %w", path, err)
			}
			return cty.StringVal(string(data)), nil
		},
	})
}
