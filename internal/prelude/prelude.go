// Package prelude constructs the base frame: the root of every frame
// chain, carrying the truth symbol, the native function layer, and —
// optionally — the bundled standard-library source text evaluated
// once at construction time.
package prelude

import (
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/vellum-lang/vellum/bootstrap"
	"github.com/vellum-lang/vellum/internal/eval"
	"github.com/vellum-lang/vellum/internal/frame"
	"github.com/vellum-lang/vellum/internal/native"
	"github.com/vellum-lang/vellum/internal/reader"
	"github.com/vellum-lang/vellum/internal/value"
	"github.com/vellum-lang/vellum/internal/verror"
)

// Base constructs a fresh base frame with the truth symbol and every
// built-in native installed, writing print output to out.
func Base(out io.Writer) *frame.Frame {
	root := frame.New()
	root.Set("true", value.Intern("true"))
	native.Register(root, out)
	return root
}

// LoadBootstrap evaluates every bundled .lisp source file against
// evaluator, in sorted filename order. A failure here is a build-time
// defect, not a runtime condition, so callers that ship the standard
// binary can treat an error as fatal.
func LoadBootstrap(ev *eval.Evaluator) error {
	return LoadBootstrapFromFS(ev, bootstrap.Files())
}

func LoadBootstrapFromFS(ev *eval.Evaluator, bootstrapFS fs.FS) error {
	var scripts []string
	err := fs.WalkDir(bootstrapFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".lisp") {
			scripts = append(scripts, path)
		}
		return nil
	})
	if err != nil {
		return verror.IOError(fmt.Sprintf("walk bootstrap filesystem: %v", err))
	}
	sort.Strings(scripts)

	for _, script := range scripts {
		content, err := fs.ReadFile(bootstrapFS, script)
		if err != nil {
			return verror.IOError(fmt.Sprintf("read bootstrap script %s: %v", script, err))
		}
		form, err := reader.Read(string(content))
		if err != nil {
			return err
		}
		if _, err := ev.Eval(form); err != nil {
			return err
		}
	}
	return nil
}

// NewEvaluator builds a base frame, installs the bundled standard
// library, and returns an Evaluator ready for REPL or script use.
func NewEvaluator(out io.Writer) (*eval.Evaluator, error) {
	ev := eval.NewEvaluator(Base(out))
	if err := LoadBootstrap(ev); err != nil {
		return nil, err
	}
	return ev, nil
}
