//go:build targ

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/toejough/go-reorder"
	"github.com/toejough/targ"
	"github.com/toejough/targ/sh"
)

// Check runs all checks & fixes on the code, in order of correctness.
func Check() error {
	fmt.Println("Checking...")

	return targ.Deps(
		Tidy,         // clean up the module dependencies
		FixImports,   // fix imports before anything that parses the tree
		Test,         // does our code work?
		ReorderDecls, // linter will yell about declaration order if not correct
		Lint,
	)
}

// FixImports fixes import ordering and removes unused imports.
func FixImports() error {
	fmt.Println("Fixing imports...")

	return sh.Run("goimports", "-w", ".")
}

// Lint runs the linter.
func Lint() error {
	fmt.Println("Linting...")

	return sh.Run("golangci-lint", "run", "./...")
}

// Mutate runs mutation testing over the engine.
func Mutate() error {
	fmt.Println("Running mutation tests...")

	if err := targ.Deps(TestForFail); err != nil {
		return err
	}

	return sh.Run("go", "test", "-tags=mutation", "-run", "TestMutation", "./dev")
}

// ReorderDecls reorders declarations in every source file and prints a diff
// for each file it changes.
func ReorderDecls() error {
	fmt.Println("Reordering declarations...")

	return filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		name := info.Name()

		if info.IsDir() {
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "dev" {
				return filepath.SkipDir
			}

			return nil
		}

		if !strings.HasSuffix(name, ".go") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to read %s: %w", path, err)
		}

		reordered, err := reorder.Source(string(content))
		if err != nil {
			return fmt.Errorf("unable to reorder %s: %w", path, err)
		}

		if reordered == string(content) {
			return nil
		}

		fmt.Println(textdiff.Unified(path+" (current)", path+" (reordered)", string(content), reordered))

		return os.WriteFile(path, []byte(reordered), info.Mode().Perm())
	})
}

// Test runs the tests.
func Test() error {
	fmt.Println("Testing...")

	return sh.Run("go", "test", "-race", "-timeout=60s", "./...")
}

// TestForFail runs the tests with fail-fast settings for mutation runs.
func TestForFail() error {
	fmt.Println("Testing (fail fast)...")

	return sh.Run("go", "test", "-count=1", "-timeout=60s", "./...", "-failfast")
}

// Tidy tidies up go.mod.
func Tidy() error {
	fmt.Println("Tidying go.mod...")

	return sh.Run("go", "mod", "tidy")
}
