// Package parser reads the engine's input file format: one fact per
// line, either arg(name). or att(attacker,target)., whitespace
// permitted anywhere. It streams a file straight into a core.Framework,
// so an att( line can only reference an argument a prior arg( line in
// the same file has already declared.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/katalvlaran/dungaf/bitmatrix"
	"github.com/katalvlaran/dungaf/core"
)

// ErrSyntax indicates a line matched neither the arg( nor the att(
// grammar.
var ErrSyntax = errors.New("parser: invalid line")

// ParseFile opens path and parses it as an argumentation framework file.
func ParseFile(path string) (*core.Framework, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: opening %s: %w", path, err)
	}
	defer file.Close()

	f, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parser: %s: %w", path, err)
	}
	return f, nil
}

// Parse reads every line of r and builds the Framework it describes.
func Parse(r io.Reader) (*core.Framework, error) {
	f := core.NewFramework(bitmatrix.NewMatrix())

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := stripSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := parseLine(f, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parser: reading input: %w", err)
	}

	return f, nil
}

// parseLine dispatches a single whitespace-stripped line to the arg( or
// att( handler, matching the reserved-prefix grammar of the file format.
func parseLine(f *core.Framework, line string) error {
	switch {
	case strings.HasPrefix(line, "arg(") && strings.HasSuffix(line, ")."):
		name := line[len("arg(") : len(line)-len(").")]
		if err := f.AddArgument(name); err != nil {
			return err
		}
	case strings.HasPrefix(line, "att(") && strings.HasSuffix(line, ")."):
		body := line[len("att(") : len(line)-len(").")]
		comma := strings.IndexByte(body, ',')
		if comma < 0 {
			return fmt.Errorf("%w: %q", ErrSyntax, line)
		}
		attacker, target := body[:comma], body[comma+1:]
		if err := f.AddAttack(attacker, target); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrSyntax, line)
	}
	return nil
}

// stripSpace removes every whitespace rune from s, matching the
// original file format's tolerance for spacing anywhere in a line.
func stripSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
