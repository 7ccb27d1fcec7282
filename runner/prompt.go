package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ResolveKeyword trims s and falls back to def when nothing is left.
func ResolveKeyword(s, def string) string {
	if k := strings.TrimSpace(s); k != "" {
		return k
	}
	return def
}

// PromptKeyword asks for a search keyword on out and reads one line from in.
// An empty answer or end of input yields def.
func PromptKeyword(in io.Reader, out io.Writer, def string) (string, error) {
	fmt.Fprintf(out, "Search keyword (default: %s): ", def)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("runner: read keyword: %w", err)
	}
	return ResolveKeyword(line, def), nil
}
