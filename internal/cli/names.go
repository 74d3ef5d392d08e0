package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// collectNames returns the card names to print: the arguments, or the
// lines of stdin when there are no arguments or the only one is "-".
func collectNames(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Enter card names, one per line (Ctrl-D to finish):")
		}
		return readNames(in)
	}

	names := make([]string, 0, len(args))
	for _, a := range args {
		if strings.TrimSpace(a) != "" {
			names = append(names, a)
		}
	}
	return names, nil
}

// readNames reads one name per line. Blank lines are skipped and
// surrounding whitespace is trimmed.
func readNames(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}
