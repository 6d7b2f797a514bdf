// -- cmd/check.go --
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/peacock/internal/observability"
	"github.com/xkilldash9x/peacock/pkg/engine"
	"github.com/xkilldash9x/peacock/pkg/style"
)

func newCheckCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "check <stylesheet>...",
		Short: "Compile stylesheets and report any errors.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := observability.GetLogger().With(zap.String("component", "check"))

			failed := 0
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				input := string(data)

				sheet, err := engine.CompileStyleSheet(input)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s:%s\n", path, describeCompileError(input, err))
					continue
				}

				for _, name := range sheet.Names() {
					list := sheet.Handle(name).List()
					log.Info("Compiled style rule",
						zap.String("file", path),
						zap.String("rule", name),
						zap.Int("props", len(list.Props)),
						zap.Int("selectors", len(list.Selectors)))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rules OK\n", path, len(sheet.Names()))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d stylesheets failed to compile", failed, len(args))
			}
			return nil
		},
	}
}

// describeCompileError renders a compile failure with line:column position
// when the error carries a byte offset.
func describeCompileError(input string, err error) string {
	var parseErr *style.ParseError
	if errors.As(err, &parseErr) {
		line, col := lineCol(input, parseErr.Offset)
		return fmt.Sprintf("%d:%d: %s", line, col, err)
	}
	return " " + err.Error()
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(input string, offset int) (int, int) {
	if offset > len(input) {
		offset = len(input)
	}
	before := input[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndexByte(before, '\n')
	return line, col
}
