// -- cmd/gen.go --
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/peacock/internal/codegen"
	"github.com/xkilldash9x/peacock/internal/observability"
)

func newGenCmd(state *appState) *cobra.Command {
	var (
		output    string
		pkgName   string
		varPrefix string
	)

	genCmd := &cobra.Command{
		Use:   "gen <stylesheet>",
		Short: "Generate Go style handles from a stylesheet.",
		Long: `Compiles a stylesheet and emits a Go source file with one exported
handle variable per named rule, backed by a shared compiled sheet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := observability.GetLogger().With(zap.String("component", "gen"))

			// Flags override the generator config.
			gen := state.configOrDefault().Generator()
			if cmd.Flags().Changed("output") {
				gen.Output = output
			}
			if cmd.Flags().Changed("package") {
				gen.Package = pkgName
			}
			if cmd.Flags().Changed("prefix") {
				gen.VarPrefix = varPrefix
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			src, err := codegen.Generate(string(data), codegen.Options{
				Package:   gen.Package,
				VarPrefix: gen.VarPrefix,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			if gen.Output == "-" {
				_, err := cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(gen.Output, src, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", gen.Output, err)
			}

			log.Info("Generated style handles",
				zap.String("source", args[0]),
				zap.String("output", gen.Output),
				zap.String("package", gen.Package))
			return nil
		},
	}

	genCmd.Flags().StringVarP(&output, "output", "o", "", `output file path ("-" for stdout)`)
	genCmd.Flags().StringVarP(&pkgName, "package", "p", "", "package name of the generated file")
	genCmd.Flags().StringVar(&varPrefix, "prefix", "", "prefix for generated handle variables")

	return genCmd
}
