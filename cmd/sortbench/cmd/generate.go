package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/amirkhaki/sortbench/pkg/dataset"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate a synthetic dataset",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := dataset.ParseKind(genKind)
		if err != nil {
			return err
		}
		arr, err := dataset.Generate(genSize, kind, genSeed)
		if err != nil {
			return err
		}

		out := os.Stdout
		if genOutput != "" {
			f, err := os.Create(genOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		return enc.Encode(arr)
	},
}

var (
	genSize   int
	genKind   string
	genSeed   int64
	genOutput string
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&genSize, "size", "n", 1000,
		"number of elements")
	generateCmd.Flags().StringVarP(&genKind, "kind", "k", "random",
		"dataset kind (sorted, reverse, random, nearly_sorted, duplicates_heavy)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42,
		"random seed for reproducibility")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "",
		"write the dataset to a file instead of stdout")
}
