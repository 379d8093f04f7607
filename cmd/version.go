package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of toolctl",
		Long:  `All software has versions. This is toolctl's.`,
		Run: func(cmd *cobra.Command, args []string) {
			// The version template in root.go already handles --version;
			// the explicit command is kept because it is what people type.
			fmt.Printf("toolctl version %s\n", rootCmd.Version)
		},
	}
}
