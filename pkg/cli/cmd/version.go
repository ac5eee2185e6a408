package cmd

import (
	"fmt"

	"github.com/LENAX/ppm/pkg/cli/output"
	"github.com/spf13/cobra"
)

// 版本信息（编译时注入）
var (
	Version   = "0.3.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// versionCmd version命令
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "显示版本信息",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(output.Out, "PPM CLI\n")
		fmt.Fprintf(output.Out, "  Version:    %s\n", Version)
		fmt.Fprintf(output.Out, "  Git Commit: %s\n", GitCommit)
		fmt.Fprintf(output.Out, "  Build Time: %s\n", BuildTime)
	},
}
