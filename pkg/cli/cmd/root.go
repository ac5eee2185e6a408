package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// 全局变量
	serverURL  string
	outputJSON bool
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "ppm",
	Short: "PPM CLI - 申请人/地址/联系人记录管理工具",
	Long: `PPM CLI 是一个用于管理申请人、地址和联系人记录的命令行工具。

支持的功能：
  - 管理申请人、地址、联系人（列出、查看、创建、更新、删除）
  - 启动HTTP API服务

使用示例：
  # 列出所有联系人
  ppm contact list

  # 查看申请人
  ppm applicant get 3

  # 创建地址
  ppm address create --data '{"street":"Elm","owner_id":1,"owner_type":"Applicant"}'

  # 启动HTTP服务
  ppm server start --port 8080`,
	SilenceUsage: true,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// 全局参数
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "http://localhost:8080", "PPM服务器地址")
	rootCmd.PersistentFlags().BoolVarP(&outputJSON, "json", "j", false, "使用JSON格式输出")

	// 添加子命令
	rootCmd.AddCommand(applicantCmd)
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(versionCmd)
}
