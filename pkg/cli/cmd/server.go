package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/LENAX/ppm/internal/storage"
	"github.com/LENAX/ppm/pkg/api"
	"github.com/LENAX/ppm/pkg/cli/output"
	"github.com/LENAX/ppm/pkg/config"
	"github.com/spf13/cobra"
)

var (
	serverPort int
	configPath string
	serverHost string
)

// serverCmd server子命令
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "服务管理命令",
	Long:  `管理PPM HTTP API服务。`,
}

// serverStartCmd 启动服务
var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "启动HTTP API服务",
	Long: `启动PPM HTTP API服务。

示例：
  # 使用默认配置启动（申请人在内存，地址在address.csv，联系人在contacts.db）
  ppm server start

  # 指定端口启动
  ppm server start --port 8080

  # 指定配置文件启动
  ppm server start --config ./configs/ppm.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			// 尝试默认配置路径
			for _, p := range []string{"./configs/ppm.yaml", "./config/ppm.yaml", "./ppm.yaml"} {
				if _, err := os.Stat(p); err == nil {
					configPath = p
					break
				}
			}
		}
		if configPath != "" {
			output.Info("使用配置文件: %s", configPath)
		} else {
			output.Warning("未找到配置文件，使用默认配置")
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			output.Error("加载配置失败: %v", err)
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.PPM.Server.Port = serverPort
		}
		if cmd.Flags().Changed("host") {
			cfg.PPM.Server.Host = serverHost
		}

		ctx := context.Background()
		log.SetFlags(cfg.LogFlags())
		repos, err := storage.NewRepositories(ctx, cfg)
		if err != nil {
			output.Error("初始化存储失败: %v", err)
			return err
		}
		defer repos.Close()

		apiServer := api.NewAPIServer(repos, api.ServerConfig{
			Host:         cfg.PPM.Server.Host,
			Port:         cfg.PPM.Server.Port,
			ReadTimeout:  cfg.PPM.Server.ReadTimeout,
			WriteTimeout: cfg.PPM.Server.WriteTimeout,
			Env:          cfg.PPM.General.Env,
		}, Version)

		// 在goroutine中启动服务器
		go func() {
			if err := apiServer.Start(); err != nil {
				log.Printf("API服务器错误: %v", err)
			}
		}()

		output.Success("PPM Server started on %s", apiServer.Addr())

		// 等待中断信号
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		output.Info("正在关闭服务...")

		// 优雅关闭
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.PPM.Server.WriteTimeout)
		defer cancel()

		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			output.Error("关闭API服务器失败: %v", err)
		}

		output.Success("服务已停止")
		return nil
	},
}

func init() {
	serverStartCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "监听端口")
	serverStartCmd.Flags().StringVarP(&serverHost, "host", "H", "0.0.0.0", "监听地址")
	serverStartCmd.Flags().StringVarP(&configPath, "config", "c", "", "配置文件路径")

	serverCmd.AddCommand(serverStartCmd)
}
