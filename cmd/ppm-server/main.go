package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/LENAX/ppm/internal/storage"
	"github.com/LENAX/ppm/pkg/api"
	"github.com/LENAX/ppm/pkg/config"
)

var (
	Version   = "0.3.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	// 命令行参数，非零值覆盖配置文件
	configPath := flag.String("config", "./configs/ppm.yaml", "配置文件路径")
	host := flag.String("host", "", "监听地址")
	port := flag.Int("port", 0, "监听端口")
	flag.Parse()

	log.Printf("PPM Server v%s (%s, %s)", Version, GitCommit, BuildTime)
	log.Printf("配置文件: %s", *configPath)

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	if *host != "" {
		cfg.PPM.Server.Host = *host
	}
	if *port > 0 {
		cfg.PPM.Server.Port = *port
	}

	// 2. 初始化存储
	log.SetFlags(cfg.LogFlags())
	repos, err := storage.NewRepositories(context.Background(), cfg)
	if err != nil {
		log.Fatalf("初始化存储失败: %v", err)
	}

	// 3. 创建API服务器
	apiServer := api.NewAPIServer(repos, api.ServerConfig{
		Host:         cfg.PPM.Server.Host,
		Port:         cfg.PPM.Server.Port,
		ReadTimeout:  cfg.PPM.Server.ReadTimeout,
		WriteTimeout: cfg.PPM.Server.WriteTimeout,
		Env:          cfg.PPM.General.Env,
	}, Version)

	// 4. 在goroutine中启动API服务器
	go func() {
		if err := apiServer.Start(); err != nil {
			log.Printf("API服务器错误: %v", err)
		}
	}()

	log.Printf("✅ PPM Server started on %s", apiServer.Addr())

	// 5. 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 6. 优雅关闭
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.PPM.Server.WriteTimeout)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("关闭API服务器失败: %v", err)
	}

	if err := repos.Close(); err != nil {
		log.Printf("关闭存储失败: %v", err)
	}
	log.Println("✅ 服务已停止")
}
