package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// 环境变量覆盖项
const (
	EnvServerPort  = "PPM_SERVER_PORT"
	EnvDatabaseDSN = "PPM_DB_DSN"
)

// Load 加载配置文件
// 文件不存在时使用默认配置；文件内容中的${VAR}会被环境变量替换
func Load(path string) (*PPMConfig, error) {
	cfg := &PPMConfig{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("[config] 配置文件%s不存在，使用默认配置", path)
	case err != nil:
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	default:
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, fmt.Errorf("解析配置文件失败: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("配置校验失败: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *PPMConfig) error {
	if v := os.Getenv(EnvServerPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s不是有效端口: %s", EnvServerPort, v)
		}
		cfg.PPM.Server.Port = port
	}
	if v := os.Getenv(EnvDatabaseDSN); v != "" {
		cfg.PPM.Storage.Database.DSN = v
	}
	return nil
}
