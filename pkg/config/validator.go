package config

import (
	"fmt"
)

var validBackends = map[string]bool{
	BackendMemory:   true,
	BackendCSV:      true,
	BackendDatabase: true,
	BackendSQLite:   true,
	BackendMySQL:    true,
	BackendPostgres: true,
}

// Validate 校验配置合法性
func Validate(cfg *PPMConfig) error {
	if cfg == nil {
		return fmt.Errorf("配置不能为空")
	}
	p := &cfg.PPM

	// 校验General
	if p.General.InstanceName == "" {
		return fmt.Errorf("instance_name不能为空")
	}
	if p.General.LogLevel != "" {
		validLevels := map[string]bool{
			"debug": true,
			"info":  true,
			"warn":  true,
			"error": true,
		}
		if !validLevels[p.General.LogLevel] {
			return fmt.Errorf("log_level必须是debug/info/warn/error之一")
		}
	}

	// 校验Server
	if p.Server.Port <= 0 || p.Server.Port > 65535 {
		return fmt.Errorf("server.port必须在1-65535之间")
	}

	// 校验Storage.Database
	validDBTypes := map[string]bool{
		"sqlite":     true,
		"postgres":   true,
		"postgresql": true,
		"mysql":      true,
	}
	if !validDBTypes[p.Storage.Database.Type] {
		return fmt.Errorf("database.type必须是sqlite/postgres/mysql之一")
	}
	if p.Storage.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns必须大于0")
	}
	if p.Storage.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns不能为负数")
	}
	switch p.Storage.Database.Seed {
	case "", "once", "never", "threshold":
	default:
		return fmt.Errorf("database.seed必须是once/never/threshold之一")
	}

	// 校验Entities
	for _, name := range []string{EntityApplicant, EntityAddress, EntityContact} {
		e, _ := cfg.Entity(name)
		if !validBackends[e.Backend] {
			return fmt.Errorf("entities.%s.backend必须是memory/csv/database/sqlite/mysql/postgres之一", name)
		}
		if isDatabaseBackend(e.Backend) {
			if _, dsn := cfg.ResolveDatabase(e); dsn == "" {
				return fmt.Errorf("entities.%s需要数据库DSN", name)
			}
		}
	}

	return nil
}

func isDatabaseBackend(backend string) bool {
	switch backend {
	case BackendDatabase, BackendSQLite, BackendMySQL, BackendPostgres:
		return true
	}
	return false
}
