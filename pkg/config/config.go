package config

import (
	"fmt"
	"log"
	"path/filepath"
	"time"
)

// 支持的存储后端
const (
	BackendMemory   = "memory"
	BackendCSV      = "csv"
	BackendDatabase = "database"
	BackendSQLite   = "sqlite"
	BackendMySQL    = "mysql"
	BackendPostgres = "postgres"
)

// 实体名称，与记录的Entity()一致
const (
	EntityApplicant = "applicant"
	EntityAddress   = "address"
	EntityContact   = "contact"
)

// EntityConfig 单个实体的存储配置
type EntityConfig struct {
	// Backend memory/csv/database/sqlite/mysql/postgres
	Backend string `yaml:"backend"`
	// File CSV文件名，相对于storage.csv.dir
	File string `yaml:"file"`
	// DSN 覆盖storage.database.dsn
	DSN string `yaml:"dsn"`
}

// PPMConfig 服务配置（对外导出）
type PPMConfig struct {
	PPM struct {
		General struct {
			InstanceName string `yaml:"instance_name"`
			LogLevel     string `yaml:"log_level"`
			Env          string `yaml:"env"`
		} `yaml:"general"`
		Server struct {
			Host         string        `yaml:"host"`
			Port         int           `yaml:"port"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
		} `yaml:"server"`
		Storage struct {
			Database struct {
				Type            string        `yaml:"type"`
				DSN             string        `yaml:"dsn"`
				MaxOpenConns    int           `yaml:"max_open_conns"`
				MaxIdleConns    int           `yaml:"max_idle_conns"`
				ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
				// Seed once/never/threshold
				Seed string `yaml:"seed"`
			} `yaml:"database"`
			CSV struct {
				Dir         string `yaml:"dir"`
				AtomicWrite bool   `yaml:"atomic_write"`
			} `yaml:"csv"`
		} `yaml:"storage"`
		Entities struct {
			Applicant EntityConfig `yaml:"applicant"`
			Address   EntityConfig `yaml:"address"`
			Contact   EntityConfig `yaml:"contact"`
		} `yaml:"entities"`
	} `yaml:"ppm"`
}

// Default 返回应用默认值后的配置
func Default() *PPMConfig {
	cfg := &PPMConfig{}
	cfg.ApplyDefaults()
	return cfg
}

// GetDatabaseDSN 获取数据库DSN
func (c *PPMConfig) GetDatabaseDSN() string {
	return c.PPM.Storage.Database.DSN
}

// ServerAddr 返回监听地址
func (c *PPMConfig) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.PPM.Server.Host, c.PPM.Server.Port)
}

// LogFlags 按日志级别返回标准库log的输出标记，debug级别附带文件行号
func (c *PPMConfig) LogFlags() int {
	if c.PPM.General.LogLevel == "debug" {
		return log.LstdFlags | log.Lmicroseconds | log.Lshortfile
	}
	return log.LstdFlags
}

// Entity 按名称返回实体配置
func (c *PPMConfig) Entity(name string) (EntityConfig, bool) {
	switch name {
	case EntityApplicant:
		return c.PPM.Entities.Applicant, true
	case EntityAddress:
		return c.PPM.Entities.Address, true
	case EntityContact:
		return c.PPM.Entities.Contact, true
	default:
		return EntityConfig{}, false
	}
}

// ResolveDatabase 返回实体使用的数据库类型和DSN
// backend为database时使用storage.database.type
func (c *PPMConfig) ResolveDatabase(e EntityConfig) (dbType, dsn string) {
	dbType = e.Backend
	if dbType == BackendDatabase {
		dbType = c.PPM.Storage.Database.Type
	}
	dsn = e.DSN
	if dsn == "" {
		dsn = c.PPM.Storage.Database.DSN
	}
	return dbType, dsn
}

// CSVPath 返回实体CSV文件路径
func (c *PPMConfig) CSVPath(entity string, e EntityConfig) string {
	file := e.File
	if file == "" {
		file = entity + ".csv"
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.PPM.Storage.CSV.Dir, file)
}

// ApplyDefaults 应用默认值
// 默认布局：applicant在内存，address在address.csv，contact在SQLite contacts.db
func (c *PPMConfig) ApplyDefaults() {
	p := &c.PPM

	// General默认值
	if p.General.InstanceName == "" {
		p.General.InstanceName = "ppm"
	}
	if p.General.LogLevel == "" {
		p.General.LogLevel = "info"
	}
	if p.General.Env == "" {
		p.General.Env = "dev"
	}

	// Server默认值
	if p.Server.Host == "" {
		p.Server.Host = "0.0.0.0"
	}
	if p.Server.Port <= 0 {
		p.Server.Port = 8080
	}
	if p.Server.ReadTimeout <= 0 {
		p.Server.ReadTimeout = 30 * time.Second
	}
	if p.Server.WriteTimeout <= 0 {
		p.Server.WriteTimeout = 30 * time.Second
	}

	// Database默认值
	if p.Storage.Database.Type == "" {
		p.Storage.Database.Type = BackendSQLite
	}
	if p.Storage.Database.DSN == "" {
		p.Storage.Database.DSN = "contacts.db"
	}
	if p.Storage.Database.MaxOpenConns <= 0 {
		p.Storage.Database.MaxOpenConns = 10
	}
	if p.Storage.Database.MaxIdleConns <= 0 {
		p.Storage.Database.MaxIdleConns = 5
	}
	if p.Storage.Database.ConnMaxLifetime <= 0 {
		p.Storage.Database.ConnMaxLifetime = 2 * time.Hour
	}
	if p.Storage.Database.Seed == "" {
		p.Storage.Database.Seed = "once"
	}

	// CSV默认值
	if p.Storage.CSV.Dir == "" {
		p.Storage.CSV.Dir = "."
	}

	// Entities默认值
	if p.Entities.Applicant.Backend == "" {
		p.Entities.Applicant.Backend = BackendMemory
	}
	if p.Entities.Address.Backend == "" {
		p.Entities.Address.Backend = BackendCSV
	}
	if p.Entities.Contact.Backend == "" {
		p.Entities.Contact.Backend = BackendDatabase
	}
}
