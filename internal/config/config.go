package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Конфигурация TrackShred
type Config struct {
	Shred struct {
		Passes          int     `yaml:"passes"`
		Method          string  `yaml:"method"`
		ChunkSize       int     `yaml:"chunk_size"`
		MaxSpeedMBps    float64 `yaml:"max_speed_mbps"`
		UseExternalTool bool    `yaml:"use_external_tool"`
	} `yaml:"shred"`

	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`

	Clean struct {
		Thumbnails   bool `yaml:"thumbnails"`
		RecentFiles  bool `yaml:"recent_files"`
		Trash        bool `yaml:"trash"`
		ShellHistory bool `yaml:"shell_history"`
	} `yaml:"clean"`

	Reporting struct {
		Enabled   bool   `yaml:"enabled"`
		LocalPath string `yaml:"local_path"`
	} `yaml:"reporting"`

	Security struct {
		ProtectedPaths []string `yaml:"protected_paths"`
	} `yaml:"security"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	cfg := &Config{}

	cfg.Shred.Passes = 3
	cfg.Shred.Method = "random"
	cfg.Shred.ChunkSize = 8192
	cfg.Shred.MaxSpeedMBps = 0 // без лимита
	cfg.Shred.UseExternalTool = true

	cfg.Logging.Level = "INFO"
	cfg.Logging.File = ""

	cfg.Clean.Thumbnails = true
	cfg.Clean.RecentFiles = true
	cfg.Clean.Trash = true
	cfg.Clean.ShellHistory = false

	cfg.Reporting.Enabled = true
	cfg.Reporting.LocalPath = "./reports"

	cfg.Security.ProtectedPaths = []string{
		"/",
		"/bin",
		"/boot",
		"/etc",
		"/lib",
		"/sbin",
		"/usr",
		"/var",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.Security.ProtectedPaths = append(cfg.Security.ProtectedPaths, home)
	}

	return cfg
}

// Load загружает конфигурацию из файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	config := Default()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Валидация конфигурации
	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate проверяет конфигурацию на валидность
func Validate(config *Config) error {
	// Валидация shred секции
	if config.Shred.Passes < 1 || config.Shred.Passes > 10 {
		return fmt.Errorf("shred passes must be between 1 and 10, got %d", config.Shred.Passes)
	}

	if config.Shred.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", config.Shred.ChunkSize)
	}
	if config.Shred.ChunkSize > 1024*1024 { // 1MB max
		return fmt.Errorf("chunk size too large (max 1MB), got %d", config.Shred.ChunkSize)
	}

	if config.Shred.MaxSpeedMBps < 0 {
		return fmt.Errorf("max speed cannot be negative, got %f", config.Shred.MaxSpeedMBps)
	}
	if config.Shred.MaxSpeedMBps > 1000 { // 1GB/s max
		return fmt.Errorf("max speed too high (max 1000MB/s), got %f", config.Shred.MaxSpeedMBps)
	}

	// Валидация методов
	validMethods := map[string]bool{
		"random":  true,
		"zero":    true,
		"dod5220": true,
	}
	if !validMethods[config.Shred.Method] {
		return fmt.Errorf("invalid shred method: %s", config.Shred.Method)
	}

	// Валидация logging секции
	validLevels := map[string]bool{
		"DEBUG": true,
		"INFO":  true,
		"WARN":  true,
		"ERROR": true,
	}
	if !validLevels[config.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	// Валидация путей
	for _, path := range config.Security.ProtectedPaths {
		if path == "" {
			return fmt.Errorf("empty protected path")
		}

		absPath := filepath.Clean(path)
		if absPath == "" || absPath == "." {
			return fmt.Errorf("invalid protected path: %s", path)
		}
	}

	return nil
}

// Save сохраняет конфигурацию в файл
func Save(config *Config, path string) error {
	// Валидация перед сохранением
	if err := Validate(config); err != nil {
		return fmt.Errorf("cannot save invalid config: %w", err)
	}

	// Создаем директорию если нужно
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
