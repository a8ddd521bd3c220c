package config

import (
	"fmt"
)

// ApplyProfile применяет профиль затирания к конфигурации
func ApplyProfile(cfg *Config, profile string) error {
	switch profile {
	case "quick":
		cfg.Shred.Passes = 1
		cfg.Shred.Method = "random"
		cfg.Shred.ChunkSize = 64 * 1024 // 64KB
		cfg.Shred.MaxSpeedMBps = 0
	case "default":
		cfg.Shred.Passes = 3
		cfg.Shred.Method = "random"
		cfg.Shred.ChunkSize = 8192
		cfg.Shred.MaxSpeedMBps = 0
	case "paranoid":
		cfg.Shred.Passes = 7
		cfg.Shred.Method = "dod5220"
		cfg.Shred.ChunkSize = 8192
		cfg.Shred.MaxSpeedMBps = 0
		cfg.Clean.ShellHistory = true
	default:
		return fmt.Errorf("неизвестный профиль: %s", profile)
	}
	return nil
}
