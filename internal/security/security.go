package security

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/unix"

	"trackshred/internal/config"
)

// CheckTarget отклоняет затирание защищённых путей
func CheckTarget(cfg *config.Config, path string) error {
	if cfg == nil {
		cfg = config.Default()
	}

	clean := filepath.Clean(path)
	for _, protected := range cfg.Security.ProtectedPaths {
		if clean == filepath.Clean(protected) {
			return fmt.Errorf("путь защищён от затирания: %s", path)
		}
	}

	return nil
}

// CheckWritable проверяет право записи в директорию цели.
// Без него затирание пройдёт, а unlink в конце не удастся
func CheckWritable(path string) error {
	dir := filepath.Dir(path)
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return fmt.Errorf("нет прав на запись в %s: %w", dir, err)
	}
	return nil
}
