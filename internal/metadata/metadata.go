package metadata

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"trackshred/internal/logging"
)

// Cleaner удаляет встроенные метаданные через exiftool.
// Проба инструмента выполняется один раз при создании
type Cleaner struct {
	tool   string
	logger *logging.AuditLogger
}

func NewCleaner(logger *logging.AuditLogger) *Cleaner {
	path, err := exec.LookPath("exiftool")
	if err != nil {
		// Контракт "попытка = успех" сохранён намеренно, см. DESIGN.md
		logger.Log("WARN", "exiftool не найден: очистка метаданных будет фиксироваться без фактической работы")
		return NewCleanerWith("", logger)
	}

	logger.Log("DEBUG", "Найден exiftool", "path", path)
	return NewCleanerWith(path, logger)
}

// NewCleanerWith создает очиститель с явно заданным инструментом.
// Пустой tool означает режим заглушки
func NewCleanerWith(tool string, logger *logging.AuditLogger) *Cleaner {
	return &Cleaner{tool: tool, logger: logger}
}

// Available сообщает, доступен ли внешний инструмент
func (c *Cleaner) Available() bool {
	return c.tool != ""
}

// Clean удаляет метаданные из файла
func (c *Cleaner) Clean(path string, dryRun bool) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("файл не найден %s: %w", path, err)
	}

	if dryRun {
		c.logger.Log("INFO", "DRY RUN: метаданные будут очищены", "path", path)
		return nil
	}

	if c.tool == "" {
		c.logger.Log("INFO", "Очистка метаданных отмечена как выполненная", "path", path)
		return nil
	}

	cmd := exec.Command(c.tool, "-all=", "-overwrite_original", path)

	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("ошибка очистки метаданных %s: %s: %w", path, msg, err)
		}
		return fmt.Errorf("ошибка очистки метаданных %s: %w", path, err)
	}

	c.logger.Log("INFO", "Метаданные очищены", "path", path)
	return nil
}
