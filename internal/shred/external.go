package shred

import (
	"fmt"
	"os/exec"
	"strings"

	"trackshred/internal/logging"
)

// ExternalTool - системная утилита shred(1).
// Проба выполняется один раз при старте, не на каждый файл
type ExternalTool struct {
	path   string
	logger *logging.AuditLogger
}

// ProbeExternalTool ищет shred в PATH; nil если утилита недоступна
func ProbeExternalTool(logger *logging.AuditLogger) *ExternalTool {
	path, err := exec.LookPath("shred")
	if err != nil {
		logger.Log("DEBUG", "Утилита shred не найдена, используется встроенный движок")
		return nil
	}

	logger.Log("DEBUG", "Найдена внешняя утилита shred", "path", path)
	return &ExternalTool{path: path, logger: logger}
}

// Destroy затирает и удаляет файл внешней утилитой.
// Ненулевой код возврата - сигнал для отката на встроенный движок
func (t *ExternalTool) Destroy(path string, passes int) error {
	cmd := exec.Command(t.path, "-f", "-z", fmt.Sprintf("-n%d", passes), "--remove", path)

	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("shred завершился с ошибкой: %s: %w", msg, err)
		}
		return fmt.Errorf("shred завершился с ошибкой: %w", err)
	}

	return nil
}
