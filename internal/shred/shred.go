package shred

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"trackshred/internal/config"
	"trackshred/internal/logging"
)

// Shredder выполняет многопроходное затирание файлов
type Shredder struct {
	plan         Plan
	method       FillMethod
	chunkSize    int
	maxSpeedMBps float64
	external     *ExternalTool
	logger       *logging.AuditLogger
}

// NewShredder создает движок затирания. План и метод проверяются
// здесь, до любого ввода-вывода
func NewShredder(cfg *config.Config, plan Plan, logger *logging.AuditLogger) (*Shredder, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	method, err := ValidateMethod(cfg.Shred.Method)
	if err != nil {
		return nil, err
	}

	s := &Shredder{
		plan:         plan,
		method:       method,
		chunkSize:    cfg.Shred.ChunkSize,
		maxSpeedMBps: cfg.Shred.MaxSpeedMBps,
		logger:       logger,
	}

	if cfg.Shred.UseExternalTool && !plan.Simulate {
		s.external = ProbeExternalTool(logger)
	}

	return s, nil
}

// Plan возвращает план запуска
func (s *Shredder) Plan() Plan {
	return s.plan
}

// Destroy затирает и удаляет один обычный файл.
// Файл, на котором запись оборвалась, остаётся в частично
// затёртом состоянии и сообщается как ошибка - повторов нет
func (s *Shredder) Destroy(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("файл не найден %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInvalidTarget, path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrInvalidTarget, path)
	}

	if s.plan.Simulate {
		s.logger.Log("INFO", "DRY RUN: файл будет затёрт", "path", path, "passes", s.plan.Passes)
		return nil
	}

	if s.external != nil {
		if err := s.external.Destroy(path, s.plan.Passes); err == nil {
			s.logger.Log("INFO", "Файл затёрт внешней утилитой", "path", path)
			return nil
		} else {
			s.logger.Log("WARN", "Внешняя утилита shred не справилась, переключение на встроенный движок",
				"path", path, "error", err.Error())
		}
	}

	return s.overwrite(path, info.Size())
}

func (s *Shredder) overwrite(path string, size int64) error {
	for pass := 0; pass < s.plan.Passes; pass++ {
		if err := s.overwritePass(path, size, pass); err != nil {
			return err
		}
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("ошибка удаления файла %s: %w", path, err)
	}

	s.logger.Log("INFO", "Файл затёрт", "path", path, "passes", s.plan.Passes, "bytes", size)
	return nil
}

// overwritePass перезаписывает файл целиком и фиксирует данные на
// диске. Дескриптор живёт ровно один проход
func (s *Shredder) overwritePass(path string, size int64, pass int) error {
	file, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("ошибка открытия файла %s: %w", path, err)
	}
	defer file.Close()

	s.logger.Log("DEBUG", "Проход затирания", "path", path, "pass", pass+1, "total", s.plan.Passes)

	writer := NewThrottledWriter(file, s.maxSpeedMBps)

	buf := GetBuffer(s.chunkSize)
	defer PutBuffer(buf)

	var written int64
	for written < size {
		remaining := size - written
		toWrite := int64(s.chunkSize)
		if remaining < toWrite {
			toWrite = remaining
		}

		b := buf[:toWrite]
		if err := FillPattern(s.method, pass, b); err != nil {
			return fmt.Errorf("ошибка генерации паттерна: %w", err)
		}

		n, err := writer.Write(b)
		written += int64(n)
		if err != nil {
			return fmt.Errorf("ошибка записи в файл %s: %w", path, err)
		}
		if n == 0 {
			return fmt.Errorf("запись в %s вернула 0 байт без ошибки", path)
		}
	}

	// Каждый проход должен лечь на диск до начала следующего
	if err := unix.Fsync(int(file.Fd())); err != nil {
		return fmt.Errorf("ошибка синхронизации файла %s: %w", path, err)
	}

	return nil
}
