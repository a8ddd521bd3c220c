package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"trackshred/internal/config"
	"trackshred/internal/logging"
	"trackshred/internal/metadata"
	"trackshred/internal/security"
	"trackshred/internal/shred"
	"trackshred/internal/system"
	"trackshred/internal/target"
)

// TrackShred - координатор одного запуска. Владеет накопителем
// результатов на всё время работы и отдаёт его репортеру без изменений
type TrackShred struct {
	cfg      *config.Config
	logger   *logging.AuditLogger
	shredder *shred.Shredder
	metadata *metadata.Cleaner
	dryRun   bool
	result   *Result
}

// New создает координатор; невалидный план или метод - ошибка
// конфигурации до начала любой работы
func New(cfg *config.Config, plan shred.Plan, logger *logging.AuditLogger) (*TrackShred, error) {
	shredder, err := shred.NewShredder(cfg, plan, logger)
	if err != nil {
		return nil, err
	}

	return &TrackShred{
		cfg:      cfg,
		logger:   logger,
		shredder: shredder,
		metadata: metadata.NewCleaner(logger),
		dryRun:   plan.Simulate,
		result:   NewResult(),
	}, nil
}

// Result возвращает накопитель результатов запуска
func (t *TrackShred) Result() *Result {
	return t.result
}

// ProcessTarget обрабатывает файл или директорию. Ошибка одного файла
// не прерывает обработку остальных; отмена проверяется между файлами
func (t *TrackShred) ProcessTarget(ctx context.Context, targetPath string, mode shred.Mode) {
	resolved, info, err := target.Resolve(targetPath)
	if err != nil {
		t.logger.Log("ERROR", "Цель не найдена", "target", targetPath, "error", err.Error())
		t.result.AddError(targetPath, err)
		return
	}

	if mode == shred.ModeDestroy {
		if err := security.CheckTarget(t.cfg, resolved); err != nil {
			t.logger.Log("ERROR", "Цель отклонена", "target", resolved, "error", err.Error())
			t.result.AddError(resolved, err)
			return
		}

		if info.Mode().IsRegular() && !t.dryRun {
			if err := security.CheckWritable(resolved); err != nil {
				t.result.AddError(resolved, err)
				return
			}
		}
	}

	if info.Mode().IsRegular() {
		t.processFile(resolved, mode)
		return
	}

	if !info.IsDir() {
		t.logger.Log("WARN", "Цель пропущена: не файл и не директория", "target", resolved)
		return
	}

	err = target.Walk(resolved,
		func(path string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t.processFile(path, mode)
			return nil
		},
		func(path string, werr error) {
			t.logger.Log("ERROR", "Ошибка обхода директории", "path", path, "error", werr.Error())
			t.result.AddError(path, fmt.Errorf("ошибка обхода директории: %w", werr))
		})

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			t.logger.Log("INFO", "Обработка прервана", "target", resolved)
			return
		}
		t.result.AddError(resolved, err)
	}
}

// processFile обрабатывает один файл: сначала метаданные, затем,
// в режиме destroy, затирание. Неудача очистки метаданных никогда
// не блокирует затирание
func (t *TrackShred) processFile(path string, mode shred.Mode) {
	if err := t.metadata.Clean(path, t.dryRun); err != nil {
		t.result.AddError(path, err)
	} else {
		t.result.AddMetadataCleaned(path)
	}

	if mode != shred.ModeDestroy {
		return
	}

	if err := t.shredder.Destroy(path); err != nil {
		t.logger.Log("ERROR", "Ошибка затирания файла", "path", path, "error", err.Error())
		t.result.AddError(path, err)
	} else {
		t.result.AddShredded(path)
	}
}

// DeepClean выполняет сквозную чистку следов по фиксированному
// каталогу. Неудача одной категории не блокирует остальные
func (t *TrackShred) DeepClean(ctx context.Context, cleaner *system.TraceCleaner) {
	for _, op := range cleaner.Operations(t.cfg.Clean.ShellHistory) {
		if ctx.Err() != nil {
			t.logger.Log("INFO", "Системная чистка прервана")
			return
		}

		if err := op.Execute(); err != nil {
			t.logger.Log("ERROR", "Ошибка системной чистки", "category", op.Name, "error", err.Error())
			t.result.AddError(op.Name, err)
		} else {
			t.result.AddSystemCleaned(op.Name)
		}
	}
}

// NewTraceCleaner создает чистильщик следов для домашней директории
// текущего пользователя
func (t *TrackShred) NewTraceCleaner() (*system.TraceCleaner, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("не удалось определить домашнюю директорию: %w", err)
	}
	return system.NewTraceCleaner(home, t.logger, t.dryRun), nil
}
