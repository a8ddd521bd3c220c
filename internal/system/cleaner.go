package system

import (
	"fmt"
	"os"
	"path/filepath"

	"trackshred/internal/logging"
)

// TraceOperation represents a single privacy-trace category
type TraceOperation struct {
	Name        string // стабильное имя категории в отчёте
	Description string
	Execute     func() error
}

// TraceCleaner чистит известные места следов приватности в домашней
// директории пользователя
type TraceCleaner struct {
	home   string
	logger *logging.AuditLogger
	dryRun bool
}

func NewTraceCleaner(home string, logger *logging.AuditLogger, dryRun bool) *TraceCleaner {
	return &TraceCleaner{
		home:   home,
		logger: logger,
		dryRun: dryRun,
	}
}

// Operations returns the fixed, ordered trace catalogue.
// История оболочки включается только явно
func (tc *TraceCleaner) Operations(includeHistory bool) []TraceOperation {
	ops := []TraceOperation{
		{
			Name:        "thumbnails",
			Description: "Кэш миниатюр",
			Execute:     tc.CleanThumbnails,
		},
		{
			Name:        "recent files",
			Description: "Списки недавних файлов",
			Execute:     tc.CleanRecentFiles,
		},
		{
			Name:        "trash",
			Description: "Корзина пользователя",
			Execute:     tc.CleanTrash,
		},
	}

	if includeHistory {
		ops = append(ops, TraceOperation{
			Name:        "shell history",
			Description: "История команд оболочки",
			Execute:     tc.CleanShellHistory,
		})
	}

	return ops
}

// CleanThumbnails очищает кэш миниатюр
func (tc *TraceCleaner) CleanThumbnails() error {
	thumbnailDirs := []string{
		filepath.Join(tc.home, ".cache", "thumbnails"),
		filepath.Join(tc.home, ".thumbnails"),
	}

	for _, dir := range thumbnailDirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}

		if tc.dryRun {
			tc.logger.Log("INFO", "DRY RUN: директория миниатюр будет очищена", "path", dir)
			continue
		}

		if err := tc.removeContents(dir); err != nil {
			return err
		}
	}

	return nil
}

// CleanRecentFiles удаляет списки недавних файлов
func (tc *TraceCleaner) CleanRecentFiles() error {
	recentFiles := []string{
		filepath.Join(tc.home, ".local", "share", "recently-used.xbel"),
		filepath.Join(tc.home, ".recently-used.xbel"),
	}

	for _, file := range recentFiles {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			continue
		}

		if tc.dryRun {
			tc.logger.Log("INFO", "DRY RUN: список недавних файлов будет удалён", "path", file)
			continue
		}

		if err := os.Remove(file); err != nil {
			return fmt.Errorf("ошибка удаления %s: %w", file, err)
		}
		tc.logger.Log("INFO", "Список недавних файлов удалён", "path", file)
	}

	return nil
}

// CleanTrash опустошает корзину
func (tc *TraceCleaner) CleanTrash() error {
	trashDir := filepath.Join(tc.home, ".local", "share", "Trash")

	if _, err := os.Stat(trashDir); os.IsNotExist(err) {
		return nil
	}

	if tc.dryRun {
		tc.logger.Log("INFO", "DRY RUN: корзина будет опустошена", "path", trashDir)
		return nil
	}

	return tc.removeContents(trashDir)
}

// CleanShellHistory очищает файлы истории команд
func (tc *TraceCleaner) CleanShellHistory() error {
	historyFiles := []string{
		filepath.Join(tc.home, ".bash_history"),
		filepath.Join(tc.home, ".zsh_history"),
		filepath.Join(tc.home, ".history"),
	}

	for _, file := range historyFiles {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			continue
		}

		if tc.dryRun {
			tc.logger.Log("INFO", "DRY RUN: файл истории будет очищен", "path", file)
			continue
		}

		if err := os.WriteFile(file, nil, 0600); err != nil {
			return fmt.Errorf("ошибка очистки %s: %w", file, err)
		}
		tc.logger.Log("INFO", "Файл истории очищен", "path", file)
	}

	return nil
}

// removeContents удаляет всё содержимое директории, оставляя её саму
func (tc *TraceCleaner) removeContents(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("ошибка чтения директории %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("ошибка очистки директории %s: %w", dir, err)
		}
	}

	tc.logger.Log("INFO", "Директория очищена", "path", dir)
	return nil
}

// Locations возвращает все отслеживаемые пути для команды info
func (tc *TraceCleaner) Locations() []string {
	return []string{
		filepath.Join(tc.home, ".cache", "thumbnails"),
		filepath.Join(tc.home, ".thumbnails"),
		filepath.Join(tc.home, ".local", "share", "recently-used.xbel"),
		filepath.Join(tc.home, ".recently-used.xbel"),
		filepath.Join(tc.home, ".local", "share", "Trash"),
		filepath.Join(tc.home, ".bash_history"),
		filepath.Join(tc.home, ".zsh_history"),
		filepath.Join(tc.home, ".history"),
	}
}
