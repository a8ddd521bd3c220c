package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"

	"trackshred/internal/logging"
	"trackshred/internal/system"
)

// SweepCommand handles the privacy-sweep CLI surface
type SweepCommand struct {
	logger *logging.AuditLogger
}

// NewSweepCommand creates a new sweep command helper
func NewSweepCommand(logger *logging.AuditLogger) *SweepCommand {
	return &SweepCommand{
		logger: logger,
	}
}

// ListOperations показывает каталог категорий чистки
func (c *SweepCommand) ListOperations(cleaner *system.TraceCleaner, includeHistory bool) error {
	operations := cleaner.Operations(includeHistory)

	fmt.Println("Доступные категории чистки:")
	fmt.Println(strings.Repeat("=", 40))

	for _, op := range operations {
		fmt.Printf("Категория: %s\n", op.Name)
		fmt.Printf("Описание: %s\n", op.Description)
		fmt.Println(strings.Repeat("-", 40))
	}

	if !includeHistory {
		fmt.Println("История оболочки чистится только с --include-history")
	}

	return nil
}

// ShowInfo выводит состояние внешних инструментов и отслеживаемых путей
func (c *SweepCommand) ShowInfo(cleaner *system.TraceCleaner, home string) error {
	fmt.Println("Внешние инструменты:")
	fmt.Println("====================")
	for _, tool := range []string{"shred", "exiftool"} {
		if path, err := exec.LookPath(tool); err == nil {
			fmt.Printf("  ✓ %s - %s\n", tool, path)
		} else {
			fmt.Printf("  ✗ %s - не найден, будет использован встроенный вариант\n", tool)
		}
	}

	fmt.Println("\nОтслеживаемые места следов:")
	fmt.Println("===========================")
	for _, location := range cleaner.Locations() {
		if _, err := os.Stat(location); err == nil {
			fmt.Printf("  ✓ %s\n", location)
		} else {
			fmt.Printf("  - %s (отсутствует)\n", location)
		}
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(home, &stat); err == nil {
		freeGB := float64(stat.Bavail) * float64(stat.Bsize) / (1024 * 1024 * 1024)
		fmt.Printf("\nСвободно в домашней файловой системе: %.1f GB\n", freeGB)
	}

	return nil
}
