package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"trackshred/internal/app"
)

// Report - JSON отчёт о запуске с фиксированной схемой
type Report struct {
	FilesShredded   []string `json:"files_shredded"`
	MetadataCleaned []string `json:"metadata_cleaned"`
	SystemCleaned   []string `json:"system_cleaned"`
	Errors          []string `json:"errors"`
}

// Build собирает отчёт из накопителя результатов
func Build(result *app.Result) *Report {
	report := &Report{
		FilesShredded:   result.FilesShredded(),
		MetadataCleaned: result.MetadataCleaned(),
		SystemCleaned:   result.SystemCleaned(),
		Errors:          []string{},
	}

	// Пустые списки сериализуются как [], а не null
	if report.FilesShredded == nil {
		report.FilesShredded = []string{}
	}
	if report.MetadataCleaned == nil {
		report.MetadataCleaned = []string{}
	}
	if report.SystemCleaned == nil {
		report.SystemCleaned = []string{}
	}

	for _, e := range result.Errors() {
		report.Errors = append(report.Errors, e.String())
	}

	return report
}

// Save сохраняет отчёт в JSON файл одной буферизованной записью,
// чтобы частичный сбой не оставил битый JSON из дописываний
func Save(result *app.Result, path string) error {
	report := Build(result)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации отчёта: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("ошибка создания директории для отчёта: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("ошибка записи отчёта: %w", err)
	}

	return nil
}

// Render выводит человекочитаемую сводку запуска
func Render(result *app.Result) string {
	var b strings.Builder

	shredded := result.FilesShredded()
	cleaned := result.MetadataCleaned()
	system := result.SystemCleaned()
	errs := result.Errors()

	b.WriteString("\nTrackShred - безопасное удаление\n")
	b.WriteString("--------------------------------\n")

	if len(shredded) > 0 {
		fmt.Fprintf(&b, "[✓] Затёрто файлов (%d):\n", len(shredded))
		for _, file := range shredded {
			fmt.Fprintf(&b, "    - %s\n", file)
		}
	}

	if len(cleaned) > 0 {
		fmt.Fprintf(&b, "[✓] Очищены метаданные (%d):\n", len(cleaned))
		for _, file := range cleaned {
			fmt.Fprintf(&b, "    - %s\n", file)
		}
	}

	if len(system) > 0 {
		b.WriteString("[✓] Системная чистка:\n")
		for _, name := range system {
			fmt.Fprintf(&b, "    - %s\n", name)
		}
	}

	if len(errs) > 0 {
		fmt.Fprintf(&b, "[✗] Ошибки (%d):\n", len(errs))
		for _, e := range errs {
			fmt.Fprintf(&b, "    - %s\n", e)
		}
	}

	if result.Empty() {
		b.WriteString("[!] Операции не выполнялись\n")
	}

	// Итоговые счётчики выводятся всегда, даже нулевые
	fmt.Fprintf(&b, "\nИтого: файлов %d, метаданных %d, категорий %d, ошибок %d\n",
		len(shredded), len(cleaned), len(system), len(errs))

	return b.String()
}
