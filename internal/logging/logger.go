package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Логгер аудита: пишет в файл и дублирует в stdout при verbose
type AuditLogger struct {
	level   string
	file    *os.File
	verbose bool
}

func NewAuditLogger(level, logFile string, verbose bool) (*AuditLogger, error) {
	l := &AuditLogger{
		level:   level,
		verbose: verbose,
	}

	// Автоматическое создание директории для логов
	if logFile != "" {
		logDir := filepath.Dir(logFile)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			// Если не можем создать директорию, используем stdout
			fmt.Printf("[WARN] Не удалось создать директорию логов %s: %v\n", logDir, err)
			fmt.Printf("[WARN] Логи будут выводиться в stdout\n")
			return l, nil
		}

		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			// Если не можем открыть файл логов, используем stdout
			fmt.Printf("[WARN] Не удалось открыть файл логов %s: %v\n", logFile, err)
			fmt.Printf("[WARN] Логи будут выводиться в stdout\n")
			return l, nil
		}
		l.file = f
	}

	return l, nil
}

func (l *AuditLogger) Log(level, message string, fields ...interface{}) {
	if !l.shouldLog(level) {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	entry := fmt.Sprintf("[%s] [%s] %s", timestamp, level, message)

	if len(fields) > 0 {
		entry += fmt.Sprintf(" %v", fields)
	}

	if l.file != nil {
		l.file.WriteString(entry + "\n")
	}

	if l.verbose || level == "ERROR" || level == "FATAL" {
		fmt.Println(entry)
	}
}

func (l *AuditLogger) shouldLog(level string) bool {
	levels := map[string]int{"DEBUG": 0, "INFO": 1, "WARN": 2, "ERROR": 3, "FATAL": 4}
	current := levels[l.level]
	target := levels[level]
	return target >= current
}

func (l *AuditLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
