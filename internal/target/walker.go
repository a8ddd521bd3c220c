package target

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrTargetNotFound - корневая цель не существует
var ErrTargetNotFound = errors.New("цель не найдена")

// Resolve приводит путь к абсолютному виду с раскрытием симлинков
func Resolve(path string) (string, os.FileInfo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", nil, fmt.Errorf("ошибка разрешения пути %s: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("%w: %s", ErrTargetNotFound, path)
		}
		return "", nil, fmt.Errorf("ошибка разрешения пути %s: %w", path, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("%w: %s", ErrTargetNotFound, path)
		}
		return "", nil, err
	}

	return resolved, info, nil
}

// Walk лениво перечисляет обычные файлы под root в лексическом
// порядке. Необычные элементы (сокеты, устройства, битые симлинки)
// молча пропускаются. Ошибки чтения поддерева уходят в errFn одной
// записью, обход продолжается. Защиты от циклов симлинков нет
func Walk(root string, fileFn func(path string) error, errFn func(path string, err error)) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrTargetNotFound, root)
		}
		return err
	}

	if info.Mode().IsRegular() {
		return fileFn(root)
	}

	if !info.IsDir() {
		return nil
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errFn(path, err)
			return nil
		}

		if d.Type().IsRegular() {
			return fileFn(path)
		}

		return nil
	})
}
