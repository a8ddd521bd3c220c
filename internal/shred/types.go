package shred

import (
	"errors"
	"fmt"
)

// Mode определяет режим обработки целей
type Mode string

const (
	ModeDestroy      Mode = "destroy"
	ModeMetadataOnly Mode = "metadata-only"
)

// ValidateMode проверяет корректность режима
func ValidateMode(mode string) (Mode, error) {
	m := Mode(mode)
	switch m {
	case ModeDestroy, ModeMetadataOnly:
		return m, nil
	default:
		return "", fmt.Errorf("неподдерживаемый режим: %s", mode)
	}
}

// Plan описывает параметры одного запуска затирания.
// Значение неизменно на время всего запуска.
type Plan struct {
	Passes   int
	Simulate bool
}

// Validate проверяет план; выход за границы проходов - ошибка
// конфигурации, а не ошибка выполнения
func (p Plan) Validate() error {
	if p.Passes < 1 || p.Passes > 10 {
		return fmt.Errorf("shred passes must be between 1 and 10, got %d", p.Passes)
	}
	return nil
}

// ErrInvalidTarget - затирание запрошено не для обычного файла
var ErrInvalidTarget = errors.New("цель не является обычным файлом")
