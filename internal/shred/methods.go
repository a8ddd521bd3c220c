package shred

import (
	"crypto/rand"
	"fmt"
)

// FillMethod определяет метод заполнения данных
type FillMethod string

const (
	MethodRandom  FillMethod = "random"
	MethodZero    FillMethod = "zero"
	MethodDOD5220 FillMethod = "dod5220"
)

// ValidateMethod проверяет корректность метода
func ValidateMethod(method string) (FillMethod, error) {
	m := FillMethod(method)
	switch m {
	case MethodRandom, MethodZero, MethodDOD5220:
		return m, nil
	default:
		return "", fmt.Errorf("неподдерживаемый метод затирания: %s", method)
	}
}

// FillPattern заполняет буфер данными для прохода pass
func FillPattern(method FillMethod, pass int, buf []byte) error {
	switch method {
	case MethodRandom:
		if _, err := rand.Read(buf); err != nil {
			return fmt.Errorf("ошибка генерации случайных данных: %w", err)
		}
		return nil

	case MethodZero:
		for i := range buf {
			buf[i] = 0
		}
		return nil

	case MethodDOD5220:
		// DOD 5220.22-M: случайные, нули, случайные
		if pass%3 == 1 {
			for i := range buf {
				buf[i] = 0
			}
			return nil
		}
		if _, err := rand.Read(buf); err != nil {
			return fmt.Errorf("ошибка генерации случайных данных: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("неизвестный метод затирания: %s", method)
	}
}
