package app

import (
	"fmt"
	"sync"
)

// OperationError - одна нефатальная ошибка запуска
type OperationError struct {
	Context string
	Message string
}

func (e OperationError) String() string {
	return fmt.Sprintf("%s: %s", e.Context, e.Message)
}

// Result - накопитель результатов одного запуска. Все четыре поля
// append-only: записанное не отбрасывается, даже если последующие
// операции завершились с ошибкой. Пишет в него только координатор
type Result struct {
	mu              sync.Mutex
	filesShredded   []string
	metadataCleaned []string
	systemCleaned   []string
	errors          []OperationError
}

func NewResult() *Result {
	return &Result{}
}

func (r *Result) AddShredded(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filesShredded = append(r.filesShredded, path)
}

func (r *Result) AddMetadataCleaned(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metadataCleaned = append(r.metadataCleaned, path)
}

func (r *Result) AddSystemCleaned(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.systemCleaned = append(r.systemCleaned, name)
}

func (r *Result) AddError(context string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, OperationError{Context: context, Message: err.Error()})
}

// FilesShredded возвращает копию списка затёртых файлов
func (r *Result) FilesShredded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.filesShredded...)
}

// MetadataCleaned возвращает копию списка файлов с очищенными метаданными
func (r *Result) MetadataCleaned() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.metadataCleaned...)
}

// SystemCleaned возвращает копию списка успешных категорий чистки
func (r *Result) SystemCleaned() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.systemCleaned...)
}

// Errors возвращает копию списка ошибок
func (r *Result) Errors() []OperationError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]OperationError(nil), r.errors...)
}

// HasErrors определяет итоговый статус запуска
func (r *Result) HasErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errors) > 0
}

// Empty сообщает, выполнялись ли вообще какие-то операции
func (r *Result) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.filesShredded) == 0 && len(r.metadataCleaned) == 0 &&
		len(r.systemCleaned) == 0 && len(r.errors) == 0
}
