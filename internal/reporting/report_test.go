package reporting

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackshred/internal/app"
)

func TestBuildEmptyResult(t *testing.T) {
	report := Build(app.NewResult())

	assert.NotNil(t, report.FilesShredded)
	assert.NotNil(t, report.MetadataCleaned)
	assert.NotNil(t, report.SystemCleaned)
	assert.NotNil(t, report.Errors)
	assert.Empty(t, report.FilesShredded)
}

func TestSaveSchemaIsFixed(t *testing.T) {
	result := app.NewResult()
	result.AddShredded("/tmp/a.txt")
	result.AddMetadataCleaned("/tmp/a.txt")
	result.AddSystemCleaned("trash")
	result.AddError("/tmp/b.txt", errors.New("boom"))

	path := filepath.Join(t.TempDir(), "reports", "run.json")
	require.NoError(t, Save(result, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Ровно четыре ключа верхнего уровня
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 4)
	for _, key := range []string{"files_shredded", "metadata_cleaned", "system_cleaned", "errors"} {
		assert.Contains(t, raw, key)
	}

	var report Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, []string{"/tmp/a.txt"}, report.FilesShredded)
	assert.Equal(t, []string{"/tmp/a.txt"}, report.MetadataCleaned)
	assert.Equal(t, []string{"trash"}, report.SystemCleaned)
	assert.Equal(t, []string{"/tmp/b.txt: boom"}, report.Errors)
}

func TestSaveEmptyResultSerializesEmptyArrays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, Save(app.NewResult(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Пустые списки - это [], а не null
	assert.NotContains(t, string(data), "null")

	var report Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.NotNil(t, report.Errors)
}

func TestRenderSections(t *testing.T) {
	result := app.NewResult()
	result.AddShredded("/tmp/a.txt")
	result.AddError("/tmp/b.txt", errors.New("boom"))

	out := Render(result)

	assert.Contains(t, out, "Затёрто файлов (1)")
	assert.Contains(t, out, "/tmp/a.txt")
	assert.Contains(t, out, "Ошибки (1)")
	assert.Contains(t, out, "/tmp/b.txt: boom")
	assert.Contains(t, out, "Итого: файлов 1, метаданных 0, категорий 0, ошибок 1")
	assert.NotContains(t, out, "Операции не выполнялись")
}

func TestRenderEmptyRun(t *testing.T) {
	out := Render(app.NewResult())

	assert.Contains(t, out, "Операции не выполнялись")
	assert.Contains(t, out, "Итого: файлов 0, метаданных 0, категорий 0, ошибок 0")
}
