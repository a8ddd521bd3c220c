package target

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0600))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("b"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "z.txt"), []byte("z"), 0600))

	return root
}

func TestResolveMissingTarget(t *testing.T) {
	_, _, err := Resolve(filepath.Join(t.TempDir(), "ghost"))
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestResolveFollowsSymlink(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real.txt")
	require.NoError(t, os.WriteFile(real, []byte("data"), 0600))

	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink(real, link))

	resolved, info, err := Resolve(link)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	realResolved, _, err := Resolve(real)
	require.NoError(t, err)
	assert.Equal(t, realResolved, resolved)
}

func TestWalkLexicalOrder(t *testing.T) {
	root := makeTree(t)

	var visited []string
	err := Walk(root,
		func(path string) error {
			rel, err := filepath.Rel(root, path)
			require.NoError(t, err)
			visited = append(visited, rel)
			return nil
		},
		func(path string, err error) {
			t.Fatalf("unexpected walk error at %s: %v", path, err)
		})

	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", filepath.Join("sub", "b.txt"), "z.txt"}, visited)
}

func TestWalkSkipsNonRegularEntries(t *testing.T) {
	root := makeTree(t)
	// Битый симлинк не должен попадать в выдачу
	require.NoError(t, os.Symlink(filepath.Join(root, "ghost"), filepath.Join(root, "broken")))

	var visited []string
	err := Walk(root,
		func(path string) error {
			visited = append(visited, filepath.Base(path))
			return nil
		},
		func(path string, err error) {})

	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt", "z.txt"}, visited)
}

func TestWalkSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0600))

	var visited []string
	err := Walk(path,
		func(p string) error {
			visited = append(visited, p)
			return nil
		},
		func(p string, err error) {})

	require.NoError(t, err)
	assert.Equal(t, []string{path}, visited)
}

func TestWalkMissingRoot(t *testing.T) {
	err := Walk(filepath.Join(t.TempDir(), "ghost"),
		func(string) error { return nil },
		func(string, error) {})
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestWalkFileFnErrorStopsWalk(t *testing.T) {
	root := makeTree(t)
	sentinel := errors.New("stop")

	var visited int
	err := Walk(root,
		func(string) error {
			visited++
			return sentinel
		},
		func(string, error) {})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, visited)
}

func TestWalkReportsUnreadableSubtree(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root игнорирует права доступа")
	}

	root := makeTree(t)
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.MkdirAll(locked, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "secret.txt"), []byte("s"), 0600))
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	var visited []string
	var failed []string
	err := Walk(root,
		func(path string) error {
			visited = append(visited, filepath.Base(path))
			return nil
		},
		func(path string, err error) {
			failed = append(failed, path)
		})

	// Недоступное поддерево уходит одной записью в errFn, обход продолжается
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt", "z.txt"}, visited)
	assert.Len(t, failed, 1)
	assert.Equal(t, locked, failed[0])
}
