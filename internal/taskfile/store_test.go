package taskfile

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nibzard/trackr/internal/task"
)

type recordingLogger struct {
	debug []string
	warn  []string
}

func (l *recordingLogger) Debug(msg interface{}, keyvals ...interface{}) {
	l.debug = append(l.debug, fmt.Sprint(msg))
}

func (l *recordingLogger) Warn(msg interface{}, keyvals ...interface{}) {
	l.warn = append(l.warn, fmt.Sprint(msg))
}

func TestStoreLoadMissingFile(t *testing.T) {
	log := &recordingLogger{}
	s := NewStore(filepath.Join(t.TempDir(), "tasks.json"), WithLogger(log))

	got := s.Load()
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, log.debug, "a missing file is the normal first run")
}

func TestStoreLoadDirectory(t *testing.T) {
	log := &recordingLogger{}
	s := NewStore(t.TempDir(), WithLogger(log))

	got := s.Load()
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Contains(t, log.debug, "Cannot read task file, starting empty")
}

func TestStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	s := NewStore(path)
	assert.Equal(t, path, s.Path())

	tasks := []task.Task{
		task.New(1, "first"),
		task.WithStatus(2, "second\nline", task.StatusInProgress),
		task.WithStatus(3, "third", task.StatusDone),
	}
	require.NoError(t, s.Save(tasks))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Encode(tasks), string(data))

	assert.Equal(t, tasks, s.Load())
}

func TestStoreSaveTruncates(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "tasks.json"))

	require.NoError(t, s.Save([]task.Task{task.New(1, "a"), task.New(2, "b"), task.New(3, "c")}))
	require.NoError(t, s.Save([]task.Task{task.New(9, "only")}))

	assert.Equal(t, []task.Task{task.New(9, "only")}, s.Load())
}

func TestStoreSaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	s := NewStore(path)

	require.NoError(t, s.Save(nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[\n]\n", string(data))
}

func TestStoreSaveError(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing", "tasks.json"))

	err := s.Save([]task.Task{task.New(1, "a")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open task file")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStoreLoadLogsDrops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	content := "[\n  {\n    \"id\": 1,\n    \"description\": \"no status\"\n  }\n]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	log := &recordingLogger{}
	got := NewStore(path, WithLogger(log)).Load()

	assert.Empty(t, got)
	assert.Contains(t, log.debug, "Dropped task object")
}

func TestStoreLoadLogsRejectedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tasks": []}`), 0644))

	log := &recordingLogger{}
	assert.Empty(t, NewStore(path, WithLogger(log)).Load())
	assert.Contains(t, log.debug, "Ignoring task file")
}

func TestWithLoggerNilKeepsNoop(t *testing.T) {
	s := NewStore("tasks.json", WithLogger(nil))
	assert.NotNil(t, s.logger)
}

func TestStoreInspect(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		in, err := NewStore(filepath.Join(t.TempDir(), "tasks.json")).Inspect()
		require.NoError(t, err)
		assert.False(t, in.Exists)
		assert.Nil(t, in.Validation)
	})

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		s := NewStore(path)
		require.NoError(t, s.Save([]task.Task{task.New(1, "a"), task.New(2, "b")}))

		in, err := s.Inspect()
		require.NoError(t, err)
		assert.True(t, in.Exists)
		assert.Positive(t, in.Size)
		assert.Len(t, in.Tasks, 2)
		assert.True(t, in.Report.Clean())
		require.NotNil(t, in.Validation)
		assert.True(t, in.Validation.Valid)
	})

	t.Run("compact json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		content := `[{"id": 1, "description": "compact", "status": "todo"}]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		in, err := NewStore(path).Inspect()
		require.NoError(t, err)
		assert.Empty(t, in.Tasks)
		assert.Len(t, in.Report.Dropped, 1)
		assert.True(t, in.Validation.Valid, "valid JSON the line decoder cannot read")
	})

	t.Run("directory", func(t *testing.T) {
		_, err := NewStore(t.TempDir()).Inspect()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})
}
