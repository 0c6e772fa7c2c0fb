package upload_test

import (
	"os"
	"strings"
	"testing"

	"class_hub/internal/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskSinkSavesAllowedFile(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	os.Unsetenv("ALLOWED_EXTENSIONS")

	sink := upload.NewDiskSink()

	stored, err := sink.Save("timetable.xlsx", strings.NewReader("содержимое"))
	require.NoError(t, err)

	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "содержимое", string(data))
	assert.Contains(t, stored, "timetable.xlsx")
}

func TestDiskSinkRejectsDisallowedExtension(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	os.Unsetenv("ALLOWED_EXTENSIONS")

	sink := upload.NewDiskSink()

	_, err := sink.Save("malware.exe", strings.NewReader("nope"))
	assert.ErrorIs(t, err, upload.ErrExtensionNotAllowed)
}

func TestDiskSinkCustomAllowList(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	t.Setenv("ALLOWED_EXTENSIONS", "txt, md")

	sink := upload.NewDiskSink()

	_, err := sink.Save("notes.txt", strings.NewReader("ok"))
	assert.NoError(t, err)

	_, err = sink.Save("report.pdf", strings.NewReader("no"))
	assert.ErrorIs(t, err, upload.ErrExtensionNotAllowed)
}

func TestDiskSinkEmptyAllowListDisablesCheck(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	t.Setenv("ALLOWED_EXTENSIONS", "")

	sink := upload.NewDiskSink()

	_, err := sink.Save("anything.bin", strings.NewReader("ok"))
	assert.NoError(t, err)
}

func TestDiskSinkStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)
	t.Setenv("ALLOWED_EXTENSIONS", "")

	sink := upload.NewDiskSink()

	stored, err := sink.Save("../../etc/passwd.csv", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored, dir), "Файл должен остаться в каталоге загрузок: %s", stored)
}
