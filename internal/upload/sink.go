package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Sink — приёмник файлов: принимает содержимое и желаемое имя,
// возвращает стабильный путь хранения.
type Sink interface {
	Save(filename string, src io.Reader) (string, error)
}

// ErrExtensionNotAllowed возвращается для файлов с запрещённым расширением.
var ErrExtensionNotAllowed = errors.New("расширение файла не входит в список разрешённых")

// Расширения по умолчанию. Переопределяются переменной ALLOWED_EXTENSIONS
// (через запятую); пустое значение переменной отключает проверку.
var defaultAllowedExtensions = []string{"xlsx", "csv", "docx", "pdf", "xls"}

// DiskSink сохраняет файлы на локальный диск.
type DiskSink struct {
	dir     string
	allowed map[string]bool // nil — проверка отключена
}

// NewDiskSink создаёт приёмник с каталогом из UPLOAD_DIR (по умолчанию uploads)
// и списком расширений из ALLOWED_EXTENSIONS.
func NewDiskSink() *DiskSink {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}

	var allowed map[string]bool
	if raw, ok := os.LookupEnv("ALLOWED_EXTENSIONS"); ok {
		if raw = strings.TrimSpace(raw); raw != "" {
			allowed = make(map[string]bool)
			for _, ext := range strings.Split(raw, ",") {
				allowed[strings.ToLower(strings.TrimSpace(ext))] = true
			}
		}
	} else {
		allowed = make(map[string]bool)
		for _, ext := range defaultAllowedExtensions {
			allowed[ext] = true
		}
	}

	return &DiskSink{dir: dir, allowed: allowed}
}

// Allowed сообщает, разрешено ли расширение имени файла.
func (s *DiskSink) Allowed(filename string) bool {
	if s.allowed == nil {
		return true
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	return s.allowed[ext]
}

// Save записывает файл на диск и возвращает путь хранения.
// Имя очищается от путевых компонентов и дополняется отметкой времени,
// чтобы повторная загрузка не перетёрла чужой файл.
func (s *DiskSink) Save(filename string, src io.Reader) (string, error) {
	if !s.Allowed(filename) {
		return "", ErrExtensionNotAllowed
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	base := filepath.Base(filepath.Clean(filename))
	stored := filepath.Join(s.dir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), base))

	dst, err := os.Create(stored)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(stored)
		return "", err
	}

	return stored, nil
}
