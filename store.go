package uniqueid

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// storeFileName is the well-known file under the home directory that holds
// the persisted identifier.
const storeFileName = ".unique_hw_id"

// store 管理持久化标识符的唯一共享资源：一个固定路径的小文件。
// 不加锁：多个进程的首次解析会计算出相同的输入，写入竞争是无害的
// （last writer wins）。
type store struct {
	path string // empty means "resolve under the home directory"
}

func (s *store) file() (string, error) {
	if s.path != "" {
		return s.path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHomeDir, err)
	}
	return filepath.Join(home, storeFileName), nil
}

// load returns the persisted identifier, or ok=false when the file is
// absent or empty. Content is returned exactly as stored: no trimming and
// no format validation, so any non-empty content counts as a valid
// identifier until the file is removed.
//
// 返回的 error 分两类：ErrNoHomeDir 为致命错误；其余为读失败，
// 调用方记录日志后按“不存在”处理并重新计算。
func (s *store) load() (id string, ok bool, err error) {
	path, err := s.file()
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	if len(data) == 0 {
		return "", false, nil
	}
	return string(data), true, nil
}

// persist writes the identifier with owner-only permissions.
func (s *store) persist(id string) error {
	path, err := s.file()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(id), 0o600)
}

// verify reports whether a persisted identifier currently exists and is
// non-empty. 不校验内容格式。
func (s *store) verify() (bool, error) {
	path, err := s.file()
	if err != nil {
		return false, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, nil
	}
	return info.Size() > 0, nil
}

// invalidate removes the persisted identifier. Removing an absent file is
// not an error.
func (s *store) invalidate() error {
	path, err := s.file()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
