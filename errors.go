package uniqueid

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHomeDir is returned when no store path was configured and the
	// user's home directory cannot be resolved. This is the only condition
	// under which Resolve and Verify fail.
	ErrNoHomeDir = errors.New("uniqueid: cannot resolve home directory")

	// ErrValueNotFound 表示探测命令执行成功，但输出中没有期望的字段。
	ErrValueNotFound = errors.New("value not found in output")

	// ErrEmptyValue 表示探测到的字段值为空。
	ErrEmptyValue = errors.New("empty value")

	// ErrOEMPlaceholder 表示探测到的值是 BIOS/UEFI 厂商占位符
	// （例如 "To be filled by O.E.M."），不能作为稳定的硬件标识。
	ErrOEMPlaceholder = errors.New("value is OEM placeholder")
)

// CommandError records a failed external introspection command.
// Use errors.As to extract the command name from wrapped errors.
type CommandError struct {
	Command string // 命令名，例如 "wmic"、"findmnt"、"ioreg"
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// ProbeError records why a single fingerprint field was omitted.
// Report.Omitted 中的值均为此类型，便于测试断言具体字段的降级原因。
type ProbeError struct {
	Field string // 字段名，例如 "disk_uuid"
	Err   error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }
