package uniqueid

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// defaultProbeTimeout 限制单条探测命令的执行时间，避免挂起的外部命令
// 无限期阻塞整个解析流程。
const defaultProbeTimeout = 3 * time.Second

// CommandExecutor runs an external introspection command and returns its
// trimmed standard output. Implementations are swapped in tests.
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}

// defaultExecutor runs commands through os/exec with a bounded timeout.
type defaultExecutor struct {
	timeout time.Duration
}

func (e *defaultExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	timeout := e.timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}

	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(cmdCtx, name, args...).Output()
	if err != nil {
		return "", &CommandError{Command: name, Err: err}
	}
	return strings.TrimSpace(string(out)), nil
}
