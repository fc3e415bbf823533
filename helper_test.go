package uniqueid

import (
	"context"
	"errors"
	"strings"
)

// mockExecutor 按 "命令 参数..." 拼接的键返回预置输出或错误，
// 并记录每次调用，便于断言探测命令是否被触发。
type mockExecutor struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (m *mockExecutor) Execute(_ context.Context, name string, args ...string) (string, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	m.calls = append(m.calls, key)
	if err, ok := m.errs[key]; ok {
		return "", &CommandError{Command: name, Err: err}
	}
	if out, ok := m.outputs[key]; ok {
		return strings.TrimSpace(out), nil
	}
	return "", &CommandError{Command: name, Err: errors.New("command not mocked")}
}

// stubProbe 返回固定的字段与省略集合。
type stubProbe struct {
	fields  map[string]string
	omitted map[string]error
	calls   int
}

func (p *stubProbe) Name() string { return "stub" }

func (p *stubProbe) CollectExtended(context.Context) (map[string]string, map[string]error) {
	p.calls++
	return p.fields, p.omitted
}
