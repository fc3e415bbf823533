package uniqueid

import "context"

// PlatformProbe collects the extended, platform-conditional hardware
// descriptors. A probe never fails outward: per-field failures come back
// in the omitted map and the field is simply absent from the fields map.
//
// 每个 GOOS 的探测器在 probe_*.go 中实现；不支持的平台退化为 noopProbe。
type PlatformProbe interface {
	// Name identifies the probe in logs and reports.
	Name() string

	// CollectExtended 返回收集到的扩展字段与逐字段的省略原因。
	CollectExtended(ctx context.Context) (fields map[string]string, omitted map[string]error)
}

// noopProbe contributes nothing. Used on platforms without an extended
// field set and as the zero fallback in tests.
type noopProbe struct{}

func (noopProbe) Name() string { return "noop" }

func (noopProbe) CollectExtended(context.Context) (map[string]string, map[string]error) {
	return nil, nil
}
