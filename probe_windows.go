//go:build windows
// +build windows

package uniqueid

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// Windows 扩展字段。
const (
	fieldCPUID      = "cpu_id"
	fieldBIOSSerial = "bios_serial"
	fieldBoardUUID  = "board_uuid"
	fieldDiskSerial = "disk_serial"
)

// windowsProbe queries WMI through wmic and falls back to well-known
// registry values when wmic is unavailable (Windows 11 下 wmic 可能已被
// 移除) 或返回占位串。
type windowsProbe struct {
	executor CommandExecutor
}

func newPlatformProbe(executor CommandExecutor) PlatformProbe {
	return &windowsProbe{executor: executor}
}

func (p *windowsProbe) Name() string { return "windows" }

func (p *windowsProbe) CollectExtended(ctx context.Context) (map[string]string, map[string]error) {
	fields := make(map[string]string)
	omitted := make(map[string]error)

	collect := func(field string, get func() (string, error)) {
		v, err := get()
		if err != nil {
			omitted[field] = err
			return
		}
		fields[field] = v
	}

	collect(fieldCPUID, func() (string, error) {
		return p.wmicValue(ctx, "ProcessorId", "cpu", "get", "ProcessorId", "/value")
	})
	collect(fieldBIOSSerial, func() (string, error) {
		v, err := p.wmicValue(ctx, "SerialNumber", "bios", "get", "SerialNumber", "/value")
		if err != nil {
			// 注册表备选：部分机器在 BIOS 键下提供序列号。
			if rv := readRegistryString(registry.LOCAL_MACHINE,
				`HARDWARE\DESCRIPTION\System\BIOS`, "SystemSerialNumber"); rv != "" && !isOEMPlaceholder(rv) {
				return rv, nil
			}
			return "", err
		}
		return v, nil
	})
	collect(fieldBoardUUID, func() (string, error) {
		v, err := p.wmicValue(ctx, "UUID", "csproduct", "get", "UUID", "/value")
		if err != nil {
			// MachineGuid 更接近“安装标识”，但作为 UUID 备选可用。
			if rv := readRegistryString(registry.LOCAL_MACHINE,
				`SOFTWARE\Microsoft\Cryptography`, "MachineGuid"); rv != "" {
				return rv, nil
			}
			return "", err
		}
		return v, nil
	})
	collect(fieldDiskSerial, func() (string, error) {
		return p.wmicValue(ctx, "SerialNumber", "diskdrive", "get", "SerialNumber", "/value")
	})

	return fields, omitted
}

// wmicValue 执行一条 wmic 查询并解析 `Key=Value` 输出中的目标键，
// 剔除 OEM 占位值。
func (p *windowsProbe) wmicValue(ctx context.Context, key string, args ...string) (string, error) {
	out, err := p.executor.Execute(ctx, "wmic", args...)
	if err != nil {
		return "", err
	}
	v, err := parseAssignValue(out, key)
	if err != nil {
		return "", err
	}
	if isOEMPlaceholder(v) {
		return "", fmt.Errorf("%s: %w", key, ErrOEMPlaceholder)
	}
	return v, nil
}

// readRegistryString 读取注册表字符串值，失败时返回空串。
func readRegistryString(root registry.Key, path, name string) string {
	k, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer k.Close()
	v, _, err := k.GetStringValue(name)
	if err != nil {
		return ""
	}
	return v
}
