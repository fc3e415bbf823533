//go:build darwin
// +build darwin

package uniqueid

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Darwin 扩展字段。
const (
	fieldHardwareUUID = "hardware_uuid"
	fieldDeviceSerial = "device_serial"
	fieldModelID      = "model_id"
)

// darwinProbe parses `system_profiler SPHardwareDataType -json` and falls
// back to ioreg/sysctl when the JSON output is unavailable or incomplete.
// system_profiler 偶尔很慢，全部命令都受执行器超时约束。
type darwinProbe struct {
	executor CommandExecutor
}

func newPlatformProbe(executor CommandExecutor) PlatformProbe {
	return &darwinProbe{executor: executor}
}

func (p *darwinProbe) Name() string { return "darwin" }

// spHardware 只取需要的三个字段，其余 JSON 内容忽略。
type spHardware struct {
	SPHardwareDataType []spHardwareEntry `json:"SPHardwareDataType"`
}

type spHardwareEntry struct {
	PlatformUUID string `json:"platform_UUID"`
	SerialNumber string `json:"serial_number"`
	MachineModel string `json:"machine_model"`
}

func (p *darwinProbe) CollectExtended(ctx context.Context) (map[string]string, map[string]error) {
	fields := make(map[string]string)
	omitted := make(map[string]error)

	hw, spErr := p.systemProfiler(ctx)

	collect := func(field, spValue string, fallback func() (string, error)) {
		if spErr == nil && strings.TrimSpace(spValue) != "" {
			fields[field] = strings.TrimSpace(spValue)
			return
		}
		v, err := fallback()
		if err != nil {
			if spErr != nil {
				err = fmt.Errorf("system_profiler: %v; fallback: %w", spErr, err)
			}
			omitted[field] = err
			return
		}
		fields[field] = v
	}

	collect(fieldHardwareUUID, hw.PlatformUUID, func() (string, error) {
		return p.ioregValue(ctx, "IOPlatformUUID")
	})
	collect(fieldDeviceSerial, hw.SerialNumber, func() (string, error) {
		return p.ioregValue(ctx, "IOPlatformSerialNumber")
	})
	collect(fieldModelID, hw.MachineModel, func() (string, error) {
		out, err := p.executor.Execute(ctx, "sysctl", "-n", "hw.model")
		if err != nil {
			return "", err
		}
		if out == "" {
			return "", fmt.Errorf("hw.model: %w", ErrEmptyValue)
		}
		return out, nil
	})

	return fields, omitted
}

// systemProfiler 返回 SPHardwareDataType 的首个条目；
// JSON 解析失败或条目为空时返回错误，由逐字段回退处理。
func (p *darwinProbe) systemProfiler(ctx context.Context) (spHardwareEntry, error) {
	out, err := p.executor.Execute(ctx, "system_profiler", "SPHardwareDataType", "-json")
	if err != nil {
		return spHardwareEntry{}, err
	}
	var parsed spHardware
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return spHardwareEntry{}, fmt.Errorf("SPHardwareDataType json: %w", err)
	}
	if len(parsed.SPHardwareDataType) == 0 {
		return spHardwareEntry{}, fmt.Errorf("SPHardwareDataType: %w", ErrValueNotFound)
	}
	return parsed.SPHardwareDataType[0], nil
}

// ioregValue 从 IOPlatformExpertDevice 的输出中取一个带引号的值。
func (p *darwinProbe) ioregValue(ctx context.Context, key string) (string, error) {
	out, err := p.executor.Execute(ctx, "ioreg", "-rd1", "-c", "IOPlatformExpertDevice")
	if err != nil {
		return "", err
	}
	return parseQuotedValue(out, key)
}
