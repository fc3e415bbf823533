//go:build linux
// +build linux

package uniqueid

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Linux 扩展字段。
const (
	fieldSystemUUID  = "system_uuid"
	fieldBoardSerial = "board_serial"
	fieldDiskUUID    = "disk_uuid"
)

// linuxProbe reads DMI identifiers from sysfs and resolves the root
// filesystem UUID. sysfs 读取不需要外部进程；根分区 UUID 优先走 findmnt，
// 失败时扫描 /dev/disk/by-uuid 符号链接。
type linuxProbe struct {
	executor CommandExecutor
	dmiPath  string // 默认 /sys/class/dmi/id，测试中指向临时目录
	byUUID   string // 默认 /dev/disk/by-uuid
	rootDev  string // 默认空，由 findmnt 失败后的回退逻辑解析
}

func newPlatformProbe(executor CommandExecutor) PlatformProbe {
	return &linuxProbe{
		executor: executor,
		dmiPath:  "/sys/class/dmi/id",
		byUUID:   "/dev/disk/by-uuid",
	}
}

func (p *linuxProbe) Name() string { return "linux" }

func (p *linuxProbe) CollectExtended(ctx context.Context) (map[string]string, map[string]error) {
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

	collect(fieldSystemUUID, func() (string, error) {
		return p.readDMI("product_uuid")
	})
	collect(fieldBoardSerial, func() (string, error) {
		return p.readDMI("board_serial")
	})
	collect(fieldDiskUUID, func() (string, error) {
		return p.rootDiskUUID(ctx)
	})

	return fields, omitted
}

// readDMI 读取单个 DMI 属性并剔除 OEM 占位值。
// board_serial 等文件通常只有 root 可读，权限不足时该字段静默缺席。
func (p *linuxProbe) readDMI(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(p.dmiPath, name))
	if err != nil {
		return "", err
	}
	v := strings.TrimSpace(string(data))
	if isOEMPlaceholder(v) {
		return "", fmt.Errorf("%s: %w", name, ErrOEMPlaceholder)
	}
	return v, nil
}

// rootDiskUUID resolves the filesystem UUID of the root mount.
func (p *linuxProbe) rootDiskUUID(ctx context.Context) (string, error) {
	out, err := p.executor.Execute(ctx, "findmnt", "-no", "UUID", "/")
	if err == nil {
		uuid := strings.TrimSpace(out)
		if uuid != "" && !isOEMPlaceholder(uuid) {
			return uuid, nil
		}
		err = fmt.Errorf("findmnt: %w", ErrEmptyValue)
	}

	// 回退：在 /dev/disk/by-uuid 下找指向根设备的符号链接。
	if uuid := p.scanByUUID(ctx); uuid != "" {
		return uuid, nil
	}
	return "", err
}

// scanByUUID 扫描 by-uuid 目录，返回指向根设备的链接名（即 UUID）。
func (p *linuxProbe) scanByUUID(ctx context.Context) string {
	rootDev := p.rootDev
	if rootDev == "" {
		out, err := p.executor.Execute(ctx, "findmnt", "-no", "SOURCE", "/")
		if err != nil {
			return ""
		}
		rootDev = strings.TrimSpace(out)
		if !strings.HasPrefix(rootDev, "/dev/") {
			return ""
		}
	}
	absDev, err := filepath.Abs(rootDev)
	if err != nil {
		return ""
	}

	entries, err := os.ReadDir(p.byUUID)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		link, err := os.Readlink(filepath.Join(p.byUUID, entry.Name()))
		if err != nil {
			continue
		}
		if !filepath.IsAbs(link) {
			link = filepath.Join(p.byUUID, link)
		}
		target, err := filepath.Abs(link)
		if err != nil {
			continue
		}
		if target == absDev {
			return entry.Name()
		}
	}
	return ""
}
