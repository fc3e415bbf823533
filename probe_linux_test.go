//go:build linux
// +build linux

package uniqueid

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeDMI(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLinuxProbeReadDMI(t *testing.T) {
	dir := t.TempDir()
	writeDMI(t, dir, "product_uuid", "4c4c4544-0051-3010-8034-b9c04f474432\n")
	writeDMI(t, dir, "board_serial", "To be filled by O.E.M.\n")

	p := &linuxProbe{dmiPath: dir}

	got, err := p.readDMI("product_uuid")
	if err != nil {
		t.Fatalf("readDMI(product_uuid): %v", err)
	}
	if got != "4c4c4544-0051-3010-8034-b9c04f474432" {
		t.Errorf("readDMI(product_uuid) = %q", got)
	}

	if _, err := p.readDMI("board_serial"); !errors.Is(err, ErrOEMPlaceholder) {
		t.Errorf("readDMI(board_serial) err = %v, want ErrOEMPlaceholder", err)
	}

	if _, err := p.readDMI("chassis_serial"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("readDMI(chassis_serial) err = %v, want not-exist", err)
	}
}

func TestLinuxProbeRootDiskUUID(t *testing.T) {
	exec := &mockExecutor{outputs: map[string]string{
		"findmnt -no UUID /": "e5a3c1d4-9b7f-4a2e-8c6d-0f1e2d3c4b5a",
	}}
	p := &linuxProbe{executor: exec, dmiPath: t.TempDir()}

	got, err := p.rootDiskUUID(context.Background())
	if err != nil {
		t.Fatalf("rootDiskUUID(): %v", err)
	}
	if got != "e5a3c1d4-9b7f-4a2e-8c6d-0f1e2d3c4b5a" {
		t.Errorf("rootDiskUUID() = %q", got)
	}
}

func TestLinuxProbeRootDiskUUIDFallback(t *testing.T) {
	// findmnt 不可用时回退到扫描 by-uuid 符号链接。
	byUUID := t.TempDir()
	devDir := t.TempDir()
	rootDev := filepath.Join(devDir, "sda2")
	if err := os.WriteFile(rootDev, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	uuid := "e5a3c1d4-9b7f-4a2e-8c6d-0f1e2d3c4b5a"
	if err := os.Symlink(rootDev, filepath.Join(byUUID, uuid)); err != nil {
		t.Fatal(err)
	}

	exec := &mockExecutor{errs: map[string]error{
		"findmnt -no UUID /":   errors.New("executable file not found"),
		"findmnt -no SOURCE /": errors.New("executable file not found"),
	}}
	p := &linuxProbe{executor: exec, dmiPath: t.TempDir(), byUUID: byUUID, rootDev: rootDev}

	got, err := p.rootDiskUUID(context.Background())
	if err != nil {
		t.Fatalf("rootDiskUUID(): %v", err)
	}
	if got != uuid {
		t.Errorf("rootDiskUUID() = %q, want %q", got, uuid)
	}
}

func TestLinuxProbeCollectExtendedDegrades(t *testing.T) {
	dir := t.TempDir()
	writeDMI(t, dir, "product_uuid", "4c4c4544-0051-3010-8034-b9c04f474432\n")
	// board_serial 缺失，findmnt 不可用：两个字段降级，一个字段保留。
	exec := &mockExecutor{}
	p := &linuxProbe{executor: exec, dmiPath: dir, byUUID: filepath.Join(dir, "missing")}

	fields, omitted := p.CollectExtended(context.Background())

	if fields[fieldSystemUUID] != "4c4c4544-0051-3010-8034-b9c04f474432" {
		t.Errorf("system_uuid = %q", fields[fieldSystemUUID])
	}
	if _, ok := omitted[fieldBoardSerial]; !ok {
		t.Error("board_serial should be omitted")
	}
	if _, ok := omitted[fieldDiskUUID]; !ok {
		t.Error("disk_uuid should be omitted")
	}
	if _, ok := fields[fieldBoardSerial]; ok {
		t.Error("omitted field must not appear in fields")
	}
}
