package uniqueid

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Fingerprint maps descriptor names to canonical string values collected
// from the current machine. Numeric descriptors are rendered base-10 and
// the MAC list is sorted and comma-joined at insertion, so the map itself
// carries no ordering concerns.
type Fingerprint map[string]string

// Universal descriptor names. Platform-specific names live next to the
// probe that collects them.
const (
	fieldPlatform    = "platform"
	fieldArch        = "arch"
	fieldOSRelease   = "os_release"
	fieldOSType      = "os_type"
	fieldCPUCount    = "cpu_count"
	fieldCPUModel    = "cpu_model"
	fieldMemoryTotal = "memory_total"
	fieldHostname    = "hostname"
	fieldMACs        = "macs"
	fieldHomeDir     = "home_dir"
)

// Report describes one collection pass: which fields made it into the
// fingerprint and why the others were left out. 测试用它断言降级路径。
type Report struct {
	Collected   []string         // 已收集字段名，字典序
	Omitted     map[string]error // 字段名 -> 省略原因（*ProbeError）
	InContainer bool             // 是否检测到容器环境（仅诊断，不影响字段集）
}

// omit 记录一个缺席字段及其原因。
func (r *Report) omit(field string, err error) {
	if r.Omitted == nil {
		r.Omitted = make(map[string]error)
	}
	r.Omitted[field] = &ProbeError{Field: field, Err: err}
}

// Canonical serializes the fingerprint into one deterministic string:
// keys sorted lexicographically, rendered as `key:value` joined by `|`.
func (f Fingerprint) Canonical() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+":"+f[k])
	}
	return strings.Join(parts, "|")
}

// Hash returns the SHA-256 digest of the canonical string as 64 lowercase
// hexadecimal characters. This is the persistent identifier.
func (f Fingerprint) Hash() string {
	sum := sha256.Sum256([]byte(f.Canonical()))
	return hex.EncodeToString(sum[:])
}

// 可替换的系统信息来源，测试中换成桩以模拟单项获取失败。
var (
	hostInfo      = host.InfoWithContext
	cpuInfo       = cpu.InfoWithContext
	cpuCounts     = cpu.CountsWithContext
	virtualMemory = mem.VirtualMemoryWithContext
	osHostname    = os.Hostname
	userHomeDir   = os.UserHomeDir
	netMACs       = collectMACs
)

// collectFingerprint gathers the universal fields through library
// introspection, then merges the platform probe's extended fields.
// Collection never fails as a whole: every failing getter records its
// field in the report and moves on.
func (r *Resolver) collectFingerprint(ctx context.Context) (Fingerprint, *Report) {
	fp := Fingerprint{
		fieldPlatform: runtime.GOOS,
		fieldArch:     runtime.GOARCH,
	}
	report := &Report{InContainer: inContainerEnv()}

	if info, err := hostInfo(ctx); err != nil {
		report.omit(fieldOSRelease, err)
		report.omit(fieldOSType, err)
	} else {
		fp[fieldOSRelease] = info.KernelVersion
		fp[fieldOSType] = info.Platform
	}

	if n, err := cpuCounts(ctx, true); err != nil {
		report.omit(fieldCPUCount, err)
	} else {
		fp[fieldCPUCount] = strconv.Itoa(n)
	}

	if infos, err := cpuInfo(ctx); err != nil || len(infos) == 0 {
		if err == nil {
			err = ErrValueNotFound
		}
		report.omit(fieldCPUModel, err)
	} else {
		fp[fieldCPUModel] = strings.TrimSpace(infos[0].ModelName)
	}

	if vm, err := virtualMemory(ctx); err != nil {
		report.omit(fieldMemoryTotal, err)
	} else {
		fp[fieldMemoryTotal] = strconv.FormatUint(vm.Total, 10)
	}

	if name, err := osHostname(); err != nil {
		report.omit(fieldHostname, err)
	} else {
		fp[fieldHostname] = name
	}

	if macs, err := netMACs(); err != nil {
		report.omit(fieldMACs, err)
	} else {
		// 空列表也参与哈希：无可用网卡不算探测失败。
		fp[fieldMACs] = strings.Join(macs, ",")
	}

	if home, err := userHomeDir(); err != nil {
		report.omit(fieldHomeDir, err)
	} else {
		fp[fieldHomeDir] = home
	}

	// 平台扩展字段：探测器从不整体失败，逐字段降级。
	probe := r.platformProbe()
	fields, omitted := probe.CollectExtended(ctx)
	for k, v := range fields {
		fp[k] = v
	}
	for k, err := range omitted {
		report.omit(k, err)
		r.logDebug("probe field omitted", "probe", probe.Name(), "field", k, "reason", err)
	}

	report.Collected = make([]string, 0, len(fp))
	for k := range fp {
		report.Collected = append(report.Collected, k)
	}
	sort.Strings(report.Collected)
	return fp, report
}
