// Package uniqueid derives a persistent, hardware-fingerprint-based user
// identifier for the current machine (without admin privileges).
//
// https://github.com/darkit/uniqueid
//
// The identifier is the SHA-256 digest of a canonicalized fingerprint built
// from universal OS descriptors (platform, kernel release, CPU, memory,
// hostname, sorted MAC addresses, home directory) plus a small set of
// platform-conditional hardware identifiers (tested on Win7+, Debian 8+,
// Ubuntu 14.04+, OS X 10.10+). The digest is persisted to
// `~/.unique_hw_id` with owner-only permissions on first resolution and
// read back verbatim on every later call, so the value survives reboots
// and minor environment drift.
//
// Resolution is designed to always succeed: any failing hardware probe is
// recorded in the collection Report and its field left out of the
// fingerprint, and persistence failures are logged without affecting the
// returned value. The only fatal condition is an unresolvable home
// directory when no explicit store path was configured.
//
// Caveat: the persisted file is trusted as-is. Any non-empty content is
// returned as the identifier without validation; deleting the file is the
// only way to force recomputation.
package uniqueid // import "github.com/darkit/uniqueid"

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Resolver resolves the persistent machine identifier. Construct one with
// New, optionally adjust it with the With* methods, and share it freely:
// the resolver itself holds no cross-call state beyond collection
// diagnostics.
type Resolver struct {
	store    store
	executor CommandExecutor
	probe    PlatformProbe
	logger   *slog.Logger
	timeout  time.Duration

	mu         sync.Mutex
	lastReport *Report
}

// New returns a Resolver with the default store path (~/.unique_hw_id),
// the default bounded-timeout command executor and the probe matching the
// current platform.
func New() *Resolver {
	return &Resolver{timeout: defaultProbeTimeout}
}

// WithStorePath 覆盖持久化文件路径（默认 home 目录下的 .unique_hw_id）。
func (r *Resolver) WithStorePath(path string) *Resolver {
	r.store.path = path
	return r
}

// WithExecutor 替换探测命令执行器，测试中注入桩。
func (r *Resolver) WithExecutor(executor CommandExecutor) *Resolver {
	r.executor = executor
	return r
}

// WithProbe 替换平台探测器，测试中注入桩。
func (r *Resolver) WithProbe(probe PlatformProbe) *Resolver {
	r.probe = probe
	return r
}

// WithLogger sets the diagnostic logger. A nil logger (the default)
// silences all diagnostics.
func (r *Resolver) WithLogger(logger *slog.Logger) *Resolver {
	r.logger = logger
	return r
}

// WithProbeTimeout bounds each external probe command (default 3s).
func (r *Resolver) WithProbeTimeout(timeout time.Duration) *Resolver {
	r.timeout = timeout
	return r
}

// Resolve returns the persistent identifier for the current machine.
//
// 流程：先查持久化文件，存在且非空则原样返回；否则采集指纹 → 规范化 →
// SHA-256 → 尽力持久化 → 返回摘要。持久化失败只记日志，本次调用仍返回
// 新算出的摘要，下次调用会重新计算（输入稳定时结果相同）。
//
// Resolve fails only with ErrNoHomeDir, and only when no explicit store
// path was configured.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	id, ok, err := r.store.load()
	if err != nil {
		if errors.Is(err, ErrNoHomeDir) {
			return "", err
		}
		r.logWarn("reading persisted identifier failed, recomputing", "error", err)
	}
	if ok {
		return id, nil
	}

	fp, report := r.collectFingerprint(ctx)
	r.setLastReport(report)

	id = fp.Hash()
	if err := r.store.persist(id); err != nil {
		r.logWarn("persisting identifier failed", "error", err)
	}
	return id, nil
}

// Verify reports whether a persisted identifier exists and is non-empty.
// 不重新采集指纹，也不校验文件内容。
func (r *Resolver) Verify() (bool, error) {
	return r.store.verify()
}

// Invalidate removes the persisted identifier so the next Resolve
// recomputes it. Removing an absent file is not an error.
func (r *Resolver) Invalidate() error {
	return r.store.invalidate()
}

// Fingerprint collects a fresh fingerprint without touching the store,
// for diagnostics and tooling. It never fails: in the worst case the
// fingerprint holds only the runtime-derived fields.
func (r *Resolver) Fingerprint(ctx context.Context) (Fingerprint, *Report) {
	fp, report := r.collectFingerprint(ctx)
	r.setLastReport(report)
	return fp, report
}

// LastReport returns the diagnostics of the most recent collection pass,
// or nil when nothing has been collected yet.
func (r *Resolver) LastReport() *Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastReport
}

func (r *Resolver) setLastReport(report *Report) {
	r.mu.Lock()
	r.lastReport = report
	r.mu.Unlock()
}

// platformProbe 返回注入的探测器，未注入时按 GOOS 构造默认探测器。
func (r *Resolver) platformProbe() PlatformProbe {
	if r.probe != nil {
		return r.probe
	}
	return newPlatformProbe(r.commandExecutor())
}

func (r *Resolver) commandExecutor() CommandExecutor {
	if r.executor != nil {
		return r.executor
	}
	return &defaultExecutor{timeout: r.timeout}
}

func (r *Resolver) logWarn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}

func (r *Resolver) logDebug(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}
