//go:build !linux && !windows && !darwin
// +build !linux,!windows,!darwin

package uniqueid

// 其余平台没有扩展字段集，指纹只由通用字段构成。
func newPlatformProbe(CommandExecutor) PlatformProbe {
	return noopProbe{}
}
