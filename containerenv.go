package uniqueid

import (
	"os"
	"strings"
)

// inContainerEnv reports whether the process appears to run inside a
// container. 仅作诊断输出（Report.InContainer 与调试日志），不改变指纹
// 字段集：容器内硬件探测自然降级为字段缺席。
func inContainerEnv() bool {
	if fileExists("/.dockerenv") || fileExists("/.dockerinit") {
		return true
	}
	if os.Getenv("container") != "" || os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true
	}
	return cgroupHasContainerMarker("/proc/self/cgroup")
}

// cgroupHasContainerMarker 在 cgroup 路径中寻找常见的容器运行时片段。
func cgroupHasContainerMarker(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	for _, marker := range []string{"/docker/", "/containers/", "/containerd/", "/kubepods", "/lxc/", "/sandboxes/"} {
		if strings.Contains(string(data), marker) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
