package uniqueid

import (
	"net"
	"sort"
	"strings"
)

const zeroMAC = "00:00:00:00:00:00"

// collectMACs 枚举本机网络接口并返回过滤、排序后的 MAC 地址列表。
// 排序保证同一台机器上无论接口枚举顺序如何，规范化串都一致。
func collectMACs() ([]string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	return filterMACs(ifaces), nil
}

// filterMACs drops loopback interfaces, interfaces without a hardware
// address and the all-zero placeholder, then lowercases and sorts the
// remaining addresses lexicographically.
func filterMACs(ifaces []net.Interface) []string {
	var macs []string
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if len(iface.HardwareAddr) == 0 {
			continue
		}
		mac := strings.ToLower(iface.HardwareAddr.String())
		if mac == "" || mac == zeroMAC {
			continue
		}
		macs = append(macs, mac)
	}
	sort.Strings(macs)
	return macs
}
