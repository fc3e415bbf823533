package uniqueid

import (
	"fmt"
	"strings"
)

// 本文件收集各平台探测命令输出的解析辅助函数。
// 解析策略统一为“按行切分，取匹配键后面的尾部字段”，
// 输出的字节级格式并非兼容性要求（结果只进哈希），但字段语义必须保持。

// splitNonEmptyLines 按换行切分并丢弃空行，兼容 \r\n。
func splitNonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// parseAssignValue extracts the value of a `Key=Value` line, the format
// produced by `wmic ... /value`.
func parseAssignValue(output, key string) (string, error) {
	prefix := key + "="
	for _, line := range splitNonEmptyLines(output) {
		if strings.HasPrefix(line, prefix) {
			v := strings.TrimSpace(strings.TrimPrefix(line, prefix))
			if v == "" {
				return "", fmt.Errorf("%s: %w", key, ErrEmptyValue)
			}
			return v, nil
		}
	}
	return "", fmt.Errorf("%s: %w", key, ErrValueNotFound)
}

// parseColonValue extracts the trailing field of a `Key: Value` line,
// the format produced by sysctl and several BSD tools.
func parseColonValue(output, key string) (string, error) {
	for _, line := range splitNonEmptyLines(output) {
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if strings.TrimSpace(k) != key {
			continue
		}
		v = strings.TrimSpace(v)
		if v == "" {
			return "", fmt.Errorf("%s: %w", key, ErrEmptyValue)
		}
		return v, nil
	}
	return "", fmt.Errorf("%s: %w", key, ErrValueNotFound)
}

// parseQuotedValue extracts the quoted value of a `"Key" = "Value"` line,
// the format produced by `ioreg -rd1 -c IOPlatformExpertDevice`.
func parseQuotedValue(output, key string) (string, error) {
	needle := `"` + key + `"`
	for _, line := range splitNonEmptyLines(output) {
		if !strings.Contains(line, needle) {
			continue
		}
		_, rest, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		v := strings.Trim(strings.TrimSpace(rest), `"<>`)
		if v == "" {
			return "", fmt.Errorf("%s: %w", key, ErrEmptyValue)
		}
		return v, nil
	}
	return "", fmt.Errorf("%s: %w", key, ErrValueNotFound)
}

// isOEMPlaceholder 判断取到的值是否为厂商占位串。
// 占位串在不同 OEM 固件间千奇百怪，这里只覆盖实际遇到过的形态。
func isOEMPlaceholder(s string) bool {
	l := strings.ToLower(strings.TrimSpace(s))
	if l == "" {
		return true
	}
	switch l {
	case "none",
		"to be filled by o.e.m.",
		"to be filled by oem",
		"default string",
		"system serial number",
		"unknown",
		"not specified",
		"na",
		"n/a":
		return true
	}
	// 全 0 / 全 F（含 UUID 形态的 00000000-0000-...）
	if strings.Trim(l, "0-") == "" {
		return true
	}
	if strings.Trim(l, "f-") == "" {
		return true
	}
	return false
}
