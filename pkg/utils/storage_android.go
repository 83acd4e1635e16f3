//go:build android

package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PrepareStorageDir 在 gdata 打开之前准备 Android 存储目录
//
// gdata 在 Android 上写入 /data/data/{package}/saves，但不会创建该目录。
// 返回应用数据目录，目录不可写时返回错误。
func PrepareStorageDir() (string, error) {
	pkg, err := androidPackage()
	if err != nil {
		return "", fmt.Errorf("failed to detect Android package: %w", err)
	}
	root := filepath.Join("/data/data", pkg)
	saves := filepath.Join(root, "saves")

	if err := os.MkdirAll(saves, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", saves, err)
	}

	probe, err := os.CreateTemp(saves, ".probe-*")
	if err != nil {
		return "", fmt.Errorf("%s is not writable: %w", saves, err)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)

	return root, nil
}

// androidPackage 从 /proc/self/cmdline 读取包名（以 NUL 结尾）
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	pkg := string(bytes.TrimSpace(data))
	if pkg == "" {
		return "", errors.New("empty /proc/self/cmdline")
	}
	return pkg, nil
}
