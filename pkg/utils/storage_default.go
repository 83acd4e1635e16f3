//go:build !android

package utils

// PrepareStorageDir 非 Android 平台上 gdata 自行创建目录，返回空路径
func PrepareStorageDir() (string, error) {
	return "", nil
}
