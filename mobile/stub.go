//go:build !mobile

// Package mobile 的桌面端占位：真正的绑定入口在 mobile.go，需要 -tags mobile
package mobile

// Dummy 让 ./... 在不带 mobile 标签时也能编译此包
func Dummy() {}
