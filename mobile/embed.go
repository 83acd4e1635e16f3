//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把根目录的 data/arena.yaml 和 data/breakout.toml 复制到 mobile/data/：
//
//	mkdir -p mobile/data && cp data/arena.yaml data/breakout.toml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/arena.yaml data/breakout.toml
var dataFS embed.FS
