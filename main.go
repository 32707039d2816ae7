package main

import (
	"flag"
	"log"

	"github.com/decker502/contralike/pkg/app"
	"github.com/decker502/contralike/pkg/config"
	"github.com/decker502/contralike/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	players := flag.Int("players", 1, "玩家数量（1 或 2）")
	configPath := flag.String("config", "", "外部关卡配置文件路径（默认使用内置 data/stage.yaml）")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Players:    *players,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
