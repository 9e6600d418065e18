package main

import (
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/automoto/thornrun/assets"
	"github.com/automoto/thornrun/config"
	"github.com/automoto/thornrun/leveldata"
	"github.com/automoto/thornrun/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	cfg   *config.Config
	scene Scene
}

func NewGame(cfg *config.Config, arena *leveldata.Arena, seed uint64) *Game {
	return &Game{
		cfg:   cfg,
		scene: scenes.NewArenaScene(cfg, arena, seed),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	seed := flag.Uint64("seed", 0, "random seed, 0 uses the configured seed")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	arenaPath := flag.String("arena", "", "Tiled .tmx arena, defaults to the embedded arena")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("invalid -log-level %q: %v", *logLevel, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.New()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	arena, err := loadArena(*arenaPath)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Width*2, cfg.Height*2)
	ebiten.SetWindowTitle("thornrun")
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(NewGame(cfg, arena, *seed)); err != nil {
		log.Fatal(err)
	}
}

func loadArena(path string) (*leveldata.Arena, error) {
	var fsys fs.FS = assets.Levels()
	name := assets.DefaultArena
	if path != "" {
		fsys = os.DirFS(filepath.Dir(path))
		name = filepath.Base(path)
	}
	return leveldata.Load(fsys, name)
}
