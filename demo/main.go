package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"glbviewer/asset"
	"glbviewer/common/logs"
	"glbviewer/config"
	"glbviewer/interaction"
	"glbviewer/render"
	"glbviewer/render/gldevice"
	"glbviewer/window"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	log, err := logs.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	defer log.Sync()

	if err = window.Init(); err != nil {
		log.Error("failed to initialize window system", zap.Error(err))
		return -1
	}
	defer window.Terminate()

	state := interaction.NewState(cfg.Camera.Distance, cfg.Camera.MinDistance, cfg.Camera.MaxDistance)
	renderer := render.NewRenderer(nil, render.OptionsFromConfig(cfg))

	var dev *gldevice.Device
	ctrl := interaction.NewController(state, cfg.Camera.Sensitivity, func(width, height int) {
		if dev != nil {
			dev.Viewport(width, height)
		}
		if cfg.Camera.FollowResize {
			renderer.SetViewportAspect(width, height)
		}
	})

	win, err := window.Open(cfg.Window, ctrl)
	if err != nil {
		log.Error("failed to create window", zap.Error(err))
		return -1
	}
	log.Info("OpenGL", zap.String("version", gldevice.Version()))

	dev = gldevice.New(log)
	defer dev.Close()
	dev.Setup()
	ctrl.OnResize(win.FramebufferSize())

	res, err := asset.Load(cfg.Model)
	if err != nil {
		log.Error("failed to load model", zap.String("path", cfg.Model), zap.Error(err))
		return -1
	}
	for _, w := range res.Warnings {
		log.Warn("model", zap.String("path", cfg.Model), zap.String("warning", w))
	}
	scene, err := render.BuildScene(dev, res.Primitives)
	if err != nil {
		log.Error("failed to upload model", zap.String("path", cfg.Model), zap.Error(err))
		return -1
	}
	renderer.SetScene(scene)
	log.Info("model loaded",
		zap.String("path", cfg.Model),
		zap.Int("primitives", len(res.Primitives)),
		zap.Int("renderable", scene.Len()),
	)

	win.Run(func() {
		renderer.DrawFrame(dev, state)
	})
	log.Info("window closed")
	return 0
}
