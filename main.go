package main

import (
	"GoConsoleShapes/shape"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	direct "github.com/buger/goterm"
	"github.com/eiannone/keyboard"
	"github.com/pkg/profile"
)

/**
* Go Console Shapes v0.1
 */

const DEBUG = false

var (
	buf, bufErr     = os.OpenFile("log.txt", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	logger          = log.New(buf, "logger: ", log.Lshortfile)
	profilerHandler interface {
		Stop()
	}

	appConfig *AppConfig
	view      *ConsoleView

	//flags
	sceneName    string
	interactive  bool
	snapshotFile string
	withColor    bool
	profileMod   string
	profileDelay time.Duration
	osSignal     chan os.Signal
)

func init() {
	if bufErr != nil && DEBUG {
		panic(bufErr)
	}
	flag.StringVar(&sceneName, "scene", "", "scene blueprint name, empty runs the built-in demo scene")
	flag.BoolVar(&interactive, "interactive", false, "keyboard driven mode")
	flag.StringVar(&snapshotFile, "snapshot", "", "write a png snapshot of the final scene")
	flag.BoolVar(&withColor, "withColor", false, "enable color mode")
	flag.StringVar(&profileMod, "profile.mode", "", "enable profiling mode, one of [cpu, mem, mutex, block, all]")
	flag.DurationVar(&profileDelay, "profile.delay", -1, "delay of starting profile. -1 means no delay")

	osSignal = make(chan os.Signal, 1)
	signal.Notify(osSignal, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
}

func main() {
	flag.Parse()

	code := run()

	profileStop()
	buf.Sync()
	buf.Close()
	os.Exit(code)
}

func run() int {
	var err error

	appConfig, err = loadConfig()
	if err != nil {
		appConfig, _ = NewDefaultAppConfig()
		saveConfig(appConfig)
		logger.Println("no config found, default created")
	}
	appConfig.WithColor = appConfig.WithColor || withColor

	var scene *Scene
	if sceneName == "" {
		scene, err = NewDemoScene()
	} else {
		manager, _ := NewBlueprintManager()
		manager.AddLoaderPackage(NewJsonPackage())
		scene, err = manager.LoadFile(sceneName)
	}
	if err != nil {
		logger.Print(err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	view, _ = NewConsoleView(appConfig)

	if profileMod != "" {
		profileStart(profileMod, profileDelay)
	}

	if interactive {
		return runInteractive(scene)
	}
	return runBatch(scene)
}

// runBatch consumes "x y k" triples from stdin until end of input, scaling
// the whole scene about (x, y) by k after each one.
func runBatch(scene *Scene) int {
	var x, y, k float64
	valid := 0

	view.Report(scene)
	for {
		_, err := fmt.Fscan(os.Stdin, &x, &y, &k)
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Print(err)
			fmt.Fprintln(os.Stderr, "malformed input:", err)
			return 1
		}
		if err := scene.ScaleAbout(shape.Point{X: x, Y: y}, k); err != nil {
			logger.Print(err)
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		valid++
		view.Report(scene)
	}
	if valid == 0 {
		fmt.Fprintln(os.Stderr, "no valid triple read")
		return 1
	}
	if snapshotFile != "" {
		if err := SaveSnapshot(scene, shape.Point{X: x, Y: y}, snapshotFile, appConfig.Snapshot); err != nil {
			logger.Print(err)
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	return 0
}

func runInteractive(scene *Scene) int {
	keysEvents, err := keyboard.GetKeys(1)
	if err != nil {
		logger.Print(err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		_ = keyboard.Close()
		direct.Clear()
		direct.Flush()
	}()

	pivot := shape.Point{}
	if frame, err := scene.FrameRect(); err == nil {
		pivot = frame.Center
	}
	view.Draw(scene, pivot)

	for {
		select {
		case <-osSignal:
			return 0
		case event := <-keysEvents:
			if event.Err != nil {
				logger.Print(event.Err)
				return 1
			}
			switch {
			case event.Key == keyboard.KeyCtrlC || event.Rune == 'q':
				return 0
			case event.Key == keyboard.KeyArrowLeft:
				pivot.X -= 1
			case event.Key == keyboard.KeyArrowRight:
				pivot.X += 1
			case event.Key == keyboard.KeyArrowUp:
				pivot.Y += 1
			case event.Key == keyboard.KeyArrowDown:
				pivot.Y -= 1
			case event.Rune == '+' || event.Rune == '=':
				scene.ScaleAbout(pivot, 1.25)
			case event.Rune == '-':
				scene.ScaleAbout(pivot, 0.8)
			case event.Rune == 's':
				name := snapshotFile
				if name == "" {
					name = fmt.Sprintf("snapshot-%d.png", time.Now().Unix())
				}
				if err := SaveSnapshot(scene, pivot, name, appConfig.Snapshot); err != nil {
					logger.Print(err)
				}
			}
			view.Draw(scene, pivot)
		}
	}
}

func profileStart(mode string, delay time.Duration) {
	do := func() {
		logger.Print("start profile")
		switch mode {
		case "cpu":
			profilerHandler = profile.Start(func(p *profile.Profile) {
				profile.CPUProfile(p)
				profile.NoShutdownHook(p)
			}, profile.ProfilePath("./prof"))
		case "mem":
			profilerHandler = profile.Start(func(p *profile.Profile) {
				profile.MemProfile(p)
				profile.NoShutdownHook(p)
			}, profile.ProfilePath("./prof"))
		case "mutex":
			profilerHandler = profile.Start(func(p *profile.Profile) {
				profile.MutexProfile(p)
				profile.NoShutdownHook(p)
			}, profile.ProfilePath("./prof"))
		case "block":
			profilerHandler = profile.Start(func(p *profile.Profile) {
				profile.BlockProfile(p)
				profile.NoShutdownHook(p)
			}, profile.ProfilePath("./prof"))
		case "all":
			profilerHandler = profile.Start(func(p *profile.Profile) {
				profile.CPUProfile(p)
				profile.MutexProfile(p)
				profile.BlockProfile(p)
				profile.NoShutdownHook(p)
			}, profile.ProfilePath("./prof"))
		default:
			logger.Print("wrong profile type")
		}
	}

	if delay != -1 {
		time.AfterFunc(delay, do)
	} else {
		do()
	}
}

func profileStop() {
	if profilerHandler != nil {
		logger.Print("stop profile")
		profilerHandler.Stop()
	}
}
