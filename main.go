// Command curvekit evaluates a curvekit script, or renders one of the
// built-in editor scenes, and exports the result as STL, PNG or JSON.
//
// Usage:
//
//	curvekit [flags] script.lisp
//	curvekit -scene koch -depth 4 -png koch.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/chazu/curvekit/pkg/config"
	"github.com/chazu/curvekit/pkg/editor"
	"github.com/chazu/curvekit/pkg/export"
	"github.com/chazu/curvekit/pkg/geom"
	"github.com/chazu/curvekit/pkg/logging"
)

// options holds the parsed command line.
type options struct {
	configPath string
	stl        string
	png        string
	json       string
	watch      bool
	verbose    bool
	scene      string
	depth      int
	elapsed    float64
	script     string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("curvekit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "TOML configuration file")
	fs.StringVar(&o.stl, "stl", "", "write triangle meshes to this STL file")
	fs.StringVar(&o.png, "png", "", "write a preview image to this PNG file")
	fs.StringVar(&o.json, "json", "", "write meshes to this JSON file (- for stdout)")
	fs.BoolVar(&o.watch, "watch", false, "re-export whenever the script changes")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")
	fs.StringVar(&o.scene, "scene", "", "render a built-in editor scene instead of a script")
	fs.IntVar(&o.depth, "depth", editor.DefaultDepth, "fractal depth for -scene")
	fs.Float64Var(&o.elapsed, "t", 0, "animation time in seconds for -scene solar")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: curvekit [flags] script.lisp\n       curvekit -scene name [flags]\n\nflags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	switch {
	case o.scene != "" && fs.NArg() > 0:
		return o, errors.New("a script and -scene are mutually exclusive")
	case o.scene == "" && fs.NArg() != 1:
		fs.Usage()
		return o, errors.New("expected exactly one script")
	case o.scene != "" && o.watch:
		return o, errors.New("-watch needs a script")
	}
	o.script = fs.Arg(0)
	if o.stl == "" && o.png == "" && o.json == "" {
		o.json = "-"
	}
	return o, nil
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "curvekit:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if o.configPath != "" {
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}

	if o.scene != "" {
		meshes, err := sceneMeshes(cfg, o)
		if err != nil {
			return err
		}
		return write(cfg, o, meshes, stdout)
	}

	app := NewApp(cfg)
	if err := build(ctx, app, cfg, o, stdout, stderr); err != nil && !o.watch {
		return err
	}
	if !o.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return watch(ctx, o.script, func() {
		if err := build(ctx, app, cfg, o, stdout, stderr); err != nil {
			fmt.Fprintln(stderr, "curvekit:", err)
		}
	})
}

// build evaluates the script and writes every requested output.
// Warnings are printed here, not logged, so each appears once.
func build(ctx context.Context, app *App, cfg config.Config, o options, stdout, stderr io.Writer) error {
	src, err := os.ReadFile(o.script)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	res, meshes := app.evaluate(ctx, string(src))
	for _, w := range res.Warnings {
		fmt.Fprintf(stderr, "%s: warning: %s\n", o.script, w.Message)
	}
	if len(res.Errors) > 0 {
		for _, e := range res.Errors {
			if e.Line > 0 {
				fmt.Fprintf(stderr, "%s:%d: %s\n", o.script, e.Line, e.Message)
			} else {
				fmt.Fprintf(stderr, "%s: %s\n", o.script, e.Message)
			}
		}
		return fmt.Errorf("%s: %d error(s)", o.script, len(res.Errors))
	}
	return write(cfg, o, meshes, stdout)
}

// sceneMeshes renders one frame of a built-in editor scene.
func sceneMeshes(cfg config.Config, o options) ([]*geom.Mesh, error) {
	s, ok := editor.ParseScene(o.scene)
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", o.scene)
	}
	ed, err := editor.New(cfg)
	if err != nil {
		return nil, err
	}
	ed.SetScene(s)
	in := &editor.Input{Elapsed: o.elapsed}
	for d := ed.Depth(); d < o.depth; d++ {
		in.Press(editor.KeyUp)
	}
	for d := ed.Depth(); d > o.depth; d-- {
		in.Press(editor.KeyDown)
	}
	ed.Update(in)
	return ed.Frame(), nil
}

func write(cfg config.Config, o options, meshes []*geom.Mesh, stdout io.Writer) error {
	if o.stl != "" {
		if err := export.WriteSTL(o.stl, meshes); err != nil {
			return err
		}
	}
	if o.png != "" {
		if err := export.Preview(meshes, cfg.Window.Width, cfg.Window.Height).SavePNG(o.png); err != nil {
			return err
		}
	}
	switch o.json {
	case "":
	case "-":
		return export.WriteJSON(stdout, meshes)
	default:
		f, err := os.Create(o.json)
		if err != nil {
			return fmt.Errorf("create %s: %w", o.json, err)
		}
		if err := export.WriteJSON(f, meshes); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return nil
}

// watch calls rebuild whenever path is written or replaced, until ctx ends.
// The parent directory is watched so editors that save by renaming a
// temporary file are seen too.
func watch(ctx context.Context, path string, rebuild func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	log := logging.With("watch")
	log.Info("watching", "path", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				log.Debug("script changed", "op", event.Op.String())
				rebuild()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "err", err)
		}
	}
}
