// Package demo drives the pattern demonstrations behind the patterns CLI.
// Every demo writes to Env.Stdout and logs through Env.Logger; none of them
// keeps state between runs.
package demo

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-patterns/internal/config"
	"github.com/goliatone/go-patterns/internal/fileutil"
	"github.com/goliatone/go-patterns/pkg/board"
	"github.com/goliatone/go-patterns/pkg/capability"
	"github.com/goliatone/go-patterns/pkg/console"
	"github.com/goliatone/go-patterns/pkg/formbuilder"
	"github.com/goliatone/go-patterns/pkg/render"
)

// Artifact file names written into Config.OutputDir.
const (
	LoginFile     = "login.html"
	GameBoardFile = "gameboard.txt"
)

// PageTitle is the title of the adapter demo page.
const PageTitle = "Plain Text"

// Paragraphs are the bodies rendered by the adapter demo.
var Paragraphs = []string{
	"This is a very short plain-text paragraph that demonstrates\nthe simple TextRenderer class.",
	"This is another short paragraph just so that we can\n        see two paragraphs in action.",
}

// Env bundles what the demos share.
type Env struct {
	Stdout    io.Writer
	Logger    *zap.Logger
	Config    config.Config
	Renderers *render.Registry
	Builders  *formbuilder.Registry
}

// Option configures an Env.
type Option func(*Env)

// WithLogger sets the logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Env) {
		if logger != nil {
			e.Logger = logger
		}
	}
}

// WithConfig replaces config.Default().
func WithConfig(cfg config.Config) Option {
	return func(e *Env) {
		e.Config = cfg
	}
}

// WithRenderers replaces the built-in renderer registry.
func WithRenderers(reg *render.Registry) Option {
	return func(e *Env) {
		if reg != nil {
			e.Renderers = reg
		}
	}
}

// WithBuilders replaces the built-in form builder registry.
func WithBuilders(reg *formbuilder.Registry) Option {
	return func(e *Env) {
		if reg != nil {
			e.Builders = reg
		}
	}
}

// NewEnv returns an Env writing to stdout with the built-in registries.
func NewEnv(stdout io.Writer, options ...Option) *Env {
	env := &Env{
		Stdout:    stdout,
		Logger:    zap.NewNop(),
		Config:    config.Default(),
		Renderers: render.Default(),
		Builders:  formbuilder.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(env)
	}
	return env
}

// RunRender renders the demo page through the named renderer. An empty name
// selects the text renderer.
func (e *Env) RunRender(name string) error {
	if name == "" {
		name = render.RendererText
	}
	e.Logger.Debug("rendering page", zap.String("renderer", name), zap.Int("width", e.Config.Width))

	renderer, err := e.Renderers.New(name, e.Stdout, render.Options{Width: e.Config.Width})
	if err != nil {
		return err
	}
	page, err := render.NewPage(PageTitle, renderer)
	if err != nil {
		return err
	}
	for _, body := range Paragraphs {
		page.AddParagraph(body)
	}
	return page.Render()
}

// RunFormBuilder builds the login form. In regression mode every registered
// builder prints its form in name order; otherwise the HTML form is written
// to LoginFile and its path printed.
func (e *Env) RunFormBuilder(regression bool) error {
	if regression {
		for _, name := range e.Builders.List() {
			if err := e.printForm(name); err != nil {
				return err
			}
		}
		return nil
	}

	form, err := e.buildForm(formbuilder.BuilderHTML)
	if err != nil {
		return err
	}
	path := fileutil.TempPath(e.Config.OutputDir, LoginFile)
	if err := fileutil.WriteFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, form)
		return err
	}); err != nil {
		return fmt.Errorf("demo: write %s: %w", path, err)
	}
	e.Logger.Info("form written", zap.String("path", path), zap.Int("bytes", len(form)))
	_, err = fmt.Fprintf(e.Stdout, "wrote %s\n", path)
	return err
}

func (e *Env) buildForm(name string) (string, error) {
	builder, err := e.Builders.New(name)
	if err != nil {
		return "", err
	}
	e.Logger.Debug("building login form", zap.String("builder", name))
	return formbuilder.CreateLoginForm(builder)
}

func (e *Env) printForm(name string) error {
	form, err := e.buildForm(name)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(form, "\n") {
		form += "\n"
	}
	_, err = io.WriteString(e.Stdout, form)
	return err
}

// RunGameBoard prints the requested board variant, or every variant when
// variant is empty or "all". An empty variant falls back to Config.Board.
// With toFile the plain renderings are also written to GameBoardFile.
func (e *Env) RunGameBoard(variant string, toFile bool) error {
	names, err := e.variants(variant)
	if err != nil {
		return err
	}

	cells := console.ForMode(e.Config.Color, e.Stdout)
	boards := make([]*board.Board, 0, len(names))
	for _, name := range names {
		b, err := board.NewVariant(name, board.WithConsole(cells))
		if err != nil {
			return err
		}
		e.Logger.Debug("board ready", zap.String("variant", name),
			zap.Int("rows", b.Rows()), zap.Int("columns", b.Columns()))
		if _, err := fmt.Fprintln(e.Stdout, b); err != nil {
			return err
		}
		boards = append(boards, b)
	}

	if !toFile {
		return nil
	}
	path := fileutil.TempPath(e.Config.OutputDir, GameBoardFile)
	if err := fileutil.WriteFile(path, func(w io.Writer) error {
		for _, b := range boards {
			if _, err := fmt.Fprintln(w, b.Format(console.Plain())); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("demo: write %s: %w", path, err)
	}
	e.Logger.Info("boards written", zap.String("path", path), zap.Int("boards", len(boards)))
	_, err = fmt.Fprintf(e.Stdout, "wrote %s\n", path)
	return err
}

func (e *Env) variants(variant string) ([]string, error) {
	variant = strings.ToLower(strings.TrimSpace(variant))
	if variant == "" {
		variant = e.Config.Board
	}
	if variant == "" || variant == config.BoardAll {
		return board.Variants(), nil
	}
	for _, name := range board.Variants() {
		if name == variant {
			return []string{name}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", board.ErrUnknownVariant, variant)
}

// rendererRole is the abstraction side of the capabilities demo. Concrete
// renderers are its implementations and must provide what it requires.
type rendererRole struct {
	capability.Requirer
}

func newRendererRole() rendererRole {
	return rendererRole{capability.Requires(render.Methods.Methods()...)}
}

// RunCapabilities checks every registered renderer against the requirements
// declared by the renderer role and reports each result on one overwritten
// line. Failures stay on screen and are returned together once every
// renderer has been checked.
func (e *Env) RunCapabilities() error {
	reporter := capability.NewReporter(e.Stdout)
	required := capability.Requirements(newRendererRole())
	var failures []error
	pending := false

	for _, name := range e.Renderers.List() {
		renderer, err := e.Renderers.New(name, io.Discard, render.Options{Width: e.Config.Width})
		if err == nil {
			err = required.Check(renderer)
		}
		if err != nil {
			e.Logger.Warn("renderer rejected", zap.String("renderer", name), zap.Error(err))
			failures = append(failures, fmt.Errorf("%s: %w", name, err))
			if rerr := reporter.Report(fmt.Sprintf("%s: %v", name, err), true); rerr != nil {
				return rerr
			}
			pending = false
			continue
		}
		e.Logger.Debug("renderer accepted", zap.String("renderer", name))
		if rerr := reporter.Report(fmt.Sprintf("%s: provides %s", name, required), false); rerr != nil {
			return rerr
		}
		pending = true
	}

	if pending {
		if _, err := io.WriteString(e.Stdout, "\n"); err != nil {
			return err
		}
	}
	return errors.Join(failures...)
}
