package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// App представляет TUI-приложение просмотра записей.
type App struct {
	App   *tview.Application
	Pages *tview.Pages
}

// Primitives - структуры для хранения и передачи экранов.
type Primitives struct {
	Name string
	Prim func(*App) tview.Primitive
}

// NewApp создаёт новое TUI-приложение. Первый экран из prims становится видимым.
func NewApp(prims []Primitives) *App {
	tuiApp := &App{
		App:   tview.NewApplication(),
		Pages: tview.NewPages(),
	}

	// Добавляем экраны, видимым остается только первый
	for i, p := range prims {
		tuiApp.Pages.AddPage(p.Name, p.Prim(tuiApp), true, i == 0)
	}

	// Ctrl+C завершает приложение на любом экране
	tuiApp.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			tuiApp.Stop()
			return nil
		}
		return event
	})

	tuiApp.App.SetRoot(tuiApp.Pages, true)

	return tuiApp
}

// Run запускает приложение.
func (a *App) Run() error {
	return a.App.Run()
}

// Stop останавливает приложение.
func (a *App) Stop() {
	a.App.Stop()
}
