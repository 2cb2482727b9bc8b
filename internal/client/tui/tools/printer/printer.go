package printer

import (
	"github.com/abezemskiy/passentry/internal/client/tui"
	"github.com/abezemskiy/passentry/internal/client/tui/app"

	"github.com/rivo/tview"
)

// Error - функция для вывода ошибок на экран пользователя.
func Error(app *app.App, message string) {
	modal := tview.NewModal().
		SetText("Error: " + message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			app.Pages.RemovePage(tui.Error)
		})
	app.Pages.AddPage(tui.Error, modal, true, true)
}

// Message - функция для вывода сообщения на экран пользователя.
// Заголовок title выводится над текстом сообщения.
func Message(app *app.App, title, message string) {
	modal := tview.NewModal().
		SetText(title + "\n\n" + message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			app.Pages.RemovePage(tui.Message)
		})
	app.Pages.AddPage(tui.Message, modal, true, true)
}
