package view

import (
	"strings"

	"github.com/abezemskiy/passentry/internal/client/tui"
	"github.com/abezemskiy/passentry/internal/client/tui/app"
	"github.com/abezemskiy/passentry/internal/client/tui/tools/printer"
	"github.com/abezemskiy/passentry/internal/repositories/entry"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// absentValue - значение, которое выводится для отсутствующего поля.
const absentValue = "-"

// Page - страница отображения расшифрованной записи.
// Пароль в таблице скрыт, полное значение поля открывается по Enter. Esc или q завершают работу.
func Page(e entry.Entry) func(app *app.App) tview.Primitive {
	return func(app *app.App) tview.Primitive {
		table := tview.NewTable().
			SetBorders(true).
			SetSelectable(true, false).
			SetFixed(1, 0)
		fillTable(table, e)

		// цвет фона для выделенной строки
		table.SetSelectedStyle(tcell.StyleDefault.Background(tcell.ColorBlue))

		// Открытие полного значения поля
		table.SetSelectedFunc(func(row, _ int) {
			fields := entry.Fields()
			if row < 1 || row > len(fields) {
				return
			}
			field := fields[row-1]
			value, err := e.Field(field)
			if err != nil {
				printer.Error(app, err.Error())
				return
			}
			if value == nil {
				printer.Message(app, field, "field is absent")
				return
			}
			printer.Message(app, field, *value)
		})

		table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			switch {
			case event.Key() == tcell.KeyEsc, event.Key() == tcell.KeyRune && event.Rune() == 'q':
				app.Stop()
				return nil
			}
			return event
		})

		help := tview.NewTextView().
			SetText("Enter - show value, Esc/q - quit").
			SetTextColor(tcell.ColorGray)

		flex := tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(table, 0, 1, true).
			AddItem(help, 1, 0, false)
		flex.SetBorder(true).SetTitle(" " + e.Name + " ")

		return flex
	}
}

// fillTable - функция для заполнения таблицы полями записи.
func fillTable(table *tview.Table, e entry.Entry) {
	table.Clear()
	table.SetCell(0, 0, tview.NewTableCell("Field").SetSelectable(false).SetAlign(tview.AlignCenter).SetTextColor(tcell.ColorYellow))
	table.SetCell(0, 1, tview.NewTableCell("Value").SetSelectable(false).SetAlign(tview.AlignCenter).SetTextColor(tcell.ColorYellow))

	for i, field := range entry.Fields() {
		// ошибки быть не может, имена полей берутся из entry.Fields
		value, _ := e.Field(field)
		table.SetCell(i+1, 0, tview.NewTableCell(field))
		table.SetCell(i+1, 1, tview.NewTableCell(cellValue(field, value)).SetExpansion(1))
	}
}

// cellValue - функция для получения текста ячейки с значением поля.
// Пароль маскируется, у заметок выводится только первая строка.
func cellValue(field string, value *string) string {
	if value == nil {
		return absentValue
	}
	switch field {
	case entry.PASSWORD:
		return tui.PasswordMask
	case entry.NOTES:
		lines := strings.SplitN(*value, "\n", 2)
		if len(lines) > 1 && strings.TrimSpace(lines[1]) != "" {
			return lines[0] + " ..."
		}
		return lines[0]
	}
	return *value
}
