package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/christmas-gifter/internal/service"
	"github.com/MKhiriev/christmas-gifter/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputKind int

const (
	inputNone inputKind = iota
	inputAddPerson
	inputAddGift
	inputEditGift
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	people  []models.Person
	idx     int
	loading bool
	status  string
	errMsg  string

	detail  bool
	giftIdx int

	reordering bool
	reordered  []models.Person

	inputKind  inputKind
	input      textinput.Model
	editGiftID int64
	saving     bool

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadPeople()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case peopleLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.people = msg.people
		if m.idx >= len(m.people) {
			m.idx = len(m.people) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		m.clampGiftIdx()
		return m, nil
	case personSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.closeInput()
		m.status = "Получатель добавлен"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadPeople()
	case giftSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.closeInput()
		m.status = "Подарок сохранён"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadPeople()
	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка удаления: %v", msg.err)
			return m, nil
		}
		m.status = "Запись удалена"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadPeople()
	case reorderDoneMsg:
		if msg.err != nil {
			m.reordering = false
			m.reordered = nil
			m.errMsg = fmt.Sprintf("Ошибка изменения порядка: %v", msg.err)
			m.loading = true
			return m, m.cmdLoadPeople()
		}
		m.reordering = false
		m.reordered = nil
		m.status = "Порядок сохранён"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadPeople()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.inputKind != inputNone {
			return m.updateInput(msg)
		}
		return m, nil
	}

	if m.inputKind != inputNone {
		return m.updateInput(msg)
	}

	if key.Matches(keyMsg, keys.quit) {
		return m, tea.Quit
	}

	if m.reordering {
		return m.updateReorder(keyMsg)
	}

	if m.detail {
		return m.updateDetail(keyMsg)
	}

	return m.updateList(keyMsg)
}

// ── list screen ──────────────────────────────────────────────────────────────

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.people)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.currentPerson(); !ok {
			m.status = "Список пуст"
			return m, nil
		}
		m.giftIdx = 0
		m.detail = true
	case key.Matches(keyMsg, keys.addPerson):
		m.openInput(inputAddPerson, "Имя получателя", "")
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.reorder):
		if len(m.people) < 2 {
			m.status = "Нечего переставлять"
			return m, nil
		}
		m.reordering = true
		m.reordered = append([]models.Person(nil), m.people...)
		m.status = ""
		m.errMsg = ""
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		m.status = ""
		m.errMsg = ""
		return m, m.cmdLoadPeople()
	case key.Matches(keyMsg, keys.copyList):
		person, ok := m.currentPerson()
		if !ok {
			m.status = "Список пуст"
			return m, nil
		}
		if err := clipboard.WriteAll(giftListText(person)); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Список подарков скопирован"
	case key.Matches(keyMsg, keys.delete):
		person, ok := m.currentPerson()
		if !ok {
			m.status = "Список пуст"
			return m, nil
		}
		return m, m.cmdDeletePerson(person.PersonID)
	case key.Matches(keyMsg, keys.logout):
		clearSession()
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

// ── reorder mode ─────────────────────────────────────────────────────────────

func (m mainLoopModel) updateReorder(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.reordering = false
		m.reordered = nil
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.reordered[m.idx-1], m.reordered[m.idx] = m.reordered[m.idx], m.reordered[m.idx-1]
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.reordered)-1 {
			m.reordered[m.idx], m.reordered[m.idx+1] = m.reordered[m.idx+1], m.reordered[m.idx]
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		ids := make([]int64, 0, len(m.reordered))
		for _, person := range m.reordered {
			ids = append(ids, person.PersonID)
		}
		m.status = "Сохранение порядка..."
		return m, m.cmdReorderPeople(ids)
	}

	return m, nil
}

// ── person detail ────────────────────────────────────────────────────────────

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	person, ok := m.currentPerson()
	if !ok {
		m.detail = false
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail = false
		m.giftIdx = 0
	case key.Matches(keyMsg, keys.up):
		if m.giftIdx > 0 {
			m.giftIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.giftIdx < len(person.Gifts)-1 {
			m.giftIdx++
		}
	case key.Matches(keyMsg, keys.newGift):
		m.openInput(inputAddGift, "Идея подарка", "")
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.edit):
		gift, ok := m.currentGift()
		if !ok {
			m.status = "Подарков нет"
			return m, nil
		}
		m.editGiftID = gift.GiftID
		m.openInput(inputEditGift, "Идея подарка", gift.Description)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.purchased):
		gift, ok := m.currentGift()
		if !ok {
			m.status = "Подарков нет"
			return m, nil
		}
		return m, m.cmdSetPurchased(gift.GiftID, !gift.Purchased)
	case key.Matches(keyMsg, keys.wrapped):
		gift, ok := m.currentGift()
		if !ok {
			m.status = "Подарков нет"
			return m, nil
		}
		return m, m.cmdSetWrapped(gift.GiftID, !gift.GiftWrapped)
	case key.Matches(keyMsg, keys.delete):
		gift, ok := m.currentGift()
		if !ok {
			m.status = "Подарков нет"
			return m, nil
		}
		return m, m.cmdDeleteGift(gift.GiftID)
	case key.Matches(keyMsg, keys.copyList):
		if err := clipboard.WriteAll(giftListText(person)); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Список подарков скопирован"
	}

	return m, nil
}

// ── single-field input (add person / add gift / edit gift) ───────────────────

func (m *mainLoopModel) openInput(kind inputKind, placeholder, value string) {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 200
	input.Width = 40
	input.SetValue(value)
	input.Focus()

	m.inputKind = kind
	m.input = input
	m.saving = false
	m.status = ""
	m.errMsg = ""
}

func (m *mainLoopModel) closeInput() {
	m.inputKind = inputNone
	m.saving = false
	m.editGiftID = 0
}

func (m mainLoopModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.closeInput()
			m.errMsg = ""
			return m, nil
		case "enter":
			if m.saving {
				return m, nil
			}

			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.errMsg = "Поле не может быть пустым"
				return m, nil
			}

			m.errMsg = ""
			m.saving = true

			switch m.inputKind {
			case inputAddPerson:
				return m, m.cmdAppendPerson(value)
			case inputAddGift:
				person, ok := m.currentPerson()
				if !ok {
					m.closeInput()
					return m, nil
				}
				return m, m.cmdCreateGift(person.PersonID, value)
			case inputEditGift:
				person, ok := m.currentPerson()
				if !ok {
					m.closeInput()
					return m, nil
				}
				return m, m.cmdUpdateGiftDescription(person.PersonID, m.editGiftID, value)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ── async commands ───────────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadPeople() tea.Cmd {
	ctx := m.ctx
	gifter := m.services.GifterService

	return func() tea.Msg {
		people, err := gifter.GetPeople(ctx)
		return peopleLoadedMsg{people: people, err: err}
	}
}

func (m mainLoopModel) cmdAppendPerson(name string) tea.Cmd {
	ctx := m.ctx
	gifter := m.services.GifterService

	return func() tea.Msg {
		_, err := gifter.AppendPerson(ctx, name)
		return personSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeletePerson(personID int64) tea.Cmd {
	ctx := m.ctx
	gifter := m.services.GifterService

	return func() tea.Msg {
		err := gifter.DeletePerson(ctx, personID)
		return deleteDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdReorderPeople(personIDs []int64) tea.Cmd {
	ctx := m.ctx
	gifter := m.services.GifterService

	return func() tea.Msg {
		err := gifter.ReorderPeople(ctx, personIDs)
		return reorderDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdCreateGift(personID int64, description string) tea.Cmd {
	ctx := m.ctx
	gifter := m.services.GifterService

	return func() tea.Msg {
		_, err := gifter.CreateGift(ctx, personID, description)
		return giftSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdUpdateGiftDescription(personID int64, giftID int64, description string) tea.Cmd {
	ctx := m.ctx
	gifter := m.services.GifterService

	return func() tea.Msg {
		_, err := gifter.UpdateGiftDescription(ctx, personID, giftID, description)
		return giftSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdSetPurchased(giftID int64, purchased bool) tea.Cmd {
	ctx := m.ctx
	gifter := m.services.GifterService

	return func() tea.Msg {
		_, err := gifter.SetPurchased(ctx, giftID, purchased)
		return giftSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdSetWrapped(giftID int64, wrapped bool) tea.Cmd {
	ctx := m.ctx
	gifter := m.services.GifterService

	return func() tea.Msg {
		_, err := gifter.SetGiftWrapped(ctx, giftID, wrapped)
		return giftSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteGift(giftID int64) tea.Cmd {
	ctx := m.ctx
	gifter := m.services.GifterService

	return func() tea.Msg {
		err := gifter.DeleteGift(ctx, giftID)
		return deleteDoneMsg{err: err}
	}
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	if m.inputKind != inputNone {
		return m.viewInput()
	}
	if m.reordering {
		return m.viewReorder()
	}
	if m.detail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	out := ""

	if username := getSessionUsername(); username != "" {
		out += "Пользователь: " + username + "\n\n"
	}

	if m.loading {
		out += "Загрузка списка...\n"
		return renderPage("ПОЛУЧАТЕЛИ ПОДАРКОВ", strings.TrimRight(out, "\n"), listHotKeys)
	}

	if m.errMsg != "" {
		out += errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}

	if len(m.people) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "Получателей нет. Нажмите a, чтобы добавить.\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += " №  │ Получатель               │ Подарков │ Куплено │ Упаковано\n"
		out += "────┼──────────────────────────┼──────────┼─────────┼──────────\n"
		for i, person := range m.people {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			purchased, wrapped := giftCounters(person.Gifts)
			out += fmt.Sprintf(
				"%s %-2d│ %-24s │ %-8d │ %-7d │ %d\n",
				cursor,
				i+1,
				fitText(person.Name, 24),
				len(person.Gifts),
				purchased,
				wrapped,
			)
		}
	}

	return renderPage("ПОЛУЧАТЕЛИ ПОДАРКОВ", strings.TrimRight(out, "\n"), listHotKeys)
}

const listHotKeys = "enter: открыть │ a: добавить │ r: порядок │ c: копир. │ s: обновить │ ctrl+d: уд. │ l: выйти из акк."

func (m mainLoopModel) viewReorder() string {
	out := "Переставьте получателей и нажмите enter:\n\n"
	for i, person := range m.reordered {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		out += fmt.Sprintf("%s %-2d %s\n", cursor, i+1, fitText(person.Name, 40))
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	return renderPage("ПОРЯДОК ПОЛУЧАТЕЛЕЙ", strings.TrimRight(out, "\n"), "↑/↓: переместить │ enter: сохранить │ esc: отмена")
}

func (m mainLoopModel) viewDetail() string {
	person, ok := m.currentPerson()
	if !ok {
		return renderPage("ПОЛУЧАТЕЛЬ", "Запись не найдена", "esc: назад")
	}

	var b strings.Builder
	b.WriteString("Получатель: " + person.Name + "\n\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("Статус: " + m.status + "\n")
	}
	if m.errMsg != "" || m.status != "" {
		b.WriteString("\n")
	}

	if len(person.Gifts) == 0 {
		b.WriteString("Подарков пока нет. Нажмите n, чтобы добавить идею.\n")
	} else {
		b.WriteString(" №  │ Куплен │ Упакован │ Подарок\n")
		b.WriteString("────┼────────┼──────────┼─────────────────────────────\n")
		for i, gift := range person.Gifts {
			cursor := " "
			if i == m.giftIdx {
				cursor = ">"
			}

			description := fitText(gift.Description, 28)
			if gift.Purchased && gift.GiftWrapped {
				description = doneStyle.Render(description)
			}

			b.WriteString(fmt.Sprintf(
				"%s %-2d│   %s    │    %s     │ %s\n",
				cursor,
				i+1,
				checkbox(gift.Purchased),
				checkbox(gift.GiftWrapped),
				description,
			))
		}
	}

	return renderPage(
		"ПОДАРКИ: "+fitText(person.Name, 30),
		strings.TrimRight(b.String(), "\n"),
		"n: новая идея │ e: изменить │ p: куплен │ w: упакован │ c: копир. │ ctrl+d: уд. │ esc: назад",
	)
}

func (m mainLoopModel) viewInput() string {
	var title, prompt string
	switch m.inputKind {
	case inputAddPerson:
		title = "НОВЫЙ ПОЛУЧАТЕЛЬ"
		prompt = "Имя       │ ["
	case inputAddGift:
		title = "НОВАЯ ИДЕЯ ПОДАРКА"
		prompt = "Подарок   │ ["
	case inputEditGift:
		title = "ИЗМЕНЕНИЕ ПОДАРКА"
		prompt = "Подарок   │ ["
	}

	out := prompt + m.input.View() + "]\n"
	if m.saving {
		out += "\nСохранение...\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "enter: сохранить │ esc: отмена")
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (m mainLoopModel) currentPerson() (models.Person, bool) {
	if len(m.people) == 0 || m.idx < 0 || m.idx >= len(m.people) {
		return models.Person{}, false
	}
	return m.people[m.idx], true
}

func (m mainLoopModel) currentGift() (models.Gift, bool) {
	person, ok := m.currentPerson()
	if !ok {
		return models.Gift{}, false
	}
	if len(person.Gifts) == 0 || m.giftIdx < 0 || m.giftIdx >= len(person.Gifts) {
		return models.Gift{}, false
	}
	return person.Gifts[m.giftIdx], true
}

func (m *mainLoopModel) clampGiftIdx() {
	person, ok := m.currentPerson()
	if !ok {
		m.giftIdx = 0
		return
	}
	if m.giftIdx >= len(person.Gifts) {
		m.giftIdx = len(person.Gifts) - 1
	}
	if m.giftIdx < 0 {
		m.giftIdx = 0
	}
}

func checkbox(checked bool) string {
	if checked {
		return "✓"
	}
	return " "
}

func giftCounters(gifts []models.Gift) (purchased, wrapped int) {
	for _, gift := range gifts {
		if gift.Purchased {
			purchased++
		}
		if gift.GiftWrapped {
			wrapped++
		}
	}
	return purchased, wrapped
}

// giftListText builds the plain-text gift list placed in the clipboard.
func giftListText(person models.Person) string {
	var b strings.Builder
	b.WriteString("Подарки для " + person.Name + ":\n")

	if len(person.Gifts) == 0 {
		b.WriteString("  (пусто)\n")
		return b.String()
	}

	for _, gift := range person.Gifts {
		mark := "[ ]"
		if gift.Purchased {
			mark = "[x]"
		}

		b.WriteString("  " + mark + " " + gift.Description)

		var notes []string
		if gift.Purchased {
			notes = append(notes, "куплен")
		}
		if gift.GiftWrapped {
			notes = append(notes, "упакован")
		}
		if len(notes) > 0 {
			b.WriteString(" (" + strings.Join(notes, ", ") + ")")
		}
		b.WriteString("\n")
	}

	return b.String()
}
