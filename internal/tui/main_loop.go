package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/readreview/book-stack/internal/service"
	"github.com/readreview/book-stack/models"
)

type loopStage int

const (
	stageList loopStage = iota
	stageDetail
	stageBookForm
	stageReviewForm
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmBook
	confirmReview
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.User

	stage loopStage

	books   []models.Book
	idx     int
	loading bool
	status  string
	errMsg  string

	searching   bool
	searchInput textinput.Model
	search      string

	detailBook models.Book
	reviews    []models.Review
	reviewIdx  int

	formInputs  []textinput.Model
	formDesc    textarea.Model
	formFocus   int
	formEditing bool
	formBookID  int64
	formErr     string
	formSaving  bool

	reviewArea     textarea.Model
	reviewEditing  bool
	reviewTargetID int64
	reviewErr      string
	reviewSaving   bool

	confirm      confirmKind
	confirmID    int64
	confirmLabel string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.User) mainLoopModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "title or author"
	searchInput.CharLimit = 100
	searchInput.Width = 40

	return mainLoopModel{
		ctx:         ctx,
		services:    services,
		user:        user,
		loading:     true,
		searchInput: searchInput,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadBooks()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case booksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.books = msg.books
		if m.idx >= len(m.books) {
			m.idx = len(m.books) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case bookDetailLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			m.stage = stageList
			return m, nil
		}
		m.errMsg = ""
		m.detailBook = msg.book
		m.reviews = msg.reviews
		m.reviewIdx = 0
		m.stage = stageDetail
		return m, nil

	case bookSavedMsg:
		m.formSaving = false
		if msg.err != nil {
			m.formErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		if m.formEditing {
			m.status = "Book updated"
		} else {
			m.status = "Book added"
		}
		m.errMsg = ""
		m.stage = stageList
		m.loading = true
		return m, m.cmdLoadBooks()

	case bookDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Book deleted"
		m.errMsg = ""
		m.stage = stageList
		m.loading = true
		return m, m.cmdLoadBooks()

	case reviewSavedMsg:
		m.reviewSaving = false
		if msg.err != nil {
			m.reviewErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		if m.reviewEditing {
			m.status = "Review updated"
		} else {
			m.status = "Review added"
		}
		m.stage = stageDetail
		m.loading = true
		return m, m.cmdLoadDetail(m.detailBook.ID)

	case reviewDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Review deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadDetail(m.detailBook.ID)

	case statsLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("You own %d books and wrote %d reviews", msg.stats.BookCount, msg.stats.ReviewCount)
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m.forwardToActiveWidget(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirm != confirmNone {
		return m.updateConfirm(keyMsg)
	}

	switch m.stage {
	case stageBookForm:
		return m.updateBookForm(keyMsg)
	case stageReviewForm:
		return m.updateReviewForm(keyMsg)
	case stageDetail:
		return m.updateDetail(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m mainLoopModel) forwardToActiveWidget(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.stage {
	case stageBookForm:
		if m.formFocus < len(m.formInputs) {
			m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
		} else {
			m.formDesc, cmd = m.formDesc.Update(msg)
		}
	case stageReviewForm:
		m.reviewArea, cmd = m.reviewArea.Update(msg)
	default:
		if m.searching {
			m.searchInput, cmd = m.searchInput.Update(msg)
		}
	}

	return m, cmd
}

// ── Confirm ─────────────────────────────────────────────────────────────────

func (m *mainLoopModel) askConfirm(kind confirmKind, id int64, label string) {
	m.confirm = kind
	m.confirmID = id
	m.confirmLabel = label
	m.status = ""
	m.errMsg = ""
}

func (m mainLoopModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y":
		kind, id := m.confirm, m.confirmID
		m.confirm = confirmNone
		m.confirmID = 0
		m.confirmLabel = ""
		if kind == confirmBook {
			return m, m.cmdDeleteBook(id)
		}
		return m, m.cmdDeleteReview(id)
	case "n", "esc":
		m.confirm = confirmNone
		m.confirmID = 0
		m.confirmLabel = ""
		m.status = "Cancelled"
	}
	return m, nil
}

func (m mainLoopModel) confirmPrompt() string {
	return errorStyle.Render(fmt.Sprintf("Delete %q? (y/n)", m.confirmLabel))
}

// ── List ────────────────────────────────────────────────────────────────────

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch keyMsg.String() {
		case "esc":
			m.searching = false
			m.searchInput.SetValue("")
			if m.search != "" {
				m.search = ""
				m.loading = true
				return m, m.cmdLoadBooks()
			}
			return m, nil
		case "enter":
			m.searching = false
			m.search = strings.TrimSpace(m.searchInput.Value())
			m.loading = true
			return m, m.cmdLoadBooks()
		}

		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(keyMsg)
		return m, cmd
	}

	switch {
	case keyMsg.String() == "q":
		return m, tea.Quit

	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}

	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.books)-1 {
			m.idx++
		}

	case key.Matches(keyMsg, keys.search):
		m.searching = true
		m.searchInput.SetValue(m.search)
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(keyMsg, keys.enter):
		book, ok := m.current()
		if !ok {
			m.status = "No books yet"
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoadDetail(book.ID)

	case key.Matches(keyMsg, keys.add):
		m.startBookForm(models.Book{}, false)
		return m, textinput.Blink

	case key.Matches(keyMsg, keys.edit):
		book, ok := m.current()
		if !ok {
			m.status = "No books yet"
			return m, nil
		}
		if book.OwnerUserID != m.user.UserID {
			m.status = "Only the owner can edit a book"
			return m, nil
		}
		m.startBookForm(book, true)
		return m, textinput.Blink

	case key.Matches(keyMsg, keys.del):
		book, ok := m.current()
		if !ok {
			m.status = "No books yet"
			return m, nil
		}
		if book.OwnerUserID != m.user.UserID {
			m.status = "Only the owner can delete a book"
			return m, nil
		}
		m.askConfirm(confirmBook, book.ID, book.Title)
		return m, nil

	case key.Matches(keyMsg, keys.stats):
		return m, m.cmdLoadStats()

	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

// ── Detail ──────────────────────────────────────────────────────────────────

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.stage = stageList
		m.loading = true
		return m, m.cmdLoadBooks()

	case key.Matches(keyMsg, keys.up):
		if m.reviewIdx > 0 {
			m.reviewIdx--
		}

	case key.Matches(keyMsg, keys.down):
		if m.reviewIdx < len(m.reviews)-1 {
			m.reviewIdx++
		}

	case key.Matches(keyMsg, keys.copy):
		text := m.detailBook.Title + " by " + m.detailBook.Author
		if err := clipboard.WriteAll(text); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied"

	case key.Matches(keyMsg, keys.edit):
		if m.detailBook.OwnerUserID != m.user.UserID {
			m.status = "Only the owner can edit a book"
			return m, nil
		}
		m.startBookForm(m.detailBook, true)
		return m, textinput.Blink

	case key.Matches(keyMsg, keys.del):
		if m.detailBook.OwnerUserID != m.user.UserID {
			m.status = "Only the owner can delete a book"
			return m, nil
		}
		m.askConfirm(confirmBook, m.detailBook.ID, m.detailBook.Title)
		return m, nil

	case key.Matches(keyMsg, keys.review):
		m.startReviewForm(models.Review{}, false)
		return m, textarea.Blink

	case keyMsg.String() == "ctrl+e":
		review, ok := m.currentReview()
		if !ok {
			m.status = "No reviews yet"
			return m, nil
		}
		if review.AuthorUserID != m.user.UserID {
			m.status = "Only the author can edit a review"
			return m, nil
		}
		m.startReviewForm(review, true)
		return m, textarea.Blink

	case keyMsg.String() == "ctrl+x":
		review, ok := m.currentReview()
		if !ok {
			m.status = "No reviews yet"
			return m, nil
		}
		if review.AuthorUserID != m.user.UserID {
			m.status = "Only the author can delete a review"
			return m, nil
		}
		m.askConfirm(confirmReview, review.ID, fitText(review.Body, 30))
		return m, nil
	}

	return m, nil
}

// ── Book form ───────────────────────────────────────────────────────────────

func (m *mainLoopModel) startBookForm(book models.Book, editing bool) {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = 40
	title.SetValue(book.Title)
	title.Focus()

	author := textinput.New()
	author.Placeholder = "author"
	author.CharLimit = 200
	author.Width = 40
	author.SetValue(book.Author)

	desc := textarea.New()
	desc.Placeholder = "description (optional)"
	desc.SetWidth(54)
	desc.SetHeight(5)
	desc.SetValue(book.Description)

	m.formInputs = []textinput.Model{title, author}
	m.formDesc = desc
	m.formFocus = 0
	m.formEditing = editing
	m.formBookID = book.ID
	m.formErr = ""
	m.formSaving = false
	m.stage = stageBookForm
}

func (m mainLoopModel) updateBookForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.stage = m.returnStage()
		return m, nil
	case "tab":
		m.formFocusNext()
		return m, nil
	case "shift+tab":
		m.formFocusPrev()
		return m, nil
	case "ctrl+s":
		if m.formSaving {
			return m, nil
		}

		input := models.BookInput{
			Title:       strings.TrimSpace(m.formInputs[0].Value()),
			Author:      strings.TrimSpace(m.formInputs[1].Value()),
			Description: strings.TrimSpace(m.formDesc.Value()),
		}
		if input.Title == "" || input.Author == "" || input.Description == "" {
			m.formErr = "Title, author and description are required"
			return m, nil
		}

		m.formErr = ""
		m.formSaving = true
		return m, m.cmdSaveBook(input)
	}

	var cmd tea.Cmd
	if m.formFocus < len(m.formInputs) {
		m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(keyMsg)
	} else {
		m.formDesc, cmd = m.formDesc.Update(keyMsg)
	}
	return m, cmd
}

func (m *mainLoopModel) formFocusNext() {
	m.blurFormField()
	m.formFocus = (m.formFocus + 1) % (len(m.formInputs) + 1)
	m.focusFormField()
}

func (m *mainLoopModel) formFocusPrev() {
	m.blurFormField()
	m.formFocus = (m.formFocus - 1 + len(m.formInputs) + 1) % (len(m.formInputs) + 1)
	m.focusFormField()
}

func (m *mainLoopModel) blurFormField() {
	if m.formFocus < len(m.formInputs) {
		m.formInputs[m.formFocus].Blur()
	} else {
		m.formDesc.Blur()
	}
}

func (m *mainLoopModel) focusFormField() {
	if m.formFocus < len(m.formInputs) {
		m.formInputs[m.formFocus].Focus()
	} else {
		m.formDesc.Focus()
	}
}

// ── Review form ─────────────────────────────────────────────────────────────

func (m *mainLoopModel) startReviewForm(review models.Review, editing bool) {
	area := textarea.New()
	area.Placeholder = "What did you think of this book?"
	area.SetWidth(54)
	area.SetHeight(6)
	area.SetValue(review.Body)
	area.Focus()

	m.reviewArea = area
	m.reviewEditing = editing
	m.reviewTargetID = review.ID
	m.reviewErr = ""
	m.reviewSaving = false
	m.stage = stageReviewForm
}

func (m mainLoopModel) updateReviewForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.stage = stageDetail
		return m, nil
	case "ctrl+s":
		if m.reviewSaving {
			return m, nil
		}

		body := strings.TrimSpace(m.reviewArea.Value())
		if body == "" {
			m.reviewErr = "A review needs a body"
			return m, nil
		}

		m.reviewErr = ""
		m.reviewSaving = true
		return m, m.cmdSaveReview(body)
	}

	var cmd tea.Cmd
	m.reviewArea, cmd = m.reviewArea.Update(keyMsg)
	return m, cmd
}

// ── Commands ────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadBooks() tea.Cmd {
	ctx := m.ctx
	catalog := m.services.CatalogService
	search := m.search

	return func() tea.Msg {
		books, err := catalog.ListBooks(ctx, search)
		return booksLoadedMsg{books: books, err: err}
	}
}

func (m mainLoopModel) cmdLoadDetail(bookID int64) tea.Cmd {
	ctx := m.ctx
	catalog := m.services.CatalogService

	return func() tea.Msg {
		book, err := catalog.GetBook(ctx, bookID)
		if err != nil {
			return bookDetailLoadedMsg{err: err}
		}

		reviews, err := catalog.ListReviews(ctx, bookID)
		if err != nil {
			return bookDetailLoadedMsg{err: err}
		}

		return bookDetailLoadedMsg{book: book, reviews: reviews}
	}
}

func (m mainLoopModel) cmdSaveBook(input models.BookInput) tea.Cmd {
	ctx := m.ctx
	catalog := m.services.CatalogService
	editing := m.formEditing
	bookID := m.formBookID

	return func() tea.Msg {
		if editing {
			book, err := catalog.UpdateBook(ctx, bookID, input)
			return bookSavedMsg{book: book, err: err}
		}

		book, err := catalog.CreateBook(ctx, input)
		return bookSavedMsg{book: book, err: err}
	}
}

func (m mainLoopModel) cmdDeleteBook(bookID int64) tea.Cmd {
	ctx := m.ctx
	catalog := m.services.CatalogService

	return func() tea.Msg {
		return bookDeletedMsg{err: catalog.DeleteBook(ctx, bookID)}
	}
}

func (m mainLoopModel) cmdSaveReview(body string) tea.Cmd {
	ctx := m.ctx
	catalog := m.services.CatalogService
	editing := m.reviewEditing
	reviewID := m.reviewTargetID
	bookID := m.detailBook.ID

	return func() tea.Msg {
		if editing {
			_, err := catalog.UpdateReview(ctx, reviewID, models.ReviewInput{Body: body})
			return reviewSavedMsg{err: err}
		}

		_, err := catalog.CreateReview(ctx, bookID, models.ReviewInput{Body: body})
		return reviewSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteReview(reviewID int64) tea.Cmd {
	ctx := m.ctx
	catalog := m.services.CatalogService

	return func() tea.Msg {
		return reviewDeletedMsg{err: catalog.DeleteReview(ctx, reviewID)}
	}
}

func (m mainLoopModel) cmdLoadStats() tea.Cmd {
	ctx := m.ctx
	catalog := m.services.CatalogService

	return func() tea.Msg {
		stats, err := catalog.Stats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

// ── Views ───────────────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	switch m.stage {
	case stageBookForm:
		return m.viewBookForm()
	case stageReviewForm:
		return m.viewReviewForm()
	case stageDetail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) viewList() string {
	out := ""

	if m.loading {
		out += "Loading catalogue...\n"
		return renderPage("CATALOGUE", strings.TrimRight(out, "\n"), m.listHotKeys())
	}

	if m.confirm != confirmNone {
		out += m.confirmPrompt() + "\n"
	}
	if m.errMsg != "" {
		out += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += okStyle.Render(m.status) + "\n"
	}

	if m.searching {
		out += "Search    │ [" + m.searchInput.View() + "]\n\n"
	} else if m.search != "" {
		out += "Search    │ " + m.search + "  (press / to change, esc to clear)\n\n"
	}

	if len(m.books) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "No books in the catalogue\n"
	} else {
		if out != "" && !strings.HasSuffix(out, "\n\n") {
			out += "\n"
		}
		out += "ID   │ Title                    │ Author               │ Reviews\n"
		out += "─────┼──────────────────────────┼──────────────────────┼────────\n"
		for i, book := range m.books {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			out += fmt.Sprintf(
				"%s %-3d│ %-24s │ %-20s │ %d\n",
				cursor,
				book.ID,
				fitText(book.Title, 24),
				fitText(book.Author, 20),
				book.ReviewCount,
			)
		}
	}

	return renderPage("CATALOGUE", strings.TrimRight(out, "\n"), m.listHotKeys())
}

func (m mainLoopModel) listHotKeys() string {
	if m.searching {
		return "enter: search │ esc: cancel"
	}
	return "a: add │ e: edit │ ctrl+d: delete │ /: search │ t: my stats │ l: logout │ enter: open"
}

func (m mainLoopModel) viewDetail() string {
	book := m.detailBook

	out := "Title       │ " + book.Title + "\n"
	out += "Author      │ " + book.Author + "\n"
	out += "Description │ " + valueOrDash(book.Description) + "\n"
	out += fmt.Sprintf("Added       │ %s\n", book.CreatedAt.Format("2006-01-02"))

	if m.confirm != confirmNone {
		out += "\n" + m.confirmPrompt() + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += "\n" + okStyle.Render(m.status) + "\n"
	}

	out += "\n"
	if len(m.reviews) == 0 {
		out += "No reviews yet\n"
	} else {
		out += fmt.Sprintf("Reviews (%d):\n", len(m.reviews))
		for i, review := range m.reviews {
			cursor := " "
			if i == m.reviewIdx {
				cursor = ">"
			}
			out += fmt.Sprintf("%s %s │ %s\n", cursor, review.CreatedAt.Format("2006-01-02"), fitText(review.Body, 60))
		}
	}

	return renderPage(
		"BOOK: "+fitText(book.Title, 40),
		strings.TrimRight(out, "\n"),
		"r: review │ e: edit │ ctrl+d: delete │ ctrl+e: edit review │ ctrl+x: delete review │ c: copy │ esc: back",
	)
}

func (m mainLoopModel) viewBookForm() string {
	out := "Field       │ Value\n"
	out += "────────────┼────────────────────────────────────────────\n"
	out += "Title       │ [" + m.formInputs[0].View() + "]\n"
	out += "Author      │ [" + m.formInputs[1].View() + "]\n"
	out += "Description :\n"
	out += m.formDesc.View() + "\n"

	if m.formSaving {
		out += "\n[Saving...]\n"
	}
	if m.formErr != "" {
		out += "\n" + errorStyle.Render("Error: "+m.formErr) + "\n"
	}

	title := "NEW BOOK"
	if m.formEditing {
		title = "EDIT BOOK"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "tab: next field │ ctrl+s: save │ esc: cancel")
}

func (m mainLoopModel) viewReviewForm() string {
	out := "Book: " + m.detailBook.Title + "\n\n"
	out += m.reviewArea.View() + "\n"

	if m.reviewSaving {
		out += "\n[Saving...]\n"
	}
	if m.reviewErr != "" {
		out += "\n" + errorStyle.Render("Error: "+m.reviewErr) + "\n"
	}

	title := "NEW REVIEW"
	if m.reviewEditing {
		title = "EDIT REVIEW"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "ctrl+s: save │ esc: cancel")
}

func (m mainLoopModel) current() (models.Book, bool) {
	if m.idx < 0 || m.idx >= len(m.books) {
		return models.Book{}, false
	}
	return m.books[m.idx], true
}

func (m mainLoopModel) currentReview() (models.Review, bool) {
	if m.reviewIdx < 0 || m.reviewIdx >= len(m.reviews) {
		return models.Review{}, false
	}
	return m.reviews[m.reviewIdx], true
}

// returnStage decides where a cancelled book form goes back to.
func (m mainLoopModel) returnStage() loopStage {
	if m.formEditing && m.detailBook.ID == m.formBookID && m.formBookID != 0 {
		return stageDetail
	}
	return stageList
}
