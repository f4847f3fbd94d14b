package console

import (
	"bytes"
	"fmt"
	"net/http"

	"vedic-admin/api"
	"vedic-admin/audit"
	"vedic-admin/epub"
	"vedic-admin/form"
	"vedic-admin/model"
	"vedic-admin/template"
)

func (s *Server) bookRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", s.handleBooks)
	mux.HandleFunc("GET /books/new", s.handleNewBook)
	mux.HandleFunc("POST /books", s.handleCreateBook)
	mux.HandleFunc("GET /books/{id}/edit", s.handleEditBook)
	mux.HandleFunc("POST /books/{id}", s.handleUpdateBook)
	mux.HandleFunc("GET /books/{id}/delete", s.handleConfirmDeleteBook)
	mux.HandleFunc("POST /books/{id}/delete", s.handleDeleteBook)
	mux.HandleFunc("GET /books/{id}/export.epub", s.handleExportBook)
}

func bookPanel(f *form.BookForm, errs form.Errors, id int64, apiErr string) *template.Form {
	return panel("Book", "/books", id, bookFields(f, errs), apiErr)
}

func (s *Server) handleBooks(w http.ResponseWriter, r *http.Request) {
	var open *template.Form
	if r.URL.Query().Get("action") == "new" {
		open = bookPanel(&form.BookForm{}, nil, 0, "")
	}
	s.showBooks(w, r, http.StatusOK, open)
}

func (s *Server) handleNewBook(w http.ResponseWriter, r *http.Request) {
	s.showBooks(w, r, http.StatusOK, bookPanel(&form.BookForm{}, nil, 0, ""))
}

func (s *Server) handleEditBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.notFound(w, r, s.page(w, r, "Books Management", "", "books"), "Book not found", "/books")
		return
	}
	book, err := s.api.GetBook(r.Context(), id)
	if err != nil {
		s.renderError(w, r, s.page(w, r, "Books Management", "", "books"), err, "Failed to load book", "/books")
		return
	}
	s.showBooks(w, r, http.StatusOK, bookPanel(form.BookFormFrom(book), nil, id, ""))
}

func (s *Server) showBooks(w http.ResponseWriter, r *http.Request, status int, open *template.Form) {
	p := s.page(w, r, "Books Management", "Manage all books in the system", "books")
	books, err := s.api.ListBooks(r.Context())
	if err != nil {
		s.renderError(w, r, p, err, "Failed to load books", "/")
		return
	}
	q := r.URL.Query().Get("q")
	books = model.Filter(books, q)

	rows := make([]template.Row, 0, len(books))
	for _, b := range books {
		base := fmt.Sprintf("/books/%d", b.Id)
		rows = append(rows, template.Row{
			Cells: []template.Cell{
				titleCell(b.Title, b.Description),
				{Text: b.Author},
				{Text: dash(b.Category)},
				{Text: dash(b.Language)},
				{Text: count(b.TotalChapters)},
			},
			Actions: []template.Action{
				{Label: "Chapters", Href: base + "/chapters", Title: "View Chapters"},
				{Label: "EPUB", Href: base + "/export.epub", Title: "Download as EPUB"},
				{Label: "Edit", Href: base + "/edit", Title: "Edit Book"},
				{Label: "Delete", Href: base + "/delete", Tone: "danger", Title: "Delete Book"},
			},
		})
	}

	add := template.Action{Label: "Add New Book", Href: "/books/new", Tone: "primary"}
	first := add
	first.Label = "Add First Book"
	s.render(w, r, status, template.ListView(template.ListPage{
		Page:          p,
		Heading:       fmt.Sprintf("All Books (%d)", len(books)),
		HeaderActions: []template.Action{add},
		Search: &template.Search{
			Action:      "/books",
			Placeholder: "Search by title, author, or category...",
			Query:       q,
		},
		Table: template.Table{
			Columns: []string{"Title", "Author", "Category", "Language", "Chapters", "Actions"},
			Rows:    rows,
		},
		Empty: emptyState(q, "books", "Start by adding your first book to the system.", &first),
		Form:  open,
	}))
}

func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	f := &form.BookForm{}
	if err := form.Bind(r, f); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errs := f.Validate(); errs.Any() {
		s.showBooks(w, r, http.StatusUnprocessableEntity, bookPanel(f, errs, 0, ""))
		return
	}
	book, err := s.api.CreateBook(r.Context(), f.Input())
	if err != nil {
		s.showBooks(w, r, http.StatusBadGateway, bookPanel(f, nil, 0, api.Message(err, "Failed to save book")))
		return
	}
	s.record(r, audit.ActionCreate, "book", book.Id, f.Title, "")
	s.redirect(w, r, "/books", success(`Book "%s" created successfully`, f.Title))
}

func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	f := &form.BookForm{}
	if err := form.Bind(r, f); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errs := f.Validate(); errs.Any() {
		s.showBooks(w, r, http.StatusUnprocessableEntity, bookPanel(f, errs, id, ""))
		return
	}
	if _, err := s.api.UpdateBook(r.Context(), id, f.Input()); err != nil {
		s.showBooks(w, r, http.StatusBadGateway, bookPanel(f, nil, id, api.Message(err, "Failed to save book")))
		return
	}
	s.record(r, audit.ActionUpdate, "book", id, f.Title, "")
	s.redirect(w, r, "/books", success(`Book "%s" updated successfully`, f.Title))
}

func (s *Server) handleConfirmDeleteBook(w http.ResponseWriter, r *http.Request) {
	p := s.page(w, r, "Delete Book", "", "books")
	id, ok := pathID(r, "id")
	if !ok {
		s.notFound(w, r, p, "Book not found", "/books")
		return
	}
	book, err := s.api.GetBook(r.Context(), id)
	if err != nil {
		s.renderError(w, r, p, err, "Failed to load book", "/books")
		return
	}
	s.render(w, r, http.StatusOK, template.ConfirmView(template.ConfirmPage{
		Page:    p,
		Message: confirmDelete(book.Title),
		Title:   book.Title,
		Action:  fmt.Sprintf("/books/%d/delete", id),
		Submit:  "Delete Book",
		Cancel:  "/books",
	}))
}

func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	title := postedTitle(r, id)
	if err := s.api.DeleteBook(r.Context(), id); err != nil {
		s.redirect(w, r, "/books", failure(err, "Failed to delete book"))
		return
	}
	s.record(r, audit.ActionDelete, "book", id, title, "")
	s.redirect(w, r, "/books", success(`Book "%s" deleted successfully`, title))
}

func (s *Server) handleExportBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	book, err := s.api.GetBookWithChapters(r.Context(), id)
	if err != nil {
		s.renderError(w, r, s.page(w, r, "Books Management", "", "books"), err, "Failed to load chapters", "/books")
		return
	}
	var buf bytes.Buffer
	if err := epub.PackBook(r.Context(), &buf, book); err != nil {
		s.renderError(w, r, s.page(w, r, "Books Management", "", "books"), err, "Failed to build EPUB", "/books")
		return
	}
	attachment(w, "application/epub+zip", epub.FileName(&book.Book))
	_, _ = w.Write(buf.Bytes())
}
