package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"vedic-admin/model"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(Options{BaseURL: srv.URL + "/api/", RetryCount: 2})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c
}

func TestListBooksUnwrapsEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/Books" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		io.WriteString(w, `{"data":[{"id":1,"title":"Charaka Samhita","totalChapters":3}]}`)
	})

	books, err := c.ListBooks(context.Background())
	if err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	if len(books) != 1 || books[0].Title != "Charaka Samhita" || books[0].TotalChapters != 3 {
		t.Fatalf("unexpected books: %+v", books)
	}
}

func TestListBooksBareArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":2,"title":"Sushruta Samhita"}]`)
	})

	books, err := c.ListBooks(context.Background())
	if err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	if len(books) != 1 || books[0].Id != 2 {
		t.Fatalf("unexpected books: %+v", books)
	}
}

func TestListEmptyReturnsEmptySlice(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":null}`)
	})

	papers, err := c.ListResearchPapers(context.Background())
	if err != nil {
		t.Fatalf("ListResearchPapers: %v", err)
	}
	if papers == nil || len(papers) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", papers)
	}
}

func TestErrorMessageFromBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"message":"ISBN already exists"}`)
	})

	_, err := c.CreateBook(context.Background(), model.BookInput{Title: "x", Author: "y"})
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", apiErr.StatusCode)
	}
	if got := Message(err, "Failed to save book"); got != "ISBN already exists" {
		t.Fatalf("Message = %q", got)
	}
}

func TestErrorMessageFromStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetBook(context.Background(), 99)
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if got := Message(err, "fallback"); got != "Request failed with status code 404" {
		t.Fatalf("Message = %q", got)
	}
}

func TestCreateChapterSendsBookId(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/Chapters" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		io.WriteString(w, `{"data":{"id":10,"bookId":4,"chapterNumber":1,"chapterTitle":"Sutrasthana"}}`)
	})

	ch, err := c.CreateChapter(context.Background(), 4, model.ChapterInput{ChapterNumber: 1, ChapterTitle: "Sutrasthana"})
	if err != nil {
		t.Fatalf("CreateChapter: %v", err)
	}
	if ch.Id != 10 || ch.BookId != 4 {
		t.Fatalf("unexpected chapter: %+v", ch)
	}
	if body["bookId"] != float64(4) || body["chapterTitle"] != "Sutrasthana" {
		t.Fatalf("unexpected payload: %v", body)
	}
	if _, ok := body["textbookId"]; ok {
		t.Fatalf("payload should not carry textbookId: %v", body)
	}
}

func TestUpdateContactStatus(t *testing.T) {
	var body model.ContactStatusInput
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/ContactSubmissions/7" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.UpdateContactStatus(context.Background(), 7, model.ContactResolved); err != nil {
		t.Fatalf("UpdateContactStatus: %v", err)
	}
	if body.Status != model.ContactResolved {
		t.Fatalf("status = %q", body.Status)
	}
}

func TestUnsubscribePath(t *testing.T) {
	var hit atomic.Bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/NewsletterSubscriptions/3/unsubscribe" {
			hit.Store(true)
		}
		w.WriteHeader(http.StatusOK)
	})

	if err := c.UnsubscribeNewsletter(context.Background(), 3); err != nil {
		t.Fatalf("UnsubscribeNewsletter: %v", err)
	}
	if !hit.Load() {
		t.Fatal("unsubscribe endpoint was not called")
	}
}

func TestRetriesOnTooManyRequests(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		io.WriteString(w, `[]`)
	})

	if _, err := c.ListTheses(context.Background()); err != nil {
		t.Fatalf("ListTheses: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("calls = %d, want 2", calls.Load())
	}
}

func TestNoRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	if err := c.DeleteBook(context.Background(), 1); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Fatalf("calls = %d, want 1", calls.Load())
	}
}
