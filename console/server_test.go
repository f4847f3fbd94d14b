package console

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"vedic-admin/api"
)

// fakeAPI answers "METHOD /Path" keys with canned JSON and records every
// call it sees.
type fakeAPI struct {
	mu     sync.Mutex
	routes map[string]string
	calls  []string
	bodies map[string]string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api")
	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.bodies[key] = string(body)
	resp, ok := f.routes[key]
	f.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"message":"Not found"}`)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, resp)
}

func (f *fakeAPI) called(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == key {
			return true
		}
	}
	return false
}

func (f *fakeAPI) body(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies[key]
}

func newTestConsole(t *testing.T, routes map[string]string) (http.Handler, *fakeAPI) {
	t.Helper()
	s, fake := newTestServer(t, routes)
	return s.Handler(), fake
}

func newTestServer(t *testing.T, routes map[string]string) (*Server, *fakeAPI) {
	t.Helper()
	fake := &fakeAPI{routes: routes, bodies: map[string]string{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	client, err := api.New(api.Options{BaseURL: srv.URL + "/api", RetryCount: 0})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	s := New(client, nil, testFlashKey)
	s.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }
	s.loc = time.UTC
	return s, fake
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func post(t *testing.T, h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatalf("failed to parse page: %v", err)
	}
	return doc
}

func textOf(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

var testFlashKey = []byte("test-flash-key-0123456789abcdef!")

// flashOf decodes the flash cookie a response leaves behind. The last
// Set-Cookie for the session wins, as in a browser.
func flashOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var last *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashSession {
			last = c
		}
	}
	if last == nil || last.MaxAge < 0 {
		return ""
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(last)
	f := New(nil, nil, testFlashKey).popFlash(httptest.NewRecorder(), req)
	if f == nil {
		t.Fatalf("undecodable flash cookie %q", last.Value)
	}
	return f.Kind + ": " + f.Message
}

const booksJSON = `{"data":[
	{"id":1,"title":"Charaka Samhita","author":"Charaka","category":"Ayurveda","language":"Sanskrit","totalChapters":3},
	{"id":2,"title":"Yoga Sutras","author":"Patanjali","category":"Yoga","language":"Sanskrit","totalChapters":4}
]}`

func TestHealthz(t *testing.T) {
	h, _ := newTestConsole(t, nil)
	rec := get(t, h, "/healthz")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok\n" {
		t.Fatalf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestRequestIDHeader(t *testing.T) {
	h, _ := newTestConsole(t, nil)
	rec := get(t, h, "/healthz")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("request id = %q, want the inbound one", got)
	}
}

func TestFlashRoundTrip(t *testing.T) {
	s := New(nil, nil, testFlashKey)
	rec := httptest.NewRecorder()
	s.setFlash(rec, httptest.NewRequest(http.MethodPost, "/books", nil), success(`Book "%s" created successfully`, "Rig Veda | Mandala 1"))

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	out := httptest.NewRecorder()
	f := s.popFlash(out, req)
	if f == nil || f.Kind != "success" || f.Message != `Book "Rig Veda | Mandala 1" created successfully` {
		t.Fatalf("popFlash = %+v", f)
	}
	cleared := out.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("flash cookie not cleared: %+v", cleared)
	}
}

func TestFlashRejectsForgedCookie(t *testing.T) {
	s := New(nil, nil, testFlashKey)
	rec := httptest.NewRecorder()
	s.setFlash(rec, httptest.NewRequest(http.MethodPost, "/books", nil), success("Saved"))

	other := New(nil, nil, []byte("some-other-key-0123456789abcdef!"))
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	if f := other.popFlash(httptest.NewRecorder(), req); f != nil {
		t.Fatalf("cookie signed with another key was accepted: %+v", f)
	}

	req = httptest.NewRequest(http.MethodGet, "/books", nil)
	req.AddCookie(&http.Cookie{Name: flashSession, Value: "c3VjY2Vzc3xIaQ"})
	if f := s.popFlash(httptest.NewRecorder(), req); f != nil {
		t.Fatalf("unsigned cookie was accepted: %+v", f)
	}
}

// A page that consumes a flash and then redirects must still hand the new
// flash to the next page.
func TestFlashSurvivesPopThenRedirect(t *testing.T) {
	routes := map[string]string{
		"GET /NewsletterSubscriptions": `{"data":[{"id":5,"email":"gone@example.com","isActive":false,"subscribedAt":"2024-01-02T00:00:00Z"}]}`,
	}
	h, _ := newTestConsole(t, routes)
	first := post(t, h, "/newsletter-subscriptions/9/delete", url.Values{"title": {"x@example.com"}})
	req := httptest.NewRequest(http.MethodGet, "/newsletter-subscriptions/5/unsubscribe", nil)
	for _, c := range first.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if got := flashOf(t, rec); got != `error: "gone@example.com" is already unsubscribed` {
		t.Fatalf("flash = %q", got)
	}
}

func TestBooksSearchFilters(t *testing.T) {
	h, _ := newTestConsole(t, map[string]string{"GET /Books": booksJSON})

	doc := parse(t, get(t, h, "/books?q=yoga"))
	rows := doc.Find("tbody tr")
	if rows.Length() != 1 {
		t.Fatalf("got %d rows, want 1", rows.Length())
	}
	if title := textOf(rows.First().Find("td").First()); !strings.Contains(title, "Yoga Sutras") {
		t.Fatalf("unexpected row %q", title)
	}
	if h2 := textOf(doc.Find(".list-header h2")); h2 != "All Books (1)" {
		t.Fatalf("heading = %q", h2)
	}

	doc = parse(t, get(t, h, "/books?q=vedanta"))
	if got := textOf(doc.Find(".empty-state h3")); got != "No books found" {
		t.Fatalf("empty state = %q", got)
	}
}

func TestCreateBookValidation(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{"GET /Books": booksJSON})

	rec := post(t, h, "/books", url.Values{"title": {"  "}, "author": {"Valmiki"}})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	doc := parse(t, rec)
	if got := textOf(doc.Find(".form-error").First()); got != "Title is required" {
		t.Fatalf("field error = %q", got)
	}
	if fake.called("POST /Books") {
		t.Fatal("invalid form reached the API")
	}
}

func TestCreateBookRedirectsWithFlash(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{
		"POST /Books": `{"id":9,"title":"Ramayana","author":"Valmiki"}`,
	})

	rec := post(t, h, "/books", url.Values{"title": {"Ramayana"}, "author": {"Valmiki"}, "publicationYear": {"1950"}})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/books" {
		t.Fatalf("got %d to %q", rec.Code, rec.Header().Get("Location"))
	}
	if got := flashOf(t, rec); got != `success: Book "Ramayana" created successfully` {
		t.Fatalf("flash = %q", got)
	}
	var sent map[string]any
	if err := json.Unmarshal([]byte(fake.body("POST /Books")), &sent); err != nil {
		t.Fatalf("bad request body: %v", err)
	}
	if sent["title"] != "Ramayana" || sent["publicationYear"] != float64(1950) {
		t.Fatalf("unexpected payload %v", sent)
	}
}

func TestCreateBookAPIErrorKeepsForm(t *testing.T) {
	h, _ := newTestConsole(t, map[string]string{"GET /Books": booksJSON})

	rec := post(t, h, "/books", url.Values{"title": {"Ramayana"}, "author": {"Valmiki"}})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	doc := parse(t, rec)
	if got := textOf(doc.Find(".form-error-banner")); got != "Not found" {
		t.Fatalf("banner = %q", got)
	}
	if v, _ := doc.Find(`input[name="title"]`).Attr("value"); v != "Ramayana" {
		t.Fatalf("title not kept: %q", v)
	}
}

func TestDeleteBookConfirmThenDelete(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{
		"GET /Books/1":    `{"id":1,"title":"Charaka Samhita","author":"Charaka"}`,
		"DELETE /Books/1": ``,
	})

	doc := parse(t, get(t, h, "/books/1/delete"))
	msg := textOf(doc.Find(".confirm-message"))
	if msg != `Are you sure you want to delete "Charaka Samhita"? This action cannot be undone.` {
		t.Fatalf("confirm message = %q", msg)
	}
	if fake.called("DELETE /Books/1") {
		t.Fatal("GET must not delete")
	}

	rec := post(t, h, "/books/1/delete", url.Values{"title": {"Charaka Samhita"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if !fake.called("DELETE /Books/1") {
		t.Fatal("DELETE not sent")
	}
	if got := flashOf(t, rec); got != `success: Book "Charaka Samhita" deleted successfully` {
		t.Fatalf("flash = %q", got)
	}
}

func TestDeleteBookFailureFlash(t *testing.T) {
	h, _ := newTestConsole(t, nil)
	rec := post(t, h, "/books/5/delete", url.Values{"title": {"Gone"}})
	if got := flashOf(t, rec); got != "error: Not found" {
		t.Fatalf("flash = %q", got)
	}
}

func TestCreateChapterSendsParent(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{
		"POST /Chapters": `{"id":31,"bookId":2,"chapterNumber":1,"chapterTitle":"Samadhi Pada"}`,
	})

	rec := post(t, h, "/books/2/chapters", url.Values{
		"chapterNumber": {"1"},
		"chapterTitle":  {"Samadhi Pada"},
		"contentHtml":   {"<p>Now, the teachings of yoga.</p>"},
	})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/books/2/chapters" {
		t.Fatalf("got %d to %q", rec.Code, rec.Header().Get("Location"))
	}
	var sent map[string]any
	if err := json.Unmarshal([]byte(fake.body("POST /Chapters")), &sent); err != nil {
		t.Fatalf("bad request body: %v", err)
	}
	if sent["bookId"] != float64(2) || sent["chapterTitle"] != "Samadhi Pada" {
		t.Fatalf("unexpected payload %v", sent)
	}
}

func TestChapterWithoutParent(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{"GET /Books": `{"data":[]}`})

	rec := post(t, h, "/chapters", url.Values{"chapterTitle": {"Orphan"}})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	doc := parse(t, rec)
	if got := textOf(doc.Find(".alert-error span")); got != "Please select a book first" {
		t.Fatalf("alert = %q", got)
	}
	if fake.called("POST /Chapters") {
		t.Fatal("chapter without a parent reached the API")
	}
}

func TestChaptersListSorted(t *testing.T) {
	h, _ := newTestConsole(t, map[string]string{
		"GET /Books": booksJSON,
		"GET /Books/1/chapters": `{"id":1,"title":"Charaka Samhita","author":"Charaka","chapters":[
			{"id":12,"chapterNumber":2,"chapterTitle":"Nidana"},
			{"id":11,"chapterNumber":1,"chapterTitle":"Sutra"}
		]}`,
	})

	doc := parse(t, get(t, h, "/chapters"))
	var numbers []string
	doc.Find("tbody tr").Each(func(_ int, s *goquery.Selection) {
		numbers = append(numbers, textOf(s.Find("td").First()))
	})
	if strings.Join(numbers, ",") != "1,2" {
		t.Fatalf("chapter order = %v", numbers)
	}
	if sel, _ := doc.Find(`select[name="book"] option[selected]`).Attr("value"); sel != "1" {
		t.Fatalf("selected book = %q", sel)
	}
}

const subscriptionsJSON = `[
	{"id":1,"email":"a@example.com","isActive":true,"source":"footer","subscribedAt":"2024-03-02T10:00:00Z"},
	{"id":2,"email":"b@example.com","isActive":false,"subscribedAt":"2024-01-05T10:00:00","unsubscribedAt":"2024-02-01T10:00:00Z"},
	{"id":3,"email":"c@example.com","isActive":true,"subscribedAt":"2024-03-10T08:00:00Z"}
]`

func TestNewsletterStatsAndFilter(t *testing.T) {
	h, _ := newTestConsole(t, map[string]string{"GET /NewsletterSubscriptions": subscriptionsJSON})

	doc := parse(t, get(t, h, "/newsletter-subscriptions?status=inactive"))
	stats := map[string]string{}
	doc.Find(".stat-card").Each(func(_ int, s *goquery.Selection) {
		stats[textOf(s.Find(".stat-label"))] = textOf(s.Find(".stat-value"))
	})
	if stats["Total Subscriptions"] != "3" || stats["Active Subscribers"] != "2" || stats["This Month"] != "2" {
		t.Fatalf("stats = %v", stats)
	}
	rows := doc.Find("tbody tr")
	if rows.Length() != 1 || !strings.Contains(textOf(rows), "b@example.com") {
		t.Fatalf("filtered rows = %q", textOf(rows))
	}
	if rows.Find(`a[href$="/unsubscribe"]`).Length() != 0 {
		t.Fatal("inactive subscription offers unsubscribe")
	}
}

func TestNewsletterExportUsesFilter(t *testing.T) {
	h, _ := newTestConsole(t, map[string]string{"GET /NewsletterSubscriptions": subscriptionsJSON})

	rec := get(t, h, "/newsletter-subscriptions/export.csv?status=active")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "newsletter-subscriptions-2024-03-15.csv") {
		t.Fatalf("content disposition = %q", cd)
	}
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "b@example.com") {
		t.Fatal("inactive subscription exported")
	}
}

func TestUnsubscribe(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{
		"GET /NewsletterSubscriptions":               subscriptionsJSON,
		"POST /NewsletterSubscriptions/1/unsubscribe": ``,
	})

	doc := parse(t, get(t, h, "/newsletter-subscriptions/1/unsubscribe"))
	if got := textOf(doc.Find(".confirm-message")); got != `Are you sure you want to unsubscribe "a@example.com"?` {
		t.Fatalf("confirm message = %q", got)
	}
	rec := post(t, h, "/newsletter-subscriptions/1/unsubscribe", url.Values{"title": {"a@example.com"}})
	if !fake.called("POST /NewsletterSubscriptions/1/unsubscribe") {
		t.Fatal("unsubscribe not sent")
	}
	if got := flashOf(t, rec); got != `success: "a@example.com" unsubscribed successfully` {
		t.Fatalf("flash = %q", got)
	}

	rec = get(t, h, "/newsletter-subscriptions/2/unsubscribe")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("inactive unsubscribe status = %d", rec.Code)
	}
}

const contactsJSON = `[
	{"id":1,"name":"Asha","email":"asha@example.com","subject":"Collaboration","message":"Let us work together","contactType":"collaboration","status":"Pending","submittedAt":"2024-03-01T09:30:00Z"},
	{"id":2,"name":"Ravi","email":"ravi@example.com","subject":"Bug","message":"Search is broken","contactType":"technical","status":"Resolved","submittedAt":"2024-03-02T09:30:00Z"}
]`

func TestContactsFilterByStatus(t *testing.T) {
	h, _ := newTestConsole(t, map[string]string{"GET /ContactSubmissions": contactsJSON})

	doc := parse(t, get(t, h, "/contact-submissions?status=Resolved"))
	rows := doc.Find("tbody tr")
	if rows.Length() != 1 || !strings.Contains(textOf(rows), "Ravi") {
		t.Fatalf("rows = %q", textOf(rows))
	}
	if got := textOf(rows.Find(".badge-success")); got != "Resolved" {
		t.Fatalf("status badge = %q", got)
	}

	doc = parse(t, get(t, h, "/contact-submissions?q=nobody"))
	if got := textOf(doc.Find(".empty-state p")); got != "Try adjusting your filters or search term" {
		t.Fatalf("empty message = %q", got)
	}
}

func TestContactStatusUpdate(t *testing.T) {
	h, fake := newTestConsole(t, map[string]string{"PUT /ContactSubmissions/1": ``})

	rec := post(t, h, "/contact-submissions/1/status", url.Values{"status": {"InProgress"}})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/contact-submissions/1" {
		t.Fatalf("got %d to %q", rec.Code, rec.Header().Get("Location"))
	}
	if got := fake.body("PUT /ContactSubmissions/1"); !strings.Contains(got, `"status":"InProgress"`) {
		t.Fatalf("payload = %s", got)
	}
	if got := flashOf(t, rec); got != "success: Status updated successfully" {
		t.Fatalf("flash = %q", got)
	}
}

func TestDashboard(t *testing.T) {
	h, _ := newTestConsole(t, map[string]string{"GET /Books": booksJSON})

	doc := parse(t, get(t, h, "/"))
	stats := map[string]string{}
	doc.Find(".stat-card").Each(func(_ int, s *goquery.Selection) {
		stats[textOf(s.Find(".stat-label"))] = textOf(s.Find(".stat-value"))
	})
	if stats["Total Books"] != "2" || stats["Total Chapters"] != "7" {
		t.Fatalf("stats = %v", stats)
	}
	if doc.Find(`.quick-actions a[href="/books?action=new"]`).Length() != 1 {
		t.Fatal("missing Add New Book quick action")
	}
}

func TestDashboardLoadError(t *testing.T) {
	h, _ := newTestConsole(t, nil)
	rec := get(t, h, "/")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := textOf(parse(t, rec).Find(".alert-error")); got != "Not found" {
		t.Fatalf("error = %q", got)
	}
}
