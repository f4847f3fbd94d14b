package template

// View models for the console pages. Handlers build these from API data;
// the components only lay them out.

type Page struct {
	Title     string
	Subtitle  string
	Active    string
	Flash     *Flash
	RequestID string
}

type Flash struct {
	Kind    string
	Message string
}

func (f *Flash) Class() string {
	if f.Kind == "error" {
		return "alert alert-error"
	}
	return "alert alert-success"
}

type NavItem struct {
	Key   string
	Label string
	Href  string
}

var Nav = []NavItem{
	{"dashboard", "Dashboard", "/"},
	{"books", "Books", "/books"},
	{"chapters", "Chapters", "/chapters"},
	{"textbooks", "Textbooks", "/textbooks"},
	{"textbook-chapters", "Textbook Chapters", "/textbook-chapters"},
	{"research-papers", "Research Papers", "/research-papers"},
	{"thesis", "Thesis", "/thesis"},
	{"contact-submissions", "Contact Submissions", "/contact-submissions"},
	{"newsletter-subscriptions", "Newsletter", "/newsletter-subscriptions"},
}

func navClass(active bool) string {
	if active {
		return "nav-link active"
	}
	return "nav-link"
}

type Stat struct {
	Label string
	Value string
	Tone  string
}

// Action is a link, or a one-button form when Method is "post".
type Action struct {
	Label  string
	Href   string
	Method string
	Tone   string
	Title  string
}

func (a Action) Class() string {
	tone := a.Tone
	if tone == "" {
		tone = "secondary"
	}
	return "btn btn-" + tone
}

func (a Action) IsPost() bool {
	return a.Method == "post"
}

// Cell is a table cell. A non-empty Badge renders the text as a badge of
// that tone. Note is a smaller line under the text.
type Cell struct {
	Text   string
	Note   string
	Title  string
	Badge  string
	Href   string
	Strong bool
	Muted  bool
}

func (c Cell) Class() string {
	switch {
	case c.Strong:
		return "cell-strong"
	case c.Muted:
		return "cell-muted"
	}
	return ""
}

func badgeClass(tone string) string {
	return "badge badge-" + tone
}

type Row struct {
	Cells   []Cell
	Actions []Action
}

type Table struct {
	Columns []string
	Rows    []Row
}

type EmptyState struct {
	Title   string
	Message string
	Action  *Action
}

type Option struct {
	Value string
	Label string
}

type Select struct {
	Name    string
	Label   string
	Value   string
	Options []Option
}

// Search is the GET filter bar of a list page. SelectOnly drops the text
// box, leaving the selects.
type Search struct {
	Action      string
	Placeholder string
	Query       string
	Selects     []Select
	SelectOnly  bool
}

type Field struct {
	Name        string
	Label       string
	Type        string
	Value       string
	Placeholder string
	Help        string
	Error       string
	Required    bool
	Checked     bool
	Rows        string
	Step        string
	Min         string
	Max         string
	Wide        bool
	Options     []Option
}

func (f Field) GroupClass() string {
	c := "form-group"
	if f.Wide {
		c += " form-group-wide"
	}
	if f.Error != "" {
		c += " has-error"
	}
	return c
}

func (f Field) InputType() string {
	if f.Type == "" {
		return "text"
	}
	return f.Type
}

type Form struct {
	Title  string
	Action string
	Submit string
	Cancel string
	Error  string
	Fields []Field
}

// Preview shows one record: rendered HTML content or plain text, a row of
// facts, and optionally a form and actions underneath.
type Preview struct {
	Title    string
	Subtitle string
	Meta     []Stat
	HTML     string
	Text     string
	Form     *Form
	Actions  []Action
	Close    string
}

type ListPage struct {
	Page
	Heading       string
	HeaderActions []Action
	Stats         []Stat
	Search        *Search
	Table         Table
	Empty         EmptyState
	Form          *Form
	Preview       *Preview
}

// ConfirmPage asks before a destructive POST. Title is posted back so the
// result message can name the record.
type ConfirmPage struct {
	Page
	Message string
	Title   string
	Action  string
	Submit  string
	Cancel  string
}

type DashboardPage struct {
	Page
	Stats        []Stat
	QuickActions []Action
	RecentBooks  Table
	Activity     Table
}

type ErrorPage struct {
	Page
	Message string
	Back    string
}
