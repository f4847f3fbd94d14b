package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vedic-admin/epub"
	"vedic-admin/export"
	"vedic-admin/logger"
	"vedic-admin/model"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export newsletter subscriptions, contact submissions or a book",
	Long:  "Export newsletter subscriptions or contact submissions as CSV, or a book as EPUB",
}

var exportNewsletterCmd = &cobra.Command{
	Use:   "newsletter",
	Short: "Export newsletter subscriptions as CSV",
	RunE:  runExportNewsletter,
}

var exportContactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Export contact submissions as CSV",
	RunE:  runExportContacts,
}

var exportBookCmd = &cobra.Command{
	Use:   "book",
	Short: "Export a book and its chapters as EPUB",
	RunE:  runExportBook,
}

type exportCSVArgs struct {
	query       string
	status      string
	contactType string
	out         string
}

type exportBookArgs struct {
	BookId     int64 `validate:"required"`
	outputPath string
}

var (
	newsletterArgs exportCSVArgs
	contactsArgs   exportCSVArgs
	bookArgs       exportBookArgs
)

func init() {
	exportNewsletterCmd.Flags().StringVarP(&newsletterArgs.query, "q", "q", "", "email search term")
	exportNewsletterCmd.Flags().StringVarP(&newsletterArgs.status, "status", "s", "all", "all, active or inactive")
	exportNewsletterCmd.Flags().StringVarP(&newsletterArgs.out, "out", "o", "", "output file, stdout when omitted and not a terminal")

	exportContactsCmd.Flags().StringVarP(&contactsArgs.query, "q", "q", "", "name, email, subject or message search term")
	exportContactsCmd.Flags().StringVarP(&contactsArgs.status, "status", "s", "all", "all, Pending, InProgress, Resolved or Closed")
	exportContactsCmd.Flags().StringVarP(&contactsArgs.contactType, "type", "t", "all", "contact type value")
	exportContactsCmd.Flags().StringVarP(&contactsArgs.out, "out", "o", "", "output file, stdout when omitted and not a terminal")

	exportBookCmd.Flags().Int64VarP(&bookArgs.BookId, "book-id", "b", 0, "book id")
	exportBookCmd.Flags().StringVarP(&bookArgs.outputPath, "output-path", "o", "./books", "output directory")

	exportCmd.AddCommand(exportNewsletterCmd)
	exportCmd.AddCommand(exportContactsCmd)
	exportCmd.AddCommand(exportBookCmd)
	RootCmd.AddCommand(exportCmd)
}

// output resolves where an export goes: --out, the default file name when
// stdout is a terminal, or stdout.
func output(out, defaultName string) (io.WriteCloser, string, error) {
	if out == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		out = defaultName
	}
	if out == "" || out == "-" {
		return nopCloser{os.Stdout}, "", nil
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create %s: %v", out, err)
	}
	return f, out, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func writeExport(out, defaultName string, write func(io.Writer) error) error {
	w, path, err := output(out, defaultName)
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		w.Close()
		return fmt.Errorf("failed to write export: %v", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close export: %v", err)
	}
	if path != "" {
		logger.Logger.Printf("Wrote %s", path)
	}
	return nil
}

func runExportNewsletter(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	subs, err := client.ListNewsletterSubscriptions(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load newsletter subscriptions: %v", err)
	}
	subs = model.SubscriptionFilter{Term: newsletterArgs.query, Status: newsletterArgs.status}.Apply(subs)
	return writeExport(newsletterArgs.out, export.NewsletterFileName(time.Now()), func(w io.Writer) error {
		return export.WriteNewsletter(w, subs, time.Local)
	})
}

func runExportContacts(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	subs, err := client.ListContactSubmissions(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load contact submissions: %v", err)
	}
	subs = model.ContactFilter{Term: contactsArgs.query, Status: contactsArgs.status, Type: contactsArgs.contactType}.Apply(subs)
	return writeExport(contactsArgs.out, export.ContactsFileName(time.Now()), func(w io.Writer) error {
		return export.WriteContacts(w, subs, time.Local)
	})
}

func runExportBook(cmd *cobra.Command, args []string) error {
	if bookArgs.BookId == 0 {
		return fmt.Errorf("book id is required")
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	book, err := client.GetBookWithChapters(ctx, bookArgs.BookId)
	if err != nil {
		return fmt.Errorf("failed to load book %d: %v", bookArgs.BookId, err)
	}
	path, err := epub.WriteFile(ctx, bookArgs.outputPath, book)
	if err != nil {
		return fmt.Errorf("failed to export book: %v", err)
	}
	logger.Logger.Printf("Wrote %s (%d chapters)", path, len(book.Chapters))
	return nil
}
