package template

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"vedic-admin/model"
)

const (
	xhtmlHeader    = "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<!DOCTYPE html>\n"
	stylesheetLink = `<link href="../style.css" rel="stylesheet" type="text/css"/>`
)

const containerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>
`

func ContainerXML() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, containerXML)
		return err
	})
}

// ContentOPF renders the package document. uniqueIdentifier names the
// dc:identifier element that identifies the publication.
func ContentOPF(uniqueIdentifier string, dc *model.DublinCoreMetadata, manifest *model.Manifest, spine *model.Spine) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		metadata, err := dc.Marshal()
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
		items, err := manifest.Marshal()
		if err != nil {
			return fmt.Errorf("failed to marshal manifest: %w", err)
		}
		refs, err := spine.Marshal()
		if err != nil {
			return fmt.Errorf("failed to marshal spine: %w", err)
		}
		_, err = fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<package version="3.0" unique-identifier=%q xmlns="http://www.idpf.org/2007/opf" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:opf="http://www.idpf.org/2007/opf">
%s
%s
%s
</package>
`, uniqueIdentifier, metadata, items, refs)
		return err
	})
}

// TocNCX renders the EPUB 2 table of contents kept for older readers.
func TocNCX(ncx *model.NCX) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body, err := xml.MarshalIndent(ncx, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal toc.ncx: %w", err)
		}
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return err
		}
		_, err = w.Write(append(body, '\n'))
		return err
	})
}
