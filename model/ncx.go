package model

import (
	"encoding/xml"
	"fmt"
)

// NCX is the EPUB 2 table of contents (toc.ncx). Readers that understand the
// EPUB 3 nav document ignore it.
type NCX struct {
	XMLName   xml.Name   `xml:"ncx"`
	Xmlns     string     `xml:"xmlns,attr"`
	Version   string     `xml:"version,attr"`
	Meta      []NCXMeta  `xml:"head>meta"`
	DocTitle  string     `xml:"docTitle>text"`
	NavPoints []NavPoint `xml:"navMap>navPoint"`
}

type NCXMeta struct {
	Name    string `xml:"name,attr"`
	Content string `xml:"content,attr"`
}

type NavPoint struct {
	Id        string     `xml:"id,attr"`
	PlayOrder int        `xml:"playOrder,attr"`
	Label     string     `xml:"navLabel>text"`
	Content   NavContent `xml:"content"`
}

type NavContent struct {
	Src string `xml:"src,attr"`
}

// NewNCX starts a flat table of contents for the book identified by uid.
func NewNCX(uid, title string) *NCX {
	return &NCX{
		Xmlns:    "http://www.daisy.org/z3986/2005/ncx/",
		Version:  "2005-1",
		DocTitle: title,
		Meta: []NCXMeta{
			{Name: "dtb:uid", Content: uid},
			{Name: "dtb:depth", Content: "1"},
		},
	}
}

// AddChapter appends an entry; play order follows insertion order.
func (n *NCX) AddChapter(label, src string) {
	order := len(n.NavPoints) + 1
	n.NavPoints = append(n.NavPoints, NavPoint{
		Id:        fmt.Sprintf("navPoint-%d", order),
		PlayOrder: order,
		Label:     label,
		Content:   NavContent{Src: src},
	})
}
