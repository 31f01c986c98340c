package ui

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// sitePage wraps body in the document shell shared by every page.
// docTitle overrides the <title> when set.
func sitePage(meta PageMeta, docTitle string, body ...Node) Node {
	if docTitle == "" {
		docTitle = meta.Title
	}
	return Doctype(
		HTML(
			Lang("en"),
			documentHead(meta, docTitle),
			Body(
				navigation(meta),
				Main(Class("layout"), Group(body)),
				footer(meta),
			),
		),
	)
}

func documentHead(meta PageMeta, docTitle string) Node {
	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		TitleEl(Text(docTitle)),
		Meta(Name(meta.Title), Content(meta.Description)),
		Meta(Name("description"), Content(meta.Description)),
		If(meta.IconHref != "", Link(Rel("icon"), Href(meta.IconHref))),
		Link(Rel("stylesheet"), Href(stylesheetHref())),
	)
}

func navigation(meta PageMeta) Node {
	return Nav(
		Class("site-nav"),
		A(Href("/"), Class("site-brand"), Strong(Text(meta.Title))),
	)
}

func footer(meta PageMeta) Node {
	return Footer(
		Class("site-footer"),
		Span(Text(meta.Title)),
		Span(Text(meta.Description)),
	)
}

func errorPage(meta PageMeta, title, message string) Node {
	return sitePage(meta, title+" | "+meta.Title,
		Section(
			Class("Box hero"),
			H2(Text(title)),
			P(Text(message)),
			P(A(Href("/"), Text("Back to home"))),
		),
	)
}
