package atom

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func mustParseFeed(t *testing.T, doc string) *Feed {
	t.Helper()
	feed, err := ParseString(doc)
	if err != nil {
		t.Fatalf("ParseString error = %v", err)
	}
	return feed
}

func feedWith(children string) string {
	return `<?xml version="1.0"?><feed xmlns="http://www.w3.org/2005/Atom">` + children + `</feed>`
}

func TestReadFromFullFeed(t *testing.T) {
	doc := `<?xml version="1.0"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:ext="urn:example:ext" xmlns:dc="http://purl.org/dc/elements/1.1/" xml:lang="en" xml:base="http://example.com/">
  <title>Example Feed</title>
  <id>urn:example:feed</id>
  <updated>2023-06-01T12:00:00Z</updated>
  <author><name>Jo</name><email>jo@example.com</email><uri>http://example.com/jo</uri></author>
  <category term="tech" scheme="urn:example:scheme" label="Tech"/>
  <contributor><name>Sam</name></contributor>
  <generator uri="urn:example:gen" version="1.0">FeedTool</generator>
  <icon>http://example.com/icon.png</icon>
  <link href="http://example.com/" rel="self" type="text/html" hreflang="en" title="Home" length="1000"/>
  <logo>http://example.com/logo.png</logo>
  <rights>Copyright 2023</rights>
  <subtitle type="html">sub &lt;b&gt;title&lt;/b&gt;</subtitle>
  <entry>
    <title>First</title>
    <id>urn:example:entry:1</id>
    <updated>2023-06-02T08:30:00Z</updated>
  </entry>
</feed>`

	feed := mustParseFeed(t, doc)

	if feed.Title.Value != "Example Feed" {
		t.Fatalf("title = %q, want Example Feed", feed.Title.Value)
	}
	if feed.ID != "urn:example:feed" {
		t.Fatalf("id = %q, want urn:example:feed", feed.ID)
	}
	want := time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)
	if !feed.Updated.Equal(want) {
		t.Fatalf("updated = %v, want %v", feed.Updated, want)
	}
	if len(feed.Authors) != 1 {
		t.Fatalf("author count = %d, want 1", len(feed.Authors))
	}
	author := feed.Authors[0]
	if author.Name != "Jo" || author.Email != "jo@example.com" || author.URI != "http://example.com/jo" {
		t.Fatalf("author = %+v, want Jo/jo@example.com/http://example.com/jo", author)
	}
	if len(feed.Categories) != 1 || feed.Categories[0].Term != "tech" || feed.Categories[0].Label != "Tech" {
		t.Fatalf("categories = %+v, want one with term tech", feed.Categories)
	}
	if len(feed.Contributors) != 1 || feed.Contributors[0].Name != "Sam" {
		t.Fatalf("contributors = %+v, want one named Sam", feed.Contributors)
	}
	if feed.Generator == nil || feed.Generator.Value != "FeedTool" || feed.Generator.Version != "1.0" {
		t.Fatalf("generator = %+v, want FeedTool 1.0", feed.Generator)
	}
	if feed.Icon != "http://example.com/icon.png" {
		t.Fatalf("icon = %q", feed.Icon)
	}
	if len(feed.Links) != 1 {
		t.Fatalf("link count = %d, want 1", len(feed.Links))
	}
	link := feed.Links[0]
	if link.Href != "http://example.com/" || link.Rel != "self" || link.MIMEType != "text/html" ||
		link.HrefLang != "en" || link.Title != "Home" || link.Length != "1000" {
		t.Fatalf("link = %+v", link)
	}
	if feed.Logo != "http://example.com/logo.png" {
		t.Fatalf("logo = %q", feed.Logo)
	}
	if feed.Rights == nil || feed.Rights.Value != "Copyright 2023" {
		t.Fatalf("rights = %+v, want Copyright 2023", feed.Rights)
	}
	if feed.Subtitle == nil || feed.Subtitle.Type != TextTypeHTML || feed.Subtitle.Value != "sub <b>title</b>" {
		t.Fatalf("subtitle = %+v, want html sub <b>title</b>", feed.Subtitle)
	}
	if len(feed.Entries) != 1 || feed.Entries[0].Title.Value != "First" {
		t.Fatalf("entries = %+v, want one titled First", feed.Entries)
	}
	if feed.Lang != "en" {
		t.Fatalf("lang = %q, want en", feed.Lang)
	}
	if feed.Base != "http://example.com/" {
		t.Fatalf("base = %q, want http://example.com/", feed.Base)
	}
}

func TestReadFromNamespaces(t *testing.T) {
	doc := `<feed xmlns="http://www.w3.org/2005/Atom" xmlns:ext="urn:example:ext" xmlns:dc="http://purl.org/dc/elements/1.1/"></feed>`
	feed := mustParseFeed(t, doc)

	if got := feed.Namespaces["ext"]; got != "urn:example:ext" {
		t.Fatalf("ext namespace = %q, want urn:example:ext", got)
	}
	if _, ok := feed.Namespaces["dc"]; ok {
		t.Fatalf("dc namespace harvested, want skipped")
	}
	if len(feed.Namespaces) != 1 {
		t.Fatalf("namespace count = %d, want 1", len(feed.Namespaces))
	}
}

func TestReadFromWrongRoot(t *testing.T) {
	if _, err := ParseString(`<wrong></wrong>`); !errors.Is(err, ErrInvalidStartTag) {
		t.Fatalf("wrong root error = %v, want %v", err, ErrInvalidStartTag)
	}
}

func TestReadFromEmptyInput(t *testing.T) {
	if _, err := ParseString(""); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("empty input error = %v, want %v", err, ErrUnexpectedEOF)
	}
	if _, err := ParseString("  \n  "); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("whitespace input error = %v, want %v", err, ErrUnexpectedEOF)
	}
}

func TestReadFromTruncatedInput(t *testing.T) {
	if _, err := ParseString(`<feed xmlns="http://www.w3.org/2005/Atom"><title>abc`); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("truncated input error = %v, want %v", err, ErrUnexpectedEOF)
	}
}

func TestReadFromSkipsLeadingMisc(t *testing.T) {
	doc := "<?xml version=\"1.0\"?>\n<!-- generated -->\n<!DOCTYPE feed>\n" + feedWith(`<title>T</title>`)
	feed := mustParseFeed(t, doc)
	if feed.Title.Value != "T" {
		t.Fatalf("title = %q, want T", feed.Title.Value)
	}
}

func TestReadFromMalformedAttrReference(t *testing.T) {
	_, err := ParseString(feedWith(`<link href="&;"/>`))
	var xmlErr *XMLError
	if !errors.As(err, &xmlErr) {
		t.Fatalf("malformed reference error = %v, want *XMLError", err)
	}
}

func TestReadFromMalformedTextReference(t *testing.T) {
	_, err := ParseString(feedWith(`<title>a &; b</title>`))
	var xmlErr *XMLError
	if !errors.As(err, &xmlErr) {
		t.Fatalf("malformed reference error = %v, want *XMLError", err)
	}
}

func TestReadFromMismatchedTags(t *testing.T) {
	_, err := ParseString(`<feed xmlns="http://www.w3.org/2005/Atom"><title>x</id></feed>`)
	var xmlErr *XMLError
	if !errors.As(err, &xmlErr) {
		t.Fatalf("mismatched tag error = %v, want *XMLError", err)
	}
}

func TestReadFromSkipsUnknownElements(t *testing.T) {
	feed := mustParseFeed(t, feedWith(`<unknown><nested>x</nested></unknown><title>T</title>`))
	if feed.Title.Value != "T" {
		t.Fatalf("title = %q, want T", feed.Title.Value)
	}
}

func TestReadFromMissingUpdatedDefaults(t *testing.T) {
	feed := mustParseFeed(t, feedWith(`<title>T</title>`))
	if !feed.Updated.Equal(defaultDateTime()) {
		t.Fatalf("updated = %v, want %v", feed.Updated, defaultDateTime())
	}
}

func TestFeedString(t *testing.T) {
	feed := &Feed{
		Title:   NewText("T"),
		ID:      "urn:example:feed",
		Updated: time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC),
		Authors: []Person{{Name: "Jo"}},
		Links:   []Link{{Href: "http://example.com/", Rel: "alternate"}},
		Entries: []Entry{{
			Title:   NewText("First"),
			ID:      "urn:example:entry:1",
			Updated: time.Date(2023, time.June, 2, 8, 30, 0, 0, time.UTC),
		}},
	}

	want := "<?xml version=\"1.0\"?>\n" +
		`<feed xmlns="http://www.w3.org/2005/Atom">` +
		`<title>T</title>` +
		`<id>urn:example:feed</id>` +
		`<updated>2023-06-01T12:00:00Z</updated>` +
		`<author><name>Jo</name></author>` +
		`<link href="http://example.com/" rel="alternate"></link>` +
		`<entry>` +
		`<title>First</title>` +
		`<id>urn:example:entry:1</id>` +
		`<updated>2023-06-02T08:30:00Z</updated>` +
		`</entry>` +
		`</feed>`
	if got := feed.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFeedRoundTrip(t *testing.T) {
	doc := `<?xml version="1.0"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:ext="urn:example:ext" xml:lang="en">
  <title type="html">sub &lt;b&gt;title&lt;/b&gt;</title>
  <id>urn:example:feed</id>
  <updated>2023-06-01T12:00:00Z</updated>
  <author><name>Jo</name></author>
  <category term="tech"/>
  <generator version="1.0">FeedTool</generator>
  <link href="http://example.com/" rel="self"/>
  <rights>Copyright 2023</rights>
  <ext:info kind="extra">more <nested>data</nested></ext:info>
  <entry>
    <title>First</title>
    <id>urn:example:entry:1</id>
    <updated>2023-06-02T08:30:00Z</updated>
    <published>2023-06-01T00:00:00Z</published>
    <summary>short</summary>
    <content type="xhtml"><div>a<br/>&amp; b</div></content>
    <ext:mark>n</ext:mark>
  </entry>
</feed>`

	first := mustParseFeed(t, doc)
	out := first.String()
	second := mustParseFeed(t, out)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("round trip mismatch:\nfirst  = %+v\nsecond = %+v\nxml   = %s", first, second, out)
	}
	if out2 := second.String(); out2 != out {
		t.Fatalf("serialization not stable:\nfirst  = %s\nsecond = %s", out, out2)
	}
}

func TestWriteToPropagatesSinkError(t *testing.T) {
	feed := &Feed{Title: NewText("T"), Updated: defaultDateTime()}
	w := &shortWriter{}
	if err := feed.WriteTo(w); err == nil {
		t.Fatalf("WriteTo error = nil, want sink error")
	}
}

type shortWriter struct{}

func (*shortWriter) Write(p []byte) (int, error) {
	return 0, errors.New("no space")
}

func TestParseStringMatchesReadFrom(t *testing.T) {
	doc := feedWith(`<title>T</title>`)
	fromString := mustParseFeed(t, doc)
	fromReader, err := ReadFrom(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadFrom error = %v", err)
	}
	if !reflect.DeepEqual(fromString, fromReader) {
		t.Fatalf("ParseString = %+v, ReadFrom = %+v", fromString, fromReader)
	}
}
