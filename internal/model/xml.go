package model

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// xmlRoot is the root element of an XML catalog file.
const xmlRoot = "ArrayOfProject"

// ErrUnencodableText is returned when a title or task holds characters
// an XML document cannot carry.
var ErrUnencodableText = errors.New("text cannot be stored in XML")

// Files written by the .NET XmlSerializer use a generic <Project> element
// with the concrete class in xsi:type.
const xmlGenericElement = "Project"

var xsiTypes = map[string]Kind{
	"WebDevelopmentProject":    KindWeb,
	"MobileDevelopmentProject": KindMobile,
}

// xmlEntry is the body of a <WebProject> or <MobileProject> element.
// The element name carries the kind.
type xmlEntry struct {
	Title          string   `xml:"Title"`
	EstimatedHours int      `xml:"EstimatedHours"`
	Tasks          []string `xml:"Tasks>string"`
}

// WriteXML encodes projects as an XML catalog, one element per project
// named after its kind. Nothing is written if any title or task holds
// characters XML cannot represent.
func WriteXML(w io.Writer, projects []Project) error {
	records := ToRecords(projects)
	for i, r := range records {
		if err := checkXMLRecord(r); err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: xmlRoot}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	for _, r := range records {
		name := r.Kind.ElementName()
		if name == "" {
			return fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
		}
		entry := xmlEntry{Title: r.Title, EstimatedHours: r.EstimatedHours, Tasks: r.Tasks}
		if err := enc.EncodeElement(entry, xml.StartElement{Name: xml.Name{Local: name}}); err != nil {
			return fmt.Errorf("failed to encode %s: %w", name, err)
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// ReadXML decodes an XML catalog written by WriteXML.
func ReadXML(r io.Reader) ([]Project, error) {
	dec := xml.NewDecoder(r)

	if err := readXMLRoot(dec); err != nil {
		return nil, err
	}

	var records []Record
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("unexpected end of file inside <%s>", xmlRoot)
			}
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			kind, err := xmlElementKind(t)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", len(records)+1, err)
			}
			var entry xmlEntry
			if err := dec.DecodeElement(&entry, &t); err != nil {
				return nil, fmt.Errorf("entry %d: %w", len(records)+1, err)
			}
			records = append(records, Record{
				Kind:           kind,
				Title:          entry.Title,
				EstimatedHours: entry.EstimatedHours,
				Tasks:          entry.Tasks,
			})
		case xml.EndElement:
			return FromRecords(records)
		}
	}
}

// xmlElementKind resolves the kind of a project element, either from its
// name or from the xsi:type of a generic <Project>.
func xmlElementKind(se xml.StartElement) (Kind, error) {
	if se.Name.Local != xmlGenericElement {
		return KindFromElement(se.Name.Local)
	}
	for _, attr := range se.Attr {
		if attr.Name.Local != "type" {
			continue
		}
		if kind, ok := xsiTypes[attr.Value]; ok {
			return kind, nil
		}
		return "", fmt.Errorf("%w: xsi:type %q", ErrUnknownKind, attr.Value)
	}
	return "", fmt.Errorf("%w: <%s> without xsi:type", ErrUnknownKind, xmlGenericElement)
}

// checkXMLRecord rejects text that encoding/xml would replace with U+FFFD.
func checkXMLRecord(r Record) error {
	if err := checkXMLText("title", r.Title); err != nil {
		return err
	}
	for i, task := range r.Tasks {
		if err := checkXMLText(fmt.Sprintf("task %d", i+1), task); err != nil {
			return err
		}
	}
	return nil
}

func checkXMLText(field, s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %s %q is not valid UTF-8", ErrUnencodableText, field, s)
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return fmt.Errorf("%w: %s %q contains %U", ErrUnencodableText, field, s, r)
		}
	}
	return nil
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// readXMLRoot advances dec past the root start element.
func readXMLRoot(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("missing <%s> root element", xmlRoot)
			}
			return err
		}
		if se, ok := tok.(xml.StartElement); ok {
			if se.Name.Local != xmlRoot {
				return fmt.Errorf("unexpected root element <%s>, want <%s>", se.Name.Local, xmlRoot)
			}
			return nil
		}
	}
}
