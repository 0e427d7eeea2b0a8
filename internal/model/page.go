package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultLinkDescription is shown for links that carry no description.
const DefaultLinkDescription = "点击进入新界面"

// Link is an interactive element discovered on a page. Keys other than these
// four are not kept.
type Link struct {
	Text        Scalar  `json:"text"`
	UID         Scalar  `json:"uid"`
	TargetID    Scalar  `json:"target_id"`
	Description *Scalar `json:"description,omitempty"`
}

// Label returns the link description, or DefaultLinkDescription when it is
// missing, null or empty.
func (l Link) Label() string {
	if l.Description == nil || l.Description.IsNull() || l.Description.String() == "" {
		return DefaultLinkDescription
	}
	return l.Description.String()
}

type Page struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Screenshot  string `json:"screenshot"`
	Links       []Link `json:"links"`
}

func (p Page) MarshalJSON() ([]byte, error) {
	type plain Page
	if p.Links == nil {
		p.Links = []Link{}
	}
	return marshalNoEscape(plain(p))
}

// PageEntry pairs a page with its id.
type PageEntry struct {
	ID   string
	Page Page
}

// PageSet is an insertion-ordered mapping of page id to page. Its JSON form is
// an object whose keys appear in insertion order.
type PageSet struct {
	entries []PageEntry
	index   map[string]int
}

func NewPageSet() *PageSet {
	return &PageSet{index: make(map[string]int)}
}

// Put stores page under id. An existing id keeps its position.
func (s *PageSet) Put(id string, page Page) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[id]; ok {
		s.entries[i].Page = page
		return
	}
	s.index[id] = len(s.entries)
	s.entries = append(s.entries, PageEntry{ID: id, Page: page})
}

func (s *PageSet) Get(id string) (Page, bool) {
	i, ok := s.index[id]
	if !ok {
		return Page{}, false
	}
	return s.entries[i].Page, true
}

func (s *PageSet) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the pages in insertion order.
func (s *PageSet) Entries() []PageEntry {
	out := make([]PageEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *PageSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(e.ID)
		if err != nil {
			return nil, err
		}
		val, err := marshalNoEscape(e.Page)
		if err != nil {
			return nil, fmt.Errorf("encoding page %q: %w", e.ID, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *PageSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("page set: expected object, got %v", tok)
	}
	fresh := NewPageSet()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := tok.(string)
		if !ok {
			return fmt.Errorf("page set: expected key, got %v", tok)
		}
		var p Page
		if err := dec.Decode(&p); err != nil {
			return fmt.Errorf("page %q: %w", id, err)
		}
		fresh.Put(id, p)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = *fresh
	return nil
}

// marshalNoEscape encodes v without HTML escaping and without the trailing
// newline json.Encoder adds.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
