package cli

import (
	"strings"

	"github.com/abdul-hamid-achik/mimetypes/mimetype"
)

// typeView is the JSON projection of a media-type record.
type typeView struct {
	ContentType string   `json:"content_type"`
	Simplified  string   `json:"simplified"`
	Encoding    string   `json:"encoding"`
	Extensions  []string `json:"extensions,omitempty"`
	Registered  bool     `json:"registered"`
	Obsolete    bool     `json:"obsolete,omitempty"`
	UseInstead  []string `json:"use_instead,omitempty"`
	System      string   `json:"system,omitempty"`
	Docs        string   `json:"docs,omitempty"`
	URLs        []string `json:"urls,omitempty"`
}

func viewOf(t *mimetype.Type) typeView {
	v := typeView{
		ContentType: t.ContentType(),
		Simplified:  t.Simplified(),
		Encoding:    string(t.Encoding()),
		Extensions:  t.Extensions(),
		Registered:  t.Registered(),
		Obsolete:    t.Obsolete(),
		UseInstead:  t.UseInstead(),
		System:      t.System(),
		Docs:        t.Docs(),
	}
	for _, ref := range t.URLs() {
		if ref.Label != "" {
			v.URLs = append(v.URLs, ref.Label+": "+ref.URL)
		} else {
			v.URLs = append(v.URLs, ref.URL)
		}
	}
	return v
}

func viewsOf(types []*mimetype.Type) []typeView {
	views := make([]typeView, len(types))
	for i, t := range types {
		views[i] = viewOf(t)
	}
	return views
}

// flagsOf summarizes a record's state for one table cell.
func flagsOf(t *mimetype.Type) string {
	var flags []string
	if !t.Registered() {
		flags = append(flags, "unregistered")
	}
	if t.Obsolete() {
		flags = append(flags, "obsolete")
	}
	if t.System() != "" {
		flags = append(flags, "platform:"+t.System())
	}
	if t.Signature() {
		flags = append(flags, "signature")
	}
	return strings.Join(flags, ",")
}
