package types

import (
	"encoding/json"
	"errors"
)

// Resource is a learning resource. The backend sends either a bare string
// or an object with a name and an optional url; the shape is decided once
// here so renderers never look at raw JSON.
type Resource struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`

	// object is set when the backend sent the object form
	object bool
}

// PlainResource returns a resource that renders as plain text
func PlainResource(text string) Resource {
	return Resource{Name: text}
}

// LinkedResource returns a resource that renders as a hyperlink
func LinkedResource(name, url string) Resource {
	return Resource{Name: name, URL: url, object: true}
}

// NamedResource returns a resource from the object form without a url
func NamedResource(name string) Resource {
	return Resource{Name: name, object: true}
}

// IsLink reports whether the resource renders as a hyperlink
func (r Resource) IsLink() bool {
	return r.URL != ""
}

// Label returns the display text. An object without a name falls back to
// "Resource"; an empty string stays empty.
func (r Resource) Label() string {
	if r.Name == "" && r.object {
		return "Resource"
	}
	return r.Name
}

// UnmarshalJSON accepts both a string and an object
func (r *Resource) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*r = PlainResource(str)
		return nil
	}

	var obj struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		*r = Resource{Name: obj.Name, URL: obj.URL, object: true}
		return nil
	}

	return errors.New("resource must be either a string or an object with a name")
}

// MarshalJSON writes plain resources back as strings
func (r Resource) MarshalJSON() ([]byte, error) {
	if !r.IsLink() {
		return json.Marshal(r.Name)
	}
	return json.Marshal(struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}{r.Name, r.URL})
}
