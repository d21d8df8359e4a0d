package provider

import (
	"context"
	"html"
	"net/http"
	"sort"
	"strings"
)

// DefaultLayout is the layout created for every matched route.
const DefaultLayout = "default"

// RouteModel describes the route that matched the current request.
type RouteModel struct {
	URI  string
	Name string
}

// Element is a void HTML element appended to a layout region.
type Element struct {
	Name  string
	Attrs map[string]string
}

// Render returns the element as an HTML tag pair with escaped attributes.
func (e Element) Render() string {
	var b strings.Builder
	b.WriteString("<" + e.Name)
	keys := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" " + k + `="` + html.EscapeString(e.Attrs[k]) + `"`)
	}
	b.WriteString("></" + e.Name + ">")
	return b.String()
}

// RenderContainer holds the per-request render state.
type RenderContainer struct {
	Request *http.Request
	Route   *RouteModel
	Layout  string
	Footer  []Element
}

// CreateLayout selects the layout used to render the response.
func (c *RenderContainer) CreateLayout(name string) {
	c.Layout = name
}

// AppendFooter adds elements to the layout footer.
func (c *RenderContainer) AppendFooter(items ...Element) {
	c.Footer = append(c.Footer, items...)
}

type containerKey struct{}

// WithContainer returns a copy of ctx carrying c.
func WithContainer(ctx context.Context, c *RenderContainer) context.Context {
	return context.WithValue(ctx, containerKey{}, c)
}

// FromRequest returns the request's RenderContainer, or nil when the request
// did not pass through Provider.Middleware.
func FromRequest(r *http.Request) *RenderContainer {
	c, _ := r.Context().Value(containerKey{}).(*RenderContainer)
	return c
}
