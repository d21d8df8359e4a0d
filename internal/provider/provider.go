package provider

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bayrell/baylang-cli/internal/branding"
	"github.com/bayrell/baylang-cli/internal/manifest"
	"github.com/bayrell/baylang-cli/internal/scaffold"
)

// Context is the runtime context shared by every request.
type Context struct {
	BasePath string
	Modules  []string
	Hooks    *Hooks
}

// LoadModules returns the default module list, with the application module
// named in app/module.json first when that file exists and is readable.
func LoadModules(basePath string) []string {
	modules := branding.Modules()
	m, err := manifest.ParseModule(filepath.Join(basePath, "app", manifest.ModuleFile))
	if err != nil || m.Name == "" {
		return modules
	}
	modules = slices.DeleteFunc(modules, func(s string) bool { return s == m.Name || s == manifest.DefaultModuleName })
	return append([]string{m.Name}, modules...)
}

// Provider connects HTTP handling to the render pipeline.
type Provider struct {
	ctx          *Context
	assetBase    string
	assetVersion string
	observers    []Observer
	booted       bool
}

// Option configures a Provider.
type Option func(*Provider)

// WithModules overrides the module list loaded into the Context.
func WithModules(modules ...string) Option {
	return func(p *Provider) {
		p.ctx.Modules = modules
	}
}

// WithAssetBase sets the URL prefix of public assets (default "/").
func WithAssetBase(base string) Option {
	return func(p *Provider) {
		p.assetBase = base
	}
}

// WithAssetVersion sets the cache-busting version appended to runtime scripts.
func WithAssetVersion(v string) Option {
	return func(p *Provider) {
		p.assetVersion = v
	}
}

// WithObservers registers additional hook observers at boot.
func WithObservers(obs ...Observer) Option {
	return func(p *Provider) {
		p.observers = append(p.observers, obs...)
	}
}

// New creates a Provider for the project at basePath.
func New(basePath string, opts ...Option) *Provider {
	p := &Provider{
		ctx: &Context{
			BasePath: basePath,
			Modules:  LoadModules(basePath),
			Hooks:    NewHooks(),
		},
		assetBase:    "/",
		assetVersion: branding.RuntimeVersion(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Context returns the runtime context.
func (p *Provider) Context() *Context { return p.ctx }

// Boot registers the footer observer followed by the configured observers.
// Calling Boot more than once is a no-op.
func (p *Provider) Boot() {
	if p.booted {
		return
	}
	p.booted = true
	p.ctx.Hooks.Register(HookLayoutFooter, p.onFooter)
	for _, o := range p.observers {
		p.ctx.Hooks.Register(o.Hook, o.Fn)
	}
}

// NewContainer creates a RenderContainer for r and fires HookCreateContainer.
func (p *Provider) NewContainer(r *http.Request) (*RenderContainer, error) {
	c := &RenderContainer{Request: r}
	if err := p.ctx.Hooks.Fire(HookCreateContainer, Params{"container": c}); err != nil {
		return nil, err
	}
	return c, nil
}

// Middleware attaches a RenderContainer to every request.
func (p *Provider) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := p.NewContainer(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		r = r.WithContext(WithContainer(r.Context(), c))
		c.Request = r
		next.ServeHTTP(w, r)
	})
}

// Route wraps a handler registered on a ServeMux. When the route matches it
// records the route, creates the default layout and fires HookRouteBefore.
func (p *Provider) Route(name string, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := FromRequest(r)
		if c == nil {
			var err error
			if c, err = p.NewContainer(r); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			r = r.WithContext(WithContainer(r.Context(), c))
			c.Request = r
		}

		uri := r.Pattern
		if uri == "" {
			uri = r.URL.Path
		}
		c.Route = &RouteModel{URI: uri, Name: name}
		c.CreateLayout(DefaultLayout)

		if err := p.ctx.Hooks.Fire(HookRouteBefore, Params{"container": c}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// RenderFooter fires HookLayoutFooter for c and returns the footer HTML.
func (p *Provider) RenderFooter(c *RenderContainer) (string, error) {
	if err := p.ctx.Hooks.Fire(HookLayoutFooter, Params{"container": c}); err != nil {
		return "", err
	}
	var b strings.Builder
	for _, e := range c.Footer {
		b.WriteString(e.Render())
		b.WriteString("\n")
	}
	return b.String(), nil
}

// ScriptURLs returns the runtime script URLs in load order.
func (p *Provider) ScriptURLs() []string {
	return []string{
		p.asset(scaffold.RuntimeAssetPath, true),
		p.asset(scaffold.PublicAssetsDir+"/runtime.js", true),
		p.asset("public/assets/app.js", false),
	}
}

func (p *Provider) onFooter(params Params) error {
	c, ok := params["container"].(*RenderContainer)
	if !ok {
		return errors.New("footer hook: missing container")
	}
	for _, u := range p.ScriptURLs() {
		c.AppendFooter(Element{Name: "script", Attrs: map[string]string{"src": u}})
	}
	return nil
}

// asset maps a project-relative public path to its URL.
func (p *Provider) asset(publicPath string, versioned bool) string {
	rel := strings.TrimPrefix(publicPath, "public/")
	u := path.Join("/", p.assetBase, rel)
	if strings.HasPrefix(p.assetBase, "http://") || strings.HasPrefix(p.assetBase, "https://") {
		u = strings.TrimRight(p.assetBase, "/") + "/" + rel
	}
	if versioned && p.assetVersion != "" {
		u = fmt.Sprintf("%s?_=%s", u, p.assetVersion)
	}
	return u
}

// PublicDir returns the project's public directory, the web root that
// serves the scaffolded and published assets.
func (p *Provider) PublicDir() string {
	return filepath.Join(p.ctx.BasePath, "public")
}

// AssetHandler serves files from the public directory.
func (p *Provider) AssetHandler() http.Handler {
	return http.FileServer(http.Dir(p.PublicDir()))
}

// Ready reports whether the vendored runtime exists under the public directory.
func (p *Provider) Ready() bool {
	_, err := os.Stat(filepath.Join(p.ctx.BasePath, filepath.FromSlash(scaffold.RuntimeAssetPath)))
	return err == nil
}
