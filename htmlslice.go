// Package htmlslice is the runtime for precompiled HTML view templates
// ("slices"). A slice renders itself into an output sink - a growable byte
// buffer or any io.Writer - optionally composing with a parent layout slice
// and named sections, with all dynamic output HTML-encoded through a
// pluggable encoding policy.
//
// The template compiler emits one Go type per template. Each type embeds
// Slice and implements Execute, calling only the write, section and flush
// primitives to touch the active sink:
//
//	type HelloPage struct {
//	    htmlslice.Slice
//	    Name string
//	}
//
//	func (p *HelloPage) Execute(ctx context.Context) error {
//	    if err := p.WriteLiteral("<h1>Hello, "); err != nil {
//	        return err
//	    }
//	    if err := p.Write(p.Name); err != nil {
//	        return err
//	    }
//	    return p.WriteLiteral("!</h1>")
//	}
//
// # Rendering
//
// Render into a byte buffer, a writer, or straight to a string:
//
//	html, err := htmlslice.RenderString(ctx, &HelloPage{Name: "<Alice>"})
//	// html: "<h1>Hello, &lt;Alice&gt;!</h1>"
//
// # Layouts and sections
//
// A slice declares its layout by identifier; the runtime captures the
// slice's body, instantiates the layout through the definition registry,
// and renders the layout around the captured content. The layout places the
// body with RenderBody and named blocks with RenderSection:
//
//	htmlslice.MustRegister(htmlslice.SliceDefinition{
//	    Identifier: "layouts/main",
//	    Factory:    func() htmlslice.Renderer { return new(MainLayout) },
//	})
//
//	func NewArticlePage() *ArticlePage {
//	    p := new(ArticlePage)
//	    p.SetLayout("layouts/main")
//	    return p
//	}
//
// Content slices define sections with DefineSection during body execution;
// layouts render them in any order, at any position. Layouts may declare
// layouts of their own; composition nests to arbitrary depth.
//
// Slice instances are single-use: one instance, one render pass. The only
// process-wide state is the definition registry and the internal buffer
// pools.
package htmlslice
