package htmlslice

import "go.uber.org/zap"

// SectionFunc is a deferred content producer for a named section. The
// closure writes through the defining slice's write primitives, so it
// follows that slice's render target wherever composition redirects it.
type SectionFunc func() error

// DefineSection registers a deferred section producer under name. Compiled
// bodies call this once per section block they contain. Registering the
// same name twice in one render pass is a template-authoring error.
func (s *Slice) DefineSection(name string, fn SectionFunc) error {
	if s.sections == nil {
		s.sections = make(map[string]SectionFunc)
	}
	if _, exists := s.sections[name]; exists {
		return NewDuplicateSectionError(name)
	}
	s.sections[name] = fn
	s.log().Debug(LogMsgSectionDefined, zap.String(LogFieldSection, name))
	return nil
}

// SectionDefined reports whether a section producer is registered under
// name. Layout bodies use it to emit alternative markup for absent optional
// sections.
func (s *Slice) SectionDefined(name string) bool {
	_, ok := s.sections[name]
	return ok
}

// RenderSection invokes the section producer registered under name. A
// required section with no producer is an error: every content slice using
// this layout must define it. An optional missing section is a no-op.
func (s *Slice) RenderSection(name string, required bool) error {
	fn, ok := s.sections[name]
	if !ok {
		if required {
			return NewSectionNotFoundError(name)
		}
		return nil
	}
	s.log().Debug(LogMsgSectionRendered,
		zap.String(LogFieldSection, name),
		zap.Bool(LogFieldRequired, required))
	return fn()
}
