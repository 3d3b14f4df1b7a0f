// Package render defines the Renderer role and the Page client that accepts
// any renderer exposing Header, Paragraph and Footer. Concrete renderers live
// in sub-packages (text, markdown) and are discovered through a Registry of
// factories.
package render
