// Package formbuilder separates how a form is assembled from what medium it
// is emitted in. CreateLoginForm drives any Builder through a fixed sequence
// of calls; HTMLBuilder turns those calls into an HTML5 document and
// TerminalBuilder into a bordered text panel.
package formbuilder
