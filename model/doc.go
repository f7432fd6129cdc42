// Package model provides the output data model for slide planning.
//
// This package defines the user-facing data structures produced by the
// pagination engine. A lecture script is converted into an ordered list of
// [Page] values, each carrying a content type, a visual [Layout], the text
// placed on it, and an [Evidence] record explaining which heuristics fired
// while the page was built.
//
// # Pages
//
// A [Page] is an accumulator while open and an immutable record once the
// final page number has been assigned:
//
//	p := model.NewPage("知识点", model.PageTypeKnowledge, "曹操")
//	p.AddBullet("曹操作为建安文学领袖", model.IntentShow)
//	p.Finalize()
//
// # Enums
//
// [PageType], [Layout] and [Intent] are closed enums. They marshal to their
// string form so JSON and YAML output stays readable.
package model
