// Package template compiles the localized handlebars bodies of a bundle
// into renderable templates.
//
// Every body is wrapped in the shared "layout" partial before compilation,
// so all emails share a common outer document shape without each template
// author repeating it. Inside the layout the body is addressable as the
// reserved "content" partial:
//
//	<html>
//	  <head><title>{{title}}</title></head>
//	  <body>{{> content}}</body>
//	</html>
//
// Compilation binds the full partial registry and the caller-injected
// helper registry to each root, so any partial or helper is addressable by
// name from any body. One compiled root exists per (template, language)
// pair, produced at load time and reused by every render.
package template
