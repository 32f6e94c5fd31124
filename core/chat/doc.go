// Package chat defines the message types exchanged within a conversational
// session: who said what, in a stable order. Higher layers (the message log
// and the session controller) own message identity assignment; this package
// only defines the shapes and their validity rules.
package chat
