// Package dialog implements pursuits: the scripted, navigable conversations a
// player holds with world entities.
//
// A Sequence is an ordered list of dialog nodes. Nodes come in five kinds.
// Simple, Options and Text nodes are rendered to the client; Jump and
// Function nodes are hidden steps that redirect the conversation or run a
// script expression and move on. Sequences registered in the process-wide
// Catalog are global and numbered from 1 below SharedThreshold; sequences
// owned by an entity live in its LocalCatalog and are numbered above it.
//
// Each user owns a State. The state machine is either idle or in a dialog
// with an associate (the entity fronting the conversation), an active
// sequence and an index into it. Navigation from the client may only move the
// index by one step; anything else ends the dialog. State is never locked:
// it is mutated only from its owner's serialized packet worker.
//
// Env bundles the collaborators a dialog needs while running: the global
// catalog, the async-session directory, the script engine and the message
// printer. Rendering, responses, navigation and the main menu are Env
// methods so that nothing in this package relies on global registries.
package dialog
