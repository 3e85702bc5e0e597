// Package dock moves panels between the tile tree, the floating window set and
// the closed state while keeping the placement ledger the single record of
// where each panel lives.
//
// Flow per frame:
//   - UI code holds a Submitter and only appends Requests while it handles a
//     message. Nothing is mutated at submission time.
//   - After the message is handled the owner calls Engine.Drive once. Drive
//     first copies window geometry the user changed between frames into the
//     ledger, then drains the queue and applies every request in submission
//     order. A later request sees the state left by earlier ones.
//   - Each transition touches the tree, the window set and the ledger together
//     or not at all. Failures roll back whatever already changed and come back
//     as Diagnostic values; nothing panics.
//
// Docking destinations come from SelectTarget: an explicit container, then the
// container the panel last left, then the first tab group in traversal order,
// then a new tab group at the root.
package dock
