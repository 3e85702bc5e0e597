// Package ui contains the Bubble Tea program that shows and drives a panel
// workspace. The Model type focuses on message orchestration while dedicated
// helpers own the board, the palette, input and rendering.
//
// Frame flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each message is
//     routed through a typed handler registry so it is handled by one focused
//     function (board keys, palette navigation, loader results, frame ticks).
//   - Handlers never change placements themselves. Board keys and palette
//     actions submit requests to the workspace queue; finishUpdate then drives
//     the workspace once, which refreshes floating geometry and applies the
//     whole queue in order. Diagnostics from that frame land in the status
//     line.
//   - A frame.Clock, when present, produces ticks so the workspace is also
//     driven when no input arrives.
//
// Palette:
//   - Opening the palette snapshots the ledger and tab groups into a
//     menu.Context. Loaders and actions run as commands against that
//     snapshot; leaf references they capture may be stale by the time the
//     requests apply, and the engine reports those rather than acting on
//     them.
//   - Palette level state lives in internal/ui/state.Level, which tracks
//     items, filtering and viewport calculations. Actions execute through the
//     internal/ui/command bus.
package ui
