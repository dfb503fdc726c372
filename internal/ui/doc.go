// Package ui renders the pitch deck as a Bubble Tea program.
//
// The page shell (PageModel) lays the whole deck out as one tall document inside a
// viewport, under a fixed navigation bar:
//   - Navigation: one control per section; activating it sets the active section
//     and smooth-scrolls to the section's anchor line.
//   - Scroll observer: a subscription on the page's scroll.Feed that flips the
//     Scrolled flag used for the nav bar style. It never changes the active section.
//   - Keybinds: single keys plus SPC-prefixed leader sequences, with a transient
//     help bar while a sequence is pending.
//   - Help sheet: a View listing every binding, drawn in place of the page body.
package ui
