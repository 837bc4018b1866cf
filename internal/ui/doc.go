// Package ui contains the Fyne user interface of the photo browser.
// It renders the search grid, forwards user interactions to the grid
// controller and hosts the share and settings dialogs. All UI strings are
// localized via Localization.
package ui
