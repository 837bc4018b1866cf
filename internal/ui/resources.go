package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "flickr-search.png"
)

// LoadAppIcon loads the window icon from the working directory and falls
// back to the stock search icon
func LoadAppIcon() fyne.Resource {
	res, err := fyne.LoadResourceFromPath(AppIcon)
	if err != nil {
		return theme.SearchIcon()
	}
	return res
}
