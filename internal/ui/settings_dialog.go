package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/flickr-search/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	apiKeyEntry    *widget.Entry
	perPageEntry   *widget.Entry
	shareDirEntry  *widget.Entry
	languageSelect *widget.Select

	languageCodes map[string]string // display name -> code
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.apiKeyEntry = widget.NewPasswordEntry()
	sd.apiKeyEntry.SetPlaceHolder("0123456789abcdef")

	sd.perPageEntry = widget.NewEntry()
	sd.perPageEntry.SetPlaceHolder("1-100")

	sd.shareDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	shareDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.shareDirEntry)

	// Language selection shows display names, stores codes
	sd.languageCodes = make(map[string]string)
	names := make([]string, 0)
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyAPIKey)+":"),
		sd.apiKeyEntry,

		widget.NewLabel(l.GetText(KeyPerPage)+":"),
		sd.perPageEntry,

		widget.NewLabel(l.GetText(KeyShareDirectory)+":"),
		shareDirRow,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiKeyEntry.SetText(sd.settings.GetAPIKey())
	sd.perPageEntry.SetText(strconv.Itoa(sd.settings.GetPerPage()))
	sd.shareDirEntry.SetText(sd.settings.GetShareDirectory())

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
			break
		}
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.shareDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetAPIKey(sd.apiKeyEntry.Text)

	if perPage, err := strconv.Atoi(sd.perPageEntry.Text); err == nil {
		sd.settings.SetPerPage(perPage)
	}

	if dir := sd.shareDirEntry.Text; dir != "" {
		sd.settings.SetShareDirectory(dir)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
