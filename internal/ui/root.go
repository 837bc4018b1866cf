package ui

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/flickr-search/internal/config"
	"github.com/ytget/flickr-search/internal/flickr"
	"github.com/ytget/flickr-search/internal/grid"
)

// Options wires the services the UI drives
type Options struct {
	Source   flickr.Source
	Exporter grid.Sharer
	Settings *config.Settings
	Log      zerolog.Logger

	// Dispatch runs completions on the UI thread, fyne.Do when nil
	Dispatch grid.Dispatcher
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	log          zerolog.Logger
	dispatch     grid.Dispatcher

	controller *grid.Controller
	grid       *PhotoGrid
	shareSheet *ShareSheet

	searchEntry *widget.Entry
	shareBtn    *widget.Button
	countLabel  *widget.Label
	settingsBtn *widget.Button
	topBar      *fyne.Container

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSeq       int
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, opts Options) *RootUI {
	dispatch := opts.Dispatch
	if dispatch == nil {
		dispatch = fyne.Do
	}

	localization := NewLocalization()
	localization.SetLanguage(opts.Settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     opts.Settings,
		localization: localization,
		mobile:       NewMobileUI(),
		log:          opts.Log,
		dispatch:     dispatch,
	}

	ui.shareSheet = NewShareSheet(window, opts.Exporter, localization, opts.Log)
	ui.shareSheet.OnFinished(func(err error) {
		ui.dispatch(func() { ui.onShareFinished(err) })
	})

	ui.controller = grid.NewController(opts.Source, ui.shareSheet, dispatch, opts.Log)
	ui.controller.OnModeChanged(func(grid.Mode) { ui.updateShareControls() })
	ui.controller.OnSelectionChanged(func(int) { ui.updateShareControls() })
	ui.controller.OnSearchFailed(ui.onSearchFailed)

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetIcon(LoadAppIcon())

	ui.setupUI()
	return ui
}

// Controller returns the grid controller
func (ui *RootUI) Controller() *grid.Controller {
	return ui.controller
}

// Grid returns the photo grid widget
func (ui *RootUI) Grid() *PhotoGrid {
	return ui.grid
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnSubmitted = ui.onSearchSubmitted

	ui.shareBtn = ui.mobile.CreateButton(ui.localization.GetText(KeyShare), ui.onShareTapped)
	ui.countLabel = widget.NewLabel("")
	ui.countLabel.Hide()

	ui.settingsBtn = ui.mobile.CreateButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.grid = NewPhotoGrid(ui.controller, ui.localization, ui.log)
	ui.grid.OnNotice(func(message string) { ui.showNotification(message) })
	ui.grid.SetViewportFunc(func() fyne.Size {
		return ui.window.Canvas().Size()
	})

	ui.topBar = container.NewBorder(
		nil,
		nil,
		ui.settingsBtn,
		container.NewHBox(ui.grid.SearchIndicator(), ui.countLabel, ui.shareBtn),
		ui.searchEntry,
	)

	// Notification panel under the search bar, hidden by default
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Truncation = fyne.TextTruncateEllipsis
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	top := container.NewVBox(ui.topBar, ui.notificationContainer)

	// The expanded photo must stay clear of the search bar
	layout := ui.controller.Layout()
	layout.TopInset = ui.mobile.TopBarHeight(ui.topBar)
	ui.controller.SetLayout(layout)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.grid))
	ui.updateShareControls()

	ui.log.Debug().Msg("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	languages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(code)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.updateShareControls()
	ui.grid.ReloadData()
}

// onSearchSubmitted sends the entered term to the controller
func (ui *RootUI) onSearchSubmitted(term string) {
	if ui.settings.GetAPIKey() == "" {
		ui.showNotification(ui.localization.GetText(KeyMissingAPIKey))
		return
	}
	if ui.controller.Search(term) {
		ui.searchEntry.SetText("")
	}
}

func (ui *RootUI) onSearchFailed(term string, err error) {
	message := ui.localization.GetText(KeySearchFailed)
	if errors.Is(err, flickr.ErrMissingAPIKey) {
		message = ui.localization.GetText(KeyMissingAPIKey)
	}
	ui.showNotification(fmt.Sprintf("%s: %s", message, term))
}

// onShareTapped enters sharing mode, shares the selection, or leaves sharing
// mode when nothing is selected
func (ui *RootUI) onShareTapped() {
	if !ui.controller.Sharing() {
		ui.controller.SetSharing(true)
		return
	}
	if ui.controller.Share() {
		return
	}
	ui.controller.SetSharing(false)
}

func (ui *RootUI) onShareFinished(err error) {
	if err != nil {
		ui.log.Warn().Err(err).Msg("share failed")
		ui.showNotification(ui.localization.GetText(KeyShareFailed))
		return
	}
	ui.showNotification(ui.localization.GetText(KeyShareFinished))
}

// updateShareControls reflects the mode and selection in the top bar
func (ui *RootUI) updateShareControls() {
	if ui.shareBtn == nil {
		return
	}

	if !ui.controller.Sharing() {
		ui.shareBtn.SetText(ui.localization.GetText(KeyShare))
		ui.shareBtn.Importance = widget.MediumImportance
		ui.countLabel.Hide()
		ui.shareBtn.Refresh()
		return
	}

	count := ui.controller.SelectedCount()
	if count == 0 {
		ui.shareBtn.SetText(ui.localization.GetText(KeyDone))
	} else {
		ui.shareBtn.SetText(ui.localization.GetText(KeyShare))
	}
	ui.shareBtn.Importance = widget.HighImportance
	ui.countLabel.SetText(fmt.Sprintf(SelectedCountFormat, count))
	ui.countLabel.Show()
	ui.shareBtn.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		ui.showNotification(ui.localization.GetText(KeySettingsSaved))
	})
}

// showNotification displays a message under the search bar and hides it
// after a while. Must be called on the UI thread.
func (ui *RootUI) showNotification(message string) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}

	ui.notificationSeq++
	seq := ui.notificationSeq

	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()

	time.AfterFunc(NotificationAutoHide, func() {
		ui.dispatch(func() { ui.hideNotification(seq) })
	})
}

// hideNotification hides the panel unless a newer message replaced it
func (ui *RootUI) hideNotification(seq int) {
	if seq != ui.notificationSeq {
		return
	}
	ui.notificationContainer.Hide()
}

// NotificationText returns the message currently shown, or empty when hidden
func (ui *RootUI) NotificationText() string {
	if ui.notificationContainer == nil || !ui.notificationContainer.Visible() {
		return ""
	}
	return ui.notificationLabel.Text
}
