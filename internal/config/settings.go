package config

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/flickr-search/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAPIKey         = "flickr_api_key"
	KeyPerPage        = "results_per_page"
	KeyShareDirectory = "share_directory"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultShareSubdir   = "Flickr Search"
	fallbackShareBaseDir = "/tmp"
)

// Settings manages user-editable configuration stored in Fyne preferences.
// Values that were never set fall back to the startup Config.
type Settings struct {
	app      fyne.App
	defaults *Config
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App, defaults *Config) *Settings {
	if defaults == nil {
		defaults = Default()
	}
	return &Settings{app: app, defaults: defaults}
}

// GetAPIKey returns the photo service API key
func (s *Settings) GetAPIKey() string {
	key := strings.TrimSpace(s.app.Preferences().String(KeyAPIKey))
	if key == "" {
		return s.defaults.Flickr.APIKey
	}
	return key
}

// SetAPIKey stores the photo service API key
func (s *Settings) SetAPIKey(key string) {
	s.app.Preferences().SetString(KeyAPIKey, strings.TrimSpace(key))
}

// GetPerPage returns the number of results requested per search
func (s *Settings) GetPerPage() int {
	value := s.app.Preferences().Int(KeyPerPage)
	if value <= 0 {
		return s.defaults.Flickr.PerPage
	}
	return value
}

// SetPerPage sets the number of results per search, clamped to 1..MaxPerPage
func (s *Settings) SetPerPage(count int) {
	if count < 1 {
		count = 1
	}
	if count > MaxPerPage {
		count = MaxPerPage
	}
	s.app.Preferences().SetInt(KeyPerPage, count)
}

// GetShareDirectory returns the directory shared photos are exported to
func (s *Settings) GetShareDirectory() string {
	dir := s.app.Preferences().String(KeyShareDirectory)
	if dir != "" {
		return dir
	}
	if s.defaults.Share.Directory != "" {
		return s.defaults.Share.Directory
	}

	base, err := platform.GetHomePicturesDir()
	if err != nil {
		base = fallbackShareBaseDir
	}
	dir = filepath.Join(base, DefaultShareSubdir)
	s.SetShareDirectory(dir)
	return dir
}

// SetShareDirectory sets the share export directory
func (s *Settings) SetShareDirectory(dir string) {
	s.app.Preferences().SetString(KeyShareDirectory, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
