package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySearchPlaceholder = "search_placeholder"
	KeyShare             = "share"
	KeyDone              = "done"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyAPIKey            = "api_key"
	KeyPerPage           = "per_page"
	KeyShareDirectory    = "share_directory"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyShareConfirm      = "share_confirm"
	KeySharePhotos       = "share_photos"
	KeyShareFinished     = "share_finished"
	KeyShareFailed       = "share_failed"
	KeySearchFailed      = "search_failed"
	KeyMissingAPIKey     = "missing_api_key"
	KeyMoveHint          = "move_hint"
	KeyMoveFailed        = "move_failed"
	KeyNoResults         = "no_results"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key formatted with args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Flickr Search",
		KeySearchPlaceholder: "Search photos",
		KeyShare:             "Share",
		KeyDone:              "Done",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyAPIKey:            "API Key",
		KeyPerPage:           "Results per Search",
		KeyShareDirectory:    "Share Directory",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyShareConfirm:      "Share %d photos?",
		KeySharePhotos:       "Share Photos",
		KeyShareFinished:     "Photos exported",
		KeyShareFailed:       "Sharing failed",
		KeySearchFailed:      "Search failed",
		KeyMissingAPIKey:     "Set a Flickr API key in Settings",
		KeyMoveHint:          "Tap where the photo should go",
		KeyMoveFailed:        "The photo cannot go there",
		KeyNoResults:         "No photos found",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Поиск Flickr",
		KeySearchPlaceholder: "Поиск фотографий",
		KeyShare:             "Поделиться",
		KeyDone:              "Готово",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyAPIKey:            "Ключ API",
		KeyPerPage:           "Результатов на поиск",
		KeyShareDirectory:    "Папка для отправки",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyShareConfirm:      "Поделиться фотографиями: %d?",
		KeySharePhotos:       "Поделиться фотографиями",
		KeyShareFinished:     "Фотографии экспортированы",
		KeyShareFailed:       "Не удалось поделиться",
		KeySearchFailed:      "Ошибка поиска",
		KeyMissingAPIKey:     "Укажите ключ API Flickr в настройках",
		KeyMoveHint:          "Коснитесь места для фотографии",
		KeyMoveFailed:        "Сюда нельзя переместить фотографию",
		KeyNoResults:         "Фотографии не найдены",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Busca Flickr",
		KeySearchPlaceholder: "Buscar fotos",
		KeyShare:             "Compartilhar",
		KeyDone:              "Concluir",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyAPIKey:            "Chave da API",
		KeyPerPage:           "Resultados por Busca",
		KeyShareDirectory:    "Diretório de Compartilhamento",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyShareConfirm:      "Compartilhar %d fotos?",
		KeySharePhotos:       "Compartilhar Fotos",
		KeyShareFinished:     "Fotos exportadas",
		KeyShareFailed:       "Falha ao compartilhar",
		KeySearchFailed:      "Falha na busca",
		KeyMissingAPIKey:     "Defina uma chave da API do Flickr nas Configurações",
		KeyMoveHint:          "Toque onde a foto deve ficar",
		KeyMoveFailed:        "A foto não pode ir para lá",
		KeyNoResults:         "Nenhuma foto encontrada",
	}
}
