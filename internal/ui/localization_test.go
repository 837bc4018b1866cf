package ui

import "testing"

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	if got := l.GetCurrentLanguage(); got != "en" {
		t.Errorf("Expected default language en, got %s", got)
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeyShare); got != "Поделиться" {
		t.Errorf("Expected Russian share label, got %s", got)
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if got := l.GetCurrentLanguage(); got != "ru" {
		t.Errorf("Expected language to stay ru, got %s", got)
	}

	l.SetLanguage("system")
	if got := l.GetCurrentLanguage(); got != "en" {
		t.Errorf("Expected system to map to en, got %s", got)
	}
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}
}

func TestLocalization_AllKeysTranslated(t *testing.T) {
	l := NewLocalization()

	for key := range l.texts["en"] {
		for _, lang := range []string{"ru", "pt"} {
			if _, ok := l.texts[lang][key]; !ok {
				t.Errorf("Missing %s translation for %s", lang, key)
			}
		}
	}
}

func TestLocalization_Format(t *testing.T) {
	l := NewLocalization()

	if got := l.Format(KeyShareConfirm, 3); got != "Share 3 photos?" {
		t.Errorf("Unexpected formatted text: %s", got)
	}
}
