package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyLoading         = "loading"
	KeyLoadingFailed   = "loading_failed"
	KeyRetry           = "retry"
	KeySettings        = "settings"
	KeyBaseURL         = "base_url"
	KeyRequestTimeout  = "request_timeout"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyRestartRequired = "restart_required"
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

// SetLanguage sets the current language. Unknown languages are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
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
	if text, found := l.texts["en"][key]; found {
		return text
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Mars Photos",
		KeyLoading:         "Loading...",
		KeyLoadingFailed:   "Failed to load",
		KeyRetry:           "Retry",
		KeySettings:        "Settings",
		KeyBaseURL:         "Service URL",
		KeyRequestTimeout:  "Request timeout (seconds)",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved",
		KeyRestartRequired: "Changes take effect after restarting the app.",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Фото с Марса",
		KeyLoading:         "Загрузка...",
		KeyLoadingFailed:   "Не удалось загрузить",
		KeyRetry:           "Повторить",
		KeySettings:        "Настройки",
		KeyBaseURL:         "Адрес сервиса",
		KeyRequestTimeout:  "Таймаут запроса (секунды)",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeySettingsSaved:   "Настройки сохранены",
		KeyRestartRequired: "Изменения вступят в силу после перезапуска.",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Fotos de Marte",
		KeyLoading:         "Carregando...",
		KeyLoadingFailed:   "Falha ao carregar",
		KeyRetry:           "Tentar novamente",
		KeySettings:        "Configurações",
		KeyBaseURL:         "URL do serviço",
		KeyRequestTimeout:  "Tempo limite (segundos)",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeySettingsSaved:   "Configurações salvas",
		KeyRestartRequired: "As alterações terão efeito após reiniciar o app.",
	}
}
