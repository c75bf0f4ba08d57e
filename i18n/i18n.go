package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang string

var translations = map[string]map[string]string{
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Stop": {
		"pt": "Parar",
		"es": "Parar",
		"ru": "Стоп",
	},
	"Add": {
		"pt": "Adicionar",
		"es": "Añadir",
		"ru": "Добавить",
	},
	"Delete": {
		"pt": "Excluir",
		"es": "Eliminar",
		"ru": "Удалить",
	},
	"Name": {
		"pt": "Nome",
		"es": "Nombre",
		"ru": "Название",
	},
	"Minutes": {
		"pt": "Minutos",
		"es": "Minutos",
		"ru": "Минуты",
	},
	"Alarm": {
		"pt": "Alarme",
		"es": "Alarma",
		"ru": "Сигнал",
	},
	"Delete timer?": {
		"pt": "Excluir timer?",
		"es": "¿Eliminar temporizador?",
		"ru": "Удалить таймер?",
	},
	"This cannot be undone.": {
		"pt": "Isso não pode ser desfeito.",
		"es": "Esto no se puede deshacer.",
		"ru": "Это действие нельзя отменить.",
	},
	"Time's up!": {
		"pt": "Tempo esgotado!",
		"es": "¡Se acabó el tiempo!",
		"ru": "Время вышло!",
	},
	"completed": {
		"pt": "concluído",
		"es": "completado",
		"ru": "завершено",
	},
	"Total": {
		"pt": "Total",
		"es": "Total",
		"ru": "Всего",
	},
	"No timers yet. Add one below.": {
		"pt": "Nenhum timer ainda. Adicione um abaixo.",
		"es": "Aún no hay temporizadores. Añade uno abajo.",
		"ru": "Пока нет таймеров. Добавьте один ниже.",
	},
}

// SetLang forces the language, overriding detection. Called when the
// settings file carries a language override.
func SetLang(forced string) {
	if forced = strings.TrimSpace(forced); forced != "" {
		lang = forced
	}
}

func init() {
	// Check for override environment variable
	if forcedLang := strings.TrimSpace(os.Getenv("HABITTIMERS_LANG")); forcedLang != "" {
		lang = forcedLang
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		lang = "en"
		return
	}

	if len(userLocales) > 0 {
		locale := userLocales[0]
		if strings.HasPrefix(locale, "pt") {
			lang = "pt"
		} else if strings.HasPrefix(locale, "es") {
			lang = "es"
		} else if strings.HasPrefix(locale, "ru") {
			lang = "ru"
		} else {
			lang = "en"
		}
	} else {
		lang = "en"
	}
}

func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	return lang
}
