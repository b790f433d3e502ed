package views

import "fmt"

// ViewMode — закрытый набор экранов терминала. Активен ровно один.
type ViewMode string

const (
	Landing       ViewMode = "LANDING"
	Research      ViewMode = "RESEARCH"
	Analytics     ViewMode = "ANALYTICS"
	Documents     ViewMode = "DOCUMENTS"
	Communication ViewMode = "COMMUNICATION"
	Market        ViewMode = "MARKET"
	Roadmap       ViewMode = "ROADMAP"

	// Auth — псевдоэкран: запрошенный режим недоступен без сессии.
	Auth ViewMode = "AUTH"
)

// DefaultAfterLogin — экран по умолчанию после входа/восстановления сессии.
const DefaultAfterLogin = Research

func Parse(s string) (ViewMode, error) {
	switch v := ViewMode(s); v {
	case Landing, Research, Analytics, Documents, Communication, Market, Roadmap:
		return v, nil
	}
	return "", fmt.Errorf("unknown view mode: %q", s)
}

// Resolve — чистая функция маршрутизатора: (наличие сессии, выбранный
// режим) -> экран. Без сессии доступен только Landing, всё остальное
// уводит на аутентификацию; запрошенный режим при этом игнорируется.
func Resolve(hasSession bool, mode ViewMode) ViewMode {
	if !hasSession {
		if mode == Landing {
			return Landing
		}
		return Auth
	}
	return mode
}
