package bot

import "errors"

var (
	// ErrMalformedInput marks input the bot cannot parse, such as a mention
	// without a group or an unknown callback payload.
	ErrMalformedInput = errors.New("malformed input")
	// ErrNoSelection marks navigation in a chat that has not selected a group.
	ErrNoSelection = errors.New("no group selected")
)

// User-visible texts.
const (
	helpText = "Привет! Отправь сообщение вида '@%s группа', чтобы получить расписание, " +
		"или используй inline поиск (в любом чате набери @%s и выбери группу)."

	msgNeedGroup       = "Укажи группу после упоминания бота."
	msgGroupNotFound   = "Группа не найдена."
	msgFetchFailed     = "Ошибка: не удалось получить расписание (API вернуло ошибку)."
	msgSelectFirst     = "Сначала отправьте группу."
	msgNavFetchFailed  = "Ошибка API: не удалось получить расписание."
	msgInlineFailedFmt = "Ошибка: не удалось загрузить расписание для %s."
	msgRateLimited     = "Слишком часто, попробуйте чуть позже."
	msgGroupsHeader    = "Доступные группы:"
	msgStatsFmt        = "Чатов: %d\nГрупп: %d"

	btnPrev = "⬅️ Назад"
	btnNext = "Вперёд ➡️"

	defaultBotUsername = "MIREARTU_bot"
)
