// Package i18n holds the user-facing strings of the trainer in every
// supported locale.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

type Key string

const (
	PasswordsMismatch    Key = "passwords_mismatch"
	ConnectionError      Key = "connection_error"
	Welcome              Key = "welcome"
	AuthRequired         Key = "auth_required"
	InvalidRequest       Key = "invalid_request"
	LoginSucceeded       Key = "login_succeeded"
	LoggedOut            Key = "logged_out"
	InvalidCredentials   Key = "invalid_credentials"
	ProfileUpdated       Key = "profile_updated"
	ProfileUpdateFailed  Key = "profile_update_failed"
	EmailTaken           Key = "email_taken"
	PasswordChanged      Key = "password_changed"
	PasswordChangeFailed Key = "password_change_failed"
	CurrentPasswordWrong Key = "current_password_wrong"
	StatsUnavailable     Key = "stats_unavailable"
	TestNotFound         Key = "test_not_found"
	TestSaveFailed       Key = "test_save_failed"
	RankExpert           Key = "rank_expert"
	RankAdvanced         Key = "rank_advanced"
	TooManyRequests      Key = "too_many_requests"
	Forbidden            Key = "forbidden"
	SubjectsOnly         Key = "subjects_only"
	UserCreated          Key = "user_created"
	UserCreateFailed     Key = "user_create_failed"
	UsernameTaken        Key = "username_taken"
	UserNotFound         Key = "user_not_found"
	UserDeleted          Key = "user_deleted"
	UserDeleteFailed     Key = "user_delete_failed"
	SelfDelete           Key = "self_delete"
	DeleteNotAllowed     Key = "delete_not_allowed"
	TestCreated          Key = "test_created"
	TestCreateFailed     Key = "test_create_failed"
	TestDeleted          Key = "test_deleted"
	TestDeleteFailed     Key = "test_delete_failed"
	InvalidTest          Key = "invalid_test"
	HistoryUnavailable   Key = "history_unavailable"
	UsersUnavailable     Key = "users_unavailable"
)

const (
	English = "en"
	Russian = "ru"
)

var translations = map[string]map[Key]string{
	English: {
		PasswordsMismatch:    "Passwords do not match",
		ConnectionError:      "Connection error",
		Welcome:              "Welcome, %s!",
		AuthRequired:         "Authorization required",
		InvalidRequest:       "Invalid request",
		LoginSucceeded:       "Signed in successfully!",
		LoggedOut:            "Signed out",
		InvalidCredentials:   "Invalid credentials!",
		ProfileUpdated:       "Profile updated successfully!",
		ProfileUpdateFailed:  "Failed to update profile",
		EmailTaken:           "This email is already in use",
		PasswordChanged:      "Password changed successfully!",
		PasswordChangeFailed: "Failed to change password",
		CurrentPasswordWrong: "Current password is incorrect",
		StatsUnavailable:     "Statistics are unavailable",
		TestNotFound:         "Test not found",
		TestSaveFailed:       "Failed to save the test result",
		RankExpert:           "Expert",
		RankAdvanced:         "Advanced",
		TooManyRequests:      "Too many requests",
		Forbidden:            "Insufficient permissions",
		SubjectsOnly:         "You can only create test subjects",
		UserCreated:          "User created successfully!",
		UserCreateFailed:     "Failed to create user",
		UsernameTaken:        "This username is already taken",
		UserNotFound:         "User not found",
		UserDeleted:          "User deleted",
		UserDeleteFailed:     "Failed to delete user",
		SelfDelete:           "You cannot delete your own account",
		DeleteNotAllowed:     "Insufficient permissions to delete this user",
		TestCreated:          "Test created successfully!",
		TestCreateFailed:     "Failed to create the test",
		TestDeleted:          "Test deleted successfully!",
		TestDeleteFailed:     "Failed to delete the test",
		InvalidTest:          "The test is filled in incorrectly",
		HistoryUnavailable:   "Test history is unavailable",
		UsersUnavailable:     "The user list is unavailable",
	},
	Russian: {
		PasswordsMismatch:    "Пароли не совпадают",
		ConnectionError:      "Ошибка соединения",
		Welcome:              "Добро пожаловать, %s!",
		AuthRequired:         "Требуется авторизация",
		InvalidRequest:       "Некорректный запрос",
		LoginSucceeded:       "Вход выполнен успешно!",
		LoggedOut:            "Вы вышли из системы",
		InvalidCredentials:   "Неверные учетные данные!",
		ProfileUpdated:       "Профиль обновлен успешно!",
		ProfileUpdateFailed:  "Ошибка при обновлении профиля",
		EmailTaken:           "Этот email уже используется",
		PasswordChanged:      "Пароль изменен успешно!",
		PasswordChangeFailed: "Ошибка при изменении пароля",
		CurrentPasswordWrong: "Текущий пароль неверен",
		StatsUnavailable:     "Статистика недоступна",
		TestNotFound:         "Тест не найден",
		TestSaveFailed:       "Ошибка при сохранении результата",
		RankExpert:           "Эксперт",
		RankAdvanced:         "Продвинутый",
		TooManyRequests:      "Слишком много запросов",
		Forbidden:            "Недостаточно прав",
		SubjectsOnly:         "Вы можете создавать только испытуемых",
		UserCreated:          "Пользователь создан успешно!",
		UserCreateFailed:     "Ошибка при создании пользователя",
		UsernameTaken:        "Это имя пользователя уже занято",
		UserNotFound:         "Пользователь не найден",
		UserDeleted:          "Пользователь удален",
		UserDeleteFailed:     "Ошибка при удалении пользователя",
		SelfDelete:           "Нельзя удалить собственный аккаунт",
		DeleteNotAllowed:     "Недостаточно прав для удаления этого пользователя",
		TestCreated:          "Тест создан успешно!",
		TestCreateFailed:     "Ошибка при создании теста",
		TestDeleted:          "Тест удален успешно!",
		TestDeleteFailed:     "Ошибка при удалении теста",
		InvalidTest:          "Тест заполнен неверно",
		HistoryUnavailable:   "История тестов недоступна",
		UsersUnavailable:     "Список пользователей недоступен",
	},
}

var (
	tags    = map[string]language.Tag{English: language.English, Russian: language.Russian}
	matcher = language.NewMatcher([]language.Tag{language.English, language.Russian})

	printers = buildPrinters()
)

// buildPrinters registers every key in every locale. Keys a locale lacks
// are registered with the English text.
func buildPrinters() map[string]*message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for locale, tag := range tags {
		for key, text := range translations[English] {
			if t, ok := translations[locale][key]; ok {
				text = t
			}
			if err := b.SetString(tag, string(key), text); err != nil {
				panic(err)
			}
		}
	}

	printers := make(map[string]*message.Printer, len(tags))
	for locale, tag := range tags {
		printers[locale] = message.NewPrinter(tag, message.Catalog(b))
	}
	return printers
}

// Catalog resolves message keys for one locale. The zero value is English.
type Catalog struct {
	locale string
}

// New returns the catalog that best matches locale, such as "ru" or
// "ru-RU", falling back to English.
func New(locale string) Catalog {
	tag, err := language.Parse(locale)
	if err != nil {
		return Catalog{locale: English}
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Catalog{locale: English}
	}
	base, _ := []language.Tag{language.English, language.Russian}[idx].Base()
	return Catalog{locale: base.String()}
}

func (c Catalog) Locale() string {
	if c.locale == "" {
		return English
	}
	return c.locale
}

// T returns the text of key. Unknown keys come back as the key itself.
func (c Catalog) T(key Key) string {
	return printers[c.Locale()].Sprintf(string(key))
}

func (c Catalog) Tf(key Key, args ...interface{}) string {
	return printers[c.Locale()].Sprintf(string(key), args...)
}

// Supported reports whether locale has its own translations.
func Supported(locale string) bool {
	_, ok := tags[locale]
	return ok
}
