// Package i18n provides internationalization support for cubit messages.
package i18n

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Language represents a supported language
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

var (
	mu          sync.RWMutex
	currentLang Language
	once        sync.Once
)

// Init initializes the i18n system by detecting the system language.
// This is called automatically on first use, but can be called explicitly.
func Init() {
	once.Do(func() {
		lang := detectLanguage()
		mu.Lock()
		currentLang = lang
		mu.Unlock()
	})
}

// SetLanguage sets the current language manually.
// Detection runs first so a later Init cannot override the choice.
func SetLanguage(lang Language) {
	Init()
	mu.Lock()
	currentLang = lang
	mu.Unlock()
}

// GetLanguage returns the current language.
func GetLanguage() Language {
	Init()
	mu.RLock()
	defer mu.RUnlock()
	return currentLang
}

// T translates a message key to the current language.
// If the key is not found, returns the key itself.
// Supports format arguments like fmt.Sprintf.
func T(key string, args ...any) string {
	var messages map[string]string
	switch GetLanguage() {
	case LangChinese:
		messages = zhMessages
	default:
		messages = enMessages
	}

	template, ok := messages[key]
	if !ok {
		// Fallback to English
		template, ok = enMessages[key]
		if !ok {
			return key
		}
	}

	if len(args) > 0 {
		return fmt.Sprintf(template, args...)
	}
	return template
}

// ParseLanguage parses a language code such as "zh_CN.UTF-8", "zh-CN" or "en".
// It returns "" when the code names no supported language.
func ParseLanguage(code string) Language {
	code = strings.ToLower(strings.TrimSpace(code))

	if strings.HasPrefix(code, "zh") {
		return LangChinese
	}
	if strings.HasPrefix(code, "en") {
		return LangEnglish
	}
	return ""
}

// detectLanguage detects the system language from the environment.
func detectLanguage() Language {
	for _, envVar := range []string{"CUBIT_LANG", "LANG", "LC_ALL", "LANGUAGE"} {
		if lang := os.Getenv(envVar); lang != "" {
			if detected := ParseLanguage(lang); detected != "" {
				return detected
			}
		}
	}
	return LangEnglish
}
