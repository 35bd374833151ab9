package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/WinchoCode/Qpurpuse-API/pkg/translator"
)

// LanguageMiddleware sets the response language from the Accept-Language
// header. Raw header value for now, fallback to en.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
