// Package i18n provides internationalization support for the box picker service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator maps message keys to translated messages per locale.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{messages: defaultMessages}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in the given locale. Unknown locales
// and untranslated keys fall back to the default locale; an unknown key is
// returned as-is so the caller still gets a usable message.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale derives the response locale from the Accept-Language header. Only
// the first (highest priority) language is considered; its base language must
// be one the translator supports.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	// "pt-BR,pt;q=0.9,en;q=0.8" -> "pt-br" -> "pt"
	first, _, _ := strings.Cut(header, ",")
	lang, _, _ := strings.Cut(strings.TrimSpace(first), ";")
	lang = strings.ToLower(lang)
	if base, _, found := strings.Cut(lang, "-"); found {
		lang = base
	}

	if _, ok := defaultMessages[lang]; ok {
		return lang
	}
	return DefaultLocale
}

var defaultMessages = map[string]map[string]string{
	"en": {
		"error.invalid_request":      "Invalid request",
		"error.invalid_request_body": "Invalid request body",
		"error.internal_error":       "An unexpected error occurred",
		"error.unauthorized":         "Unauthorized",
		"error.api_key_required":     "API key is required",
		"error.invalid_api_key":      "Invalid API key",
		"error.forbidden":            "Forbidden",
		"error.not_found":            "Not found",
		"error.rate_limit_exceeded":  "Too many requests, please try again later",
		"error.conflict":             "Conflict",
		"error.validation.items":     "items: must be a non-empty list",
		"error.item_too_large":       "One or more items do not fit in any available box",
		"error.packing_failed":       "Packing computation could not place all items",
		"error.invalid_token":        "Invalid or expired token",
		"error.token_required":       "Authentication token is required",
		"error.timeout":              "Request timed out",

		"success.items_packed":    "Items packed successfully",
		"success.catalog_updated": "Box catalog updated successfully",
	},
	"pt": {
		"error.invalid_request":      "Requisição inválida",
		"error.invalid_request_body": "Corpo da requisição inválido",
		"error.internal_error":       "Ocorreu um erro inesperado",
		"error.unauthorized":         "Não autorizado",
		"error.api_key_required":     "Chave de API é obrigatória",
		"error.invalid_api_key":      "Chave de API inválida",
		"error.forbidden":            "Proibido",
		"error.not_found":            "Não encontrado",
		"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
		"error.conflict":             "Conflito",
		"error.validation.items":     "items: deve ser uma lista não vazia",
		"error.item_too_large":       "Um ou mais itens não cabem em nenhuma caixa disponível",
		"error.packing_failed":       "O cálculo de empacotamento não conseguiu alocar todos os itens",
		"error.invalid_token":        "Token inválido ou expirado",
		"error.token_required":       "Token de autenticação é obrigatório",
		"error.timeout":              "Tempo limite da requisição excedido",

		"success.items_packed":    "Itens empacotados com sucesso",
		"success.catalog_updated": "Catálogo de caixas atualizado com sucesso",
	},
	"nl": {
		"error.invalid_request":      "Ongeldig verzoek",
		"error.invalid_request_body": "Ongeldige aanvraag body",
		"error.internal_error":       "Er is een onverwachte fout opgetreden",
		"error.unauthorized":         "Niet geautoriseerd",
		"error.api_key_required":     "API-sleutel is vereist",
		"error.invalid_api_key":      "Ongeldige API-sleutel",
		"error.forbidden":            "Verboden",
		"error.not_found":            "Niet gevonden",
		"error.rate_limit_exceeded":  "Te veel verzoeken, probeer het later opnieuw",
		"error.conflict":             "Conflict",
		"error.validation.items":     "items: moet een niet-lege lijst zijn",
		"error.item_too_large":       "Een of meer artikelen passen in geen enkele beschikbare doos",
		"error.packing_failed":       "De inpakberekening kon niet alle artikelen plaatsen",
		"error.invalid_token":        "Ongeldig of verlopen token",
		"error.token_required":       "Authenticatietoken is vereist",
		"error.timeout":              "Verzoek verlopen",

		"success.items_packed":    "Artikelen succesvol ingepakt",
		"success.catalog_updated": "Dooscatalogus succesvol bijgewerkt",
	},
}
