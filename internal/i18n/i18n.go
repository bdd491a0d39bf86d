package i18n

import (
	"golang.org/x/text/language"
)

// Locale is a supported storefront language.
type Locale string

const (
	LocaleUz Locale = "uz"
	LocaleRu Locale = "ru"
)

// supported is ordered so Uzbek wins ties; it is the storefront default.
var supported = []language.Tag{
	language.Make("uz"),
	language.Make("ru"),
}

var matcher = language.NewMatcher(supported)

// Resolve picks the active locale for a request. An explicit ?lang= value
// wins; otherwise the Accept-Language header is matched against the two
// supported locales; otherwise Uzbek.
func Resolve(param, acceptLanguage string) Locale {
	switch param {
	case "uz":
		return LocaleUz
	case "ru":
		return LocaleRu
	}
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			if _, idx, conf := matcher.Match(tags...); conf > language.No && idx == 1 {
				return LocaleRu
			}
		}
	}
	return LocaleUz
}

// Translator looks up storefront copy for one locale. It is a plain value
// meant to be passed explicitly into whatever composes a view; there is no
// package-level active language.
type Translator struct {
	locale Locale
}

// NewTranslator returns a Translator for the given locale.
func NewTranslator(locale Locale) Translator {
	return Translator{locale: locale}
}

// Locale returns the active locale.
func (tr Translator) Locale() Locale {
	return tr.locale
}

// T returns the text for key in the active locale, falling back to the key
// itself when the table has no entry.
func (tr Translator) T(key string) string {
	e, ok := table[key]
	if !ok {
		return key
	}
	if tr.locale == LocaleRu {
		return e.ru
	}
	return e.uz
}

type entry struct {
	uz string
	ru string
}

var table = map[string]entry{
	// Navigation
	"nav.home":    {"Bosh sahifa", "Главная"},
	"nav.catalog": {"Katalog", "Каталог"},
	"nav.men":     {"Erkaklar", "Мужские"},
	"nav.women":   {"Ayollar", "Женские"},
	"nav.new":     {"Yangi", "Новинки"},
	"nav.sale":    {"Chegirma", "Скидки"},

	// Hero
	"hero.title":    {"Original krossovkalar.", "Оригинальные кроссовки."},
	"hero.subtitle": {"Haqiqiy qulaylik.", "Настоящий комфорт."},
	"hero.cta":      {"Xarid qilish", "Купить сейчас"},
	"hero.explore":  {"Ko'rish", "Смотреть"},

	// Products
	"products.featured":    {"Mashhur modellar", "Популярные модели"},
	"products.new":         {"Yangi kelganlar", "Новые поступления"},
	"products.orderNow":    {"Buyurtma berish", "Заказать"},
	"products.addToCart":   {"Savatga qo'shish", "В корзину"},
	"products.size":        {"O'lcham", "Размер"},
	"products.price":       {"Narx", "Цена"},
	"products.description": {"Tavsif", "Описание"},
	"products.share":       {"Ulashish", "Поделиться"},
	"products.copyLink":    {"Havolani nusxalash", "Копировать ссылку"},
	"products.linkCopied":  {"Havola nusxalandi!", "Ссылка скопирована!"},

	// Categories
	"categories.title": {"Kategoriyalar", "Категории"},
	"categories.men":   {"Erkaklar uchun", "Для мужчин"},
	"categories.women": {"Ayollar uchun", "Для женщин"},
	"categories.new":   {"Yangi kolleksiya", "Новая коллекция"},
	"categories.sale":  {"Chegirmalar", "Распродажа"},

	// Why choose us
	"why.title":        {"Nega bizni tanlaysiz?", "Почему выбирают нас?"},
	"why.original":     {"100% Original", "100% Оригинал"},
	"why.originalDesc": {"Barcha mahsulotlar sertifikatlangan va haqiqiy", "Вся продукция сертифицирована и подлинная"},
	"why.delivery":     {"Tez yetkazib berish", "Быстрая доставка"},
	"why.deliveryDesc": {"O'zbekiston bo'ylab 1-3 kun ichida", "По всему Узбекистану за 1-3 дня"},
	"why.easy":         {"Oson buyurtma", "Простой заказ"},
	"why.easyDesc":     {"Ro'yxatdan o'tmasdan buyurtma bering", "Заказывайте без регистрации"},

	// Checkout
	"checkout.title":      {"Buyurtma berish", "Оформление заказа"},
	"checkout.fullName":   {"Ismingiz", "Ваше имя"},
	"checkout.phone":      {"Telefon raqami", "Номер телефона"},
	"checkout.payment":    {"To'lov usuli", "Способ оплаты"},
	"checkout.card":       {"Karta orqali", "Картой"},
	"checkout.cash":       {"Naqd pul", "Наличные"},
	"checkout.coupon":     {"Promo kod", "Промокод"},
	"checkout.apply":      {"Qo'llash", "Применить"},
	"checkout.confirm":    {"Buyurtmani tasdiqlash", "Подтвердить заказ"},
	"checkout.success":    {"Buyurtma qabul qilindi!", "Заказ принят!"},
	"checkout.successMsg": {"Tez orada siz bilan bog'lanamiz", "Мы свяжемся с вами в ближайшее время"},

	// Filters
	"filter.brand":     {"Brend", "Бренд"},
	"filter.price":     {"Narx", "Цена"},
	"filter.size":      {"O'lcham", "Размер"},
	"filter.sort":      {"Saralash", "Сортировка"},
	"filter.newest":    {"Eng yangi", "Новые"},
	"filter.priceLow":  {"Arzon", "Дешевле"},
	"filter.priceHigh": {"Qimmat", "Дороже"},
	"filter.all":       {"Barchasi", "Все"},

	// Footer
	"footer.contact": {"Bog'lanish", "Контакты"},
	"footer.follow":  {"Bizni kuzating", "Следите за нами"},
	"footer.rights":  {"Barcha huquqlar himoyalangan", "Все права защищены"},

	// Common
	"common.currency": {"so'm", "сум"},
	"common.viewAll":  {"Barchasini ko'rish", "Смотреть все"},
	"common.back":     {"Orqaga", "Назад"},
	"common.close":    {"Yopish", "Закрыть"},
}
