// Package catalog holds the fixed food category table and the static
// lookup tables (keywords, satiety classes, weather affinities) that the
// scoring pipeline reads. Everything here is immutable after process start.
package catalog

// ServeTemperature describes how a category is typically served.
type ServeTemperature string

const (
	ServeHot       ServeTemperature = "hot"
	ServeWarm      ServeTemperature = "warm"
	ServeCold      ServeTemperature = "cold"
	ServeHotOrCold ServeTemperature = "hot-or-cold"
)

// SatietyClass buckets categories by how filling they are.
type SatietyClass string

const (
	SatietyHearty   SatietyClass = "hearty"
	SatietyModerate SatietyClass = "moderate"
	SatietyLight    SatietyClass = "light"
)

// Category is one entry of the fixed food catalog.
type Category struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Localized   string           `json:"nameLocalized"`
	Serve       ServeTemperature `json:"serveTemperature"`
	Description string           `json:"description"`
}

var categories = []Category{
	{ID: 1, Name: "korean", Localized: "한식", Serve: ServeHot, Description: "Korean staples such as rice, soup and banchan"},
	{ID: 2, Name: "chinese", Localized: "중식", Serve: ServeHot, Description: "Korean-Chinese dishes like jajangmyeon and jjamppong"},
	{ID: 3, Name: "japanese", Localized: "일식", Serve: ServeWarm, Description: "Japanese dishes such as ramen, udon and donburi"},
	{ID: 4, Name: "western", Localized: "양식", Serve: ServeWarm, Description: "Western plates like pasta and steak"},
	{ID: 5, Name: "bunsik", Localized: "분식", Serve: ServeWarm, Description: "Korean street snacks: tteokbokki, gimbap, fritters"},
	{ID: 6, Name: "stew", Localized: "찜·탕", Serve: ServeHot, Description: "Braises, soups and hot pots"},
	{ID: 7, Name: "grilled", Localized: "구이", Serve: ServeHot, Description: "Grilled meat, Korean BBQ"},
	{ID: 8, Name: "pork-cutlet", Localized: "돈까스", Serve: ServeWarm, Description: "Breaded cutlets, katsu"},
	{ID: 9, Name: "chicken", Localized: "치킨", Serve: ServeHot, Description: "Fried and seasoned chicken"},
	{ID: 10, Name: "pizza", Localized: "피자", Serve: ServeWarm, Description: "Pizza"},
	{ID: 11, Name: "burger", Localized: "버거", Serve: ServeWarm, Description: "Burgers and fries"},
	{ID: 12, Name: "asian", Localized: "아시안", Serve: ServeWarm, Description: "Pan-Asian dishes: pho, pad thai, curry"},
	{ID: 13, Name: "lunchbox", Localized: "도시락", Serve: ServeWarm, Description: "Packed lunch boxes"},
	{ID: 14, Name: "sandwich", Localized: "샌드위치", Serve: ServeCold, Description: "Sandwiches, bagels and toast"},
	{ID: 15, Name: "salad", Localized: "샐러드", Serve: ServeCold, Description: "Salads and poke bowls"},
	{ID: 16, Name: "raw-fish", Localized: "회·초밥", Serve: ServeCold, Description: "Sliced raw fish and sushi"},
	{ID: 17, Name: "dessert", Localized: "디저트", Serve: ServeCold, Description: "Cakes, shaved ice, ice cream"},
	{ID: 18, Name: "coffee-tea", Localized: "커피·차", Serve: ServeHotOrCold, Description: "Coffee, tea and other drinks"},
	{ID: 19, Name: "porridge", Localized: "죽", Serve: ServeHot, Description: "Korean rice porridge"},
	{ID: 20, Name: "snacks", Localized: "간식", Serve: ServeHotOrCold, Description: "Light bites between meals"},
}

// keywords maps a category id to the trigger strings counted by the
// preference analyzer. Keeping them in one table makes the heuristics
// testable without touching scoring logic.
var keywords = map[int][]string{
	1:  {"한식", "korean", "김치", "불고기", "된장", "비빔밥", "국밥", "제육"},
	2:  {"중식", "chinese", "짜장", "짬뽕", "탕수육", "마라"},
	3:  {"일식", "japanese", "라멘", "우동", "돈부리", "규동", "소바"},
	4:  {"양식", "western", "파스타", "스테이크", "리조또"},
	5:  {"분식", "떡볶이", "김밥", "순대", "튀김", "라면"},
	6:  {"찜", "탕", "찌개", "전골", "감자탕", "부대찌개"},
	7:  {"구이", "삼겹살", "갈비", "바베큐", "bbq"},
	8:  {"돈까스", "돈카츠", "카츠", "cutlet"},
	9:  {"치킨", "chicken", "후라이드", "양념치킨"},
	10: {"피자", "pizza", "페퍼로니"},
	11: {"버거", "burger", "햄버거"},
	12: {"아시안", "asian", "쌀국수", "팟타이", "분짜", "커리"},
	13: {"도시락", "lunchbox", "벤또"},
	14: {"샌드위치", "sandwich", "베이글", "토스트"},
	15: {"샐러드", "salad", "포케"},
	16: {"초밥", "사시미", "스시", "sushi", "물회"},
	17: {"디저트", "dessert", "케이크", "빙수", "아이스크림"},
	18: {"커피", "coffee", "라떼", "녹차", "홍차"},
	19: {"죽", "porridge", "전복죽", "호박죽"},
	20: {"간식", "snack", "과자", "붕어빵", "호떡"},
}

// satietyClasses is a fixed lookup by localized name, not computed.
var satietyClasses = map[string]SatietyClass{
	"한식":   SatietyHearty,
	"중식":   SatietyHearty,
	"찜·탕":  SatietyHearty,
	"구이":   SatietyHearty,
	"돈까스":  SatietyHearty,
	"치킨":   SatietyHearty,
	"버거":   SatietyHearty,
	"피자":   SatietyModerate,
	"양식":   SatietyModerate,
	"일식":   SatietyModerate,
	"분식":   SatietyModerate,
	"샌드위치": SatietyModerate,
	"도시락":  SatietyModerate,
	"아시안":  SatietyModerate,
	"샐러드":  SatietyLight,
	"디저트":  SatietyLight,
	"커피·차": SatietyLight,
	"간식":   SatietyLight,
	"죽":    SatietyLight,
}

// freshOnHumid lists categories that get the high-humidity bonus.
var freshOnHumid = map[string]bool{
	"샐러드":  true,
	"회·초밥": true,
	"디저트":  true,
}

// warmingOnDry lists categories that get the low-humidity bonus.
var warmingOnDry = map[string]bool{
	"찜·탕":  true,
	"죽":    true,
	"커피·차": true,
}

// coldWeatherBonus grants extra points on top of the hot-serving match
// when the weather is cold.
var coldWeatherBonus = map[string]float64{
	"찜·탕": 2,
	"죽":   2,
	"한식":  1,
}

// All returns the full category table. Callers must treat it as read-only.
func All() []Category {
	return categories
}

// ByID looks a category up by its stable id.
func ByID(id int) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Keywords returns the trigger strings for a category id.
func Keywords(id int) []string {
	return keywords[id]
}

// SatietyClassOf returns the hearty/moderate/light class for a localized
// category name. Unclassified categories report ok=false and take no
// satiety term.
func SatietyClassOf(localized string) (SatietyClass, bool) {
	class, ok := satietyClasses[localized]
	return class, ok
}

// FreshOnHumid reports whether the category pairs well with high humidity.
func FreshOnHumid(localized string) bool {
	return freshOnHumid[localized]
}

// WarmingOnDry reports whether the category pairs well with dry air.
func WarmingOnDry(localized string) bool {
	return warmingOnDry[localized]
}

// ColdWeatherBonus returns the extra points a hot-serving category earns
// in cold weather, 0 for most categories.
func ColdWeatherBonus(localized string) float64 {
	return coldWeatherBonus[localized]
}
