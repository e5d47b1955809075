package analysis

import "strings"

// classifyRule — одно правило подбора категории по подстроке.
type classifyRule struct {
	keyword  string
	category Category
}

// Порядок правил значим: выигрывает первое совпадение.
var classifyRules = []classifyRule{
	{"кровь", CategoryBloodTest},
	{"blood", CategoryBloodTest},
	{"рентген", CategoryXray},
	{"xray", CategoryXray},
	{"моча", CategoryUrineTest},
	{"urine", CategoryUrineTest},
}

// Classify определяет категорию по свободному тексту типа анализа.
// Поиск подстрок регистронезависимый; если ни одно правило не подошло,
// возвращается CategoryBloodTest. Отдельной ветки "неизвестный тип" нет,
// функция тотальна на любых строках, включая пустую.
func Classify(analysisType string) Category {
	lowered := strings.ToLower(analysisType)
	for _, rule := range classifyRules {
		if strings.Contains(lowered, rule.keyword) {
			return rule.category
		}
	}
	return CategoryBloodTest
}
