// Package analysis содержит воспроизводимую логику сервиса: набор готовых
// шаблонов результатов, классификатор типа анализа и сборку итоговой записи.
package analysis

import "github.com/magabrotheeeer/medanalyzer/internal/models"

// Category — одна из трёх фиксированных категорий анализа.
type Category string

// Закрытый набор категорий. Классификатор всегда возвращает ровно одну из них.
const (
	CategoryBloodTest Category = "blood_test"
	CategoryXray      Category = "xray"
	CategoryUrineTest Category = "urine_test"
)

// templates — неизменяемая таблица готовых результатов по категориям.
// Содержимое задаётся при старте процесса и не сохраняется в БД.
var templates = map[Category]models.Template{
	CategoryBloodTest: {
		Indicators: []models.Indicator{
			{Name: "Гемоглобин", Value: "145 г/л", Norm: "120-160 г/л", Status: "normal", Description: "В пределах нормы"},
			{Name: "Эритроциты", Value: "4.2 ×10¹²/л", Norm: "3.8-5.1 ×10¹²/л", Status: "normal", Description: "Количество красных кровяных телец в норме"},
			{Name: "Лейкоциты", Value: "7.8 ×10⁹/л", Norm: "4.0-9.0 ×10⁹/л", Status: "normal", Description: "Иммунная система функционирует нормально"},
			{Name: "Глюкоза", Value: "5.8 ммоль/л", Norm: "3.9-6.1 ммоль/л", Status: "normal", Description: "Уровень сахара в крови в норме"},
		},
		Summary: "Результаты общего анализа крови показывают, что все основные показатели находятся в пределах референсных значений. Признаков воспалительного процесса или анемии не обнаружено.",
		Recommendations: []string{
			"Поддерживать здоровый образ жизни",
			"Сбалансированное питание",
			"Регулярные профилактические осмотры через 6 месяцев",
		},
	},
	CategoryXray: {
		Findings: []string{
			"Легочные поля чистые, без очаговых и инфильтративных изменений",
			"Корни легких структурны, не расширены",
			"Сердечная тень в пределах нормы",
			"Купола диафрагмы четкие, подвижные",
		},
		Summary: "Рентгенография органов грудной клетки не выявила патологических изменений. Легочные поля чистые, сердце в норме.",
		Recommendations: []string{
			"При появлении симптомов обратиться к врачу",
			"Профилактическое обследование через год",
			"Избегать переохлаждения",
		},
	},
	CategoryUrineTest: {
		Indicators: []models.Indicator{
			{Name: "Белок", Value: "0.02 г/л", Norm: "до 0.1 г/л", Status: "normal", Description: "Белок в моче в норме"},
			{Name: "Глюкоза", Value: "отсутствует", Norm: "отсутствует", Status: "normal", Description: "Глюкозы в моче не обнаружено"},
			{Name: "Лейкоциты", Value: "2-3 в п/з", Norm: "до 5 в п/з", Status: "normal", Description: "Количество лейкоцитов в норме"},
			{Name: "Эритроциты", Value: "1-2 в п/з", Norm: "до 2 в п/з", Status: "normal", Description: "Эритроциты в пределах нормы"},
		},
		Summary: "Общий анализ мочи показывает нормальные значения всех исследуемых параметров. Признаков заболеваний мочеполовой системы не выявлено.",
		Recommendations: []string{
			"Поддерживать водно-солевой баланс",
			"Соблюдать личную гигиену",
			"При появлении симптомов обратиться к урологу",
		},
	},
}

// TemplateFor возвращает шаблон результата для категории.
// Набор категорий закрытый, для любой из них шаблон существует.
func TemplateFor(cat Category) models.Template {
	return templates[cat]
}
