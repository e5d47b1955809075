package models

import "time"

// Indicator описывает один измеренный показатель в результате анализа.
type Indicator struct {
	Name        string `json:"name"`        // Название показателя
	Value       string `json:"value"`       // Измеренное значение
	Norm        string `json:"norm"`        // Референсный интервал
	Status      string `json:"status"`      // Метка статуса (normal и т.п.)
	Description string `json:"description"` // Человеко-читаемое пояснение
}

// Template — статическое содержимое результата для одной категории анализа.
// Категория содержит либо список показателей (Indicators), либо список
// находок (Findings), но не оба сразу. Шаблоны неизменяемы и не хранятся в БД.
type Template struct {
	Indicators      []Indicator `json:"indicators,omitempty"`
	Findings        []string    `json:"findings,omitempty"`
	Summary         string      `json:"summary"`
	Recommendations []string    `json:"recommendations"`
}

// Submission — данные одной заявки на анализ после разбора multipart-формы.
type Submission struct {
	UserID        string
	PatientName   string
	PatientAge    int
	PatientGender string
	AnalysisType  string
	Symptoms      string
	Medications   string
	FileName      *string
}

// AnalysisRecord — сохранённый результат одной заявки: метаданные заявки
// плюс полная копия подобранного шаблона. Запись создаётся один раз и
// после этого не изменяется.
type AnalysisRecord struct {
	AnalysisID    string    `json:"analysis_id"`
	UserID        string    `json:"user_id"`
	PatientName   string    `json:"patient_name"`
	PatientAge    int       `json:"patient_age"`
	PatientGender string    `json:"patient_gender"`
	AnalysisType  string    `json:"analysis_type"`
	Symptoms      string    `json:"symptoms"`
	Medications   string    `json:"medications"`
	FileName      *string   `json:"file_name"`
	CreatedAt     time.Time `json:"created_at"`
	AIConfidence  int       `json:"ai_confidence"`
	Status        string    `json:"status"`
	Template
}

// AnalysisSummary — усечённое представление записи для дашборда.
type AnalysisSummary struct {
	AnalysisID   string    `json:"analysis_id"`
	AnalysisType string    `json:"analysis_type"`
	CreatedAt    time.Time `json:"created_at"`
	AIConfidence int       `json:"ai_confidence"`
}

// AnalyzeRequest — поля multipart-формы заявки на анализ.
type AnalyzeRequest struct {
	UserID        string `validate:"required,uuid"`
	PatientName   string `validate:"required,min=2,max=100"`
	PatientAge    int    `validate:"gte=0,lte=150"`
	PatientGender string `validate:"required"`
	AnalysisType  string `validate:"required"`
	Symptoms      string
	Medications   string
}
