package analysis

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/medanalyzer/internal/models"
)

// Границы уверенности "ИИ", включительно.
const (
	confidenceMin = 85
	confidenceMax = 98
)

// Assembler собирает запись анализа из заявки и подобранного шаблона.
// Источники времени и случайности передаются снаружи, чтобы в тестах
// получать детерминированные записи.
type Assembler struct {
	now func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewAssembler создает Assembler с переданными источниками времени и случайности.
func NewAssembler(now func() time.Time, rnd *rand.Rand) *Assembler {
	return &Assembler{
		now: now,
		rnd: rnd,
	}
}

// Assemble формирует новую запись анализа: свежий идентификатор, текущее
// время, уверенность из [85, 98], статус "completed" и дословную копию
// полей шаблона категории. Побочных эффектов нет, сохранение записи —
// забота вызывающего кода.
func (a *Assembler) Assemble(sub models.Submission, cat Category) models.AnalysisRecord {
	return models.AnalysisRecord{
		AnalysisID:    uuid.NewString(),
		UserID:        sub.UserID,
		PatientName:   sub.PatientName,
		PatientAge:    sub.PatientAge,
		PatientGender: sub.PatientGender,
		AnalysisType:  sub.AnalysisType,
		Symptoms:      sub.Symptoms,
		Medications:   sub.Medications,
		FileName:      sub.FileName,
		CreatedAt:     a.now(),
		AIConfidence:  a.confidence(),
		Status:        "completed",
		Template:      TemplateFor(cat),
	}
}

// confidence возвращает равномерное целое из отрезка [confidenceMin, confidenceMax].
// rand.Rand не потокобезопасен, обращения сериализуются.
func (a *Assembler) confidence() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return confidenceMin + a.rnd.Intn(confidenceMax-confidenceMin+1)
}
