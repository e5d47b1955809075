package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/medanalyzer/internal/models"
)

// CreateAnalysis сохраняет документ записи анализа в коллекцию analyses.
func (s *Storage) CreateAnalysis(ctx context.Context, rec models.AnalysisRecord) error {
	const op = "storage.CreateAnalysis"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO analyses (analysis_id, user_id, created_at, doc)
			  VALUES ($1, $2, $3, $4)`
	if _, err := s.DB.ExecContext(ctx, query,
		rec.AnalysisID, rec.UserID, rec.CreatedAt, doc); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ReadAnalysis возвращает запись анализа по её идентификатору или ErrNotFound.
func (s *Storage) ReadAnalysis(ctx context.Context, analysisID string) (*models.AnalysisRecord, error) {
	const op = "storage.ReadAnalysis"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT doc FROM analyses WHERE analysis_id = $1 LIMIT 1`
	var doc []byte
	if err := s.DB.QueryRowContext(ctx, query, analysisID).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var rec models.AnalysisRecord
	if err := json.Unmarshal(doc, &rec); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &rec, nil
}

// ListAnalysesByUser возвращает до limit последних записей пользователя,
// новые первыми.
func (s *Storage) ListAnalysesByUser(ctx context.Context, userID string, limit int) ([]*models.AnalysisRecord, error) {
	const op = "storage.ListAnalysesByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT doc FROM analyses
			  WHERE user_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2`
	rows, err := s.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.AnalysisRecord
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		var rec models.AnalysisRecord
		if err := json.Unmarshal(doc, &rec); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountAnalysesByUser возвращает общее число записей пользователя.
func (s *Storage) CountAnalysesByUser(ctx context.Context, userID string) (int, error) {
	const op = "storage.CountAnalysesByUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	query := `SELECT COUNT(*) FROM analyses WHERE user_id = $1`
	if err := s.DB.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
