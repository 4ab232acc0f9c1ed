package xlsexport

import (
	"bytes"
	analyticsapimodels "interview-prep-backend/models/api/analytics"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportSummary(summary analyticsapimodels.PerformanceSummary) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var summaryHeaders = []string{"Metric", "Value"}
var categoryHeaders = []string{"Category", "Answers", "Average score"}
var trendHeaders = []string{"Session", "Completed at", "Score"}

func (i impl) ExportSummary(summary analyticsapimodels.PerformanceSummary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("error closing xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, summaryHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "error writing xlsx header")
	}
	row, err = writeSummaryData(f, sheet, summary, row)
	if err != nil {
		return nil, errors.Wrap(err, "error writing xlsx summary")
	}

	row++
	row, err = writeHeader(f, sheet, row, categoryHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "error writing xlsx header")
	}
	row, err = writeCategoryData(f, sheet, summary.Categories, row)
	if err != nil {
		return nil, errors.Wrap(err, "error writing xlsx categories")
	}

	row++
	row, err = writeHeader(f, sheet, row, trendHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "error writing xlsx header")
	}
	_, err = writeTrendData(f, sheet, summary.Trend, row)
	if err != nil {
		return nil, errors.Wrap(err, "error writing xlsx trend")
	}

	f.SetSheetName(sheet, "Performance")
	return f.WriteToBuffer()
}

func writeSummaryData(f *excelize.File, sheet string, summary analyticsapimodels.PerformanceSummary, row int) (int, error) {
	rows := [][2]interface{}{
		{"Sessions", summary.SessionCount},
		{"Completed sessions", summary.CompletedSessions},
		{"Answers", summary.AnswerCount},
		{"Average confidence score", summary.AverageScore},
		{"Average self rating", summary.AverageSelfRating},
	}
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(summaryHeaders), row+len(rows)); err != nil {
		return row, err
	}
	for _, item := range rows {
		row++
		if err := writeColumn(f, sheet, 1, row, item[0]); err != nil {
			return row, err
		}
		if err := writeColumn(f, sheet, 2, row, item[1]); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeCategoryData(f *excelize.File, sheet string, list []analyticsapimodels.CategoryStat, row int) (int, error) {
	if len(list) == 0 {
		return row, nil
	}
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(categoryHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Category); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.AnswerCount); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.AverageScore); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeTrendData(f *excelize.File, sheet string, list []analyticsapimodels.TrendPoint, row int) (int, error) {
	if len(list) == 0 {
		return row, nil
	}
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(trendHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.SessionID); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.CompletedAt.Format("02.01.2006 15:04")); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Score); err != nil {
			return row, err
		}
	}
	return row, nil
}
