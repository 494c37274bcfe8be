package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	dbmodels "horeca-jobs-backend/models/db"
)

// GenerateSummary - сводка по отклику с полной историей переводов
func GenerateSummary(rec dbmodels.Application, history []dbmodels.ApplicationStatusHistory) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateSummary panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.Cell(0, 10, "Сводка по отклику")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	jobTitle := ""
	if rec.Job != nil {
		jobTitle = rec.Job.Title
	}
	writeSummaryLine(pdf, "Вакансия", jobTitle)
	writeSummaryLine(pdf, "Текущий этап", rec.Status.ToHuman())
	writeSummaryLine(pdf, "Дата отклика", rec.AppliedAt.Format("02.01.2006 15:04"))
	if rec.RejectReason != "" {
		writeSummaryLine(pdf, "Причина отказа", rec.RejectReason)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "История переводов")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	for _, item := range history {
		line := fmt.Sprintf("%v  %v -> %v  (%v)",
			item.CreatedAt.Format("02.01.2006 15:04"),
			fromStatusName(item),
			item.ToStatus.ToHuman(),
			item.UserName)
		pdf.MultiCell(0, 6, line, "", "L", false)
		if item.Notes != "" {
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, "    "+item.Notes, "", "L", false)
			pdf.SetFont("Arial", "", 11)
		}
		if item.PreHireStatement != "" {
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, "    Подтверждение права на работу: "+item.PreHireStatement, "", "L", false)
			pdf.SetFont("Arial", "", 11)
		}
		pdf.Ln(1)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummaryLine(pdf *fpdf.Fpdf, name, value string) {
	pdf.MultiCell(0, 6, fmt.Sprintf("%v: %v", name, value), "", "L", false)
}

func fromStatusName(item dbmodels.ApplicationStatusHistory) string {
	if item.FromStatus == nil {
		return "—"
	}
	return item.FromStatus.ToHuman()
}
