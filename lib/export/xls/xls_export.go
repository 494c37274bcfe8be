package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	dbmodels "horeca-jobs-backend/models/db"
)

type Provider interface {
	ExportApplicationList(list []dbmodels.ApplicationWithJob) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"Вакансия", "Город", "Этап", "Дата отклика", "Дата найма", "Дата отказа", "Причина отказа"}

func (i impl) ExportApplicationList(list []dbmodels.ApplicationWithJob) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeApplicationData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Отклики")
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []dbmodels.ApplicationWithJob, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Вакансия"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.JobTitle); err != nil {
			return row, err
		}

		// "Город"
		col++
		if err := writeColumn(f, sheet, col, row, item.JobCity); err != nil {
			return row, err
		}

		// "Этап"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Дата отклика"
		col++
		if !item.AppliedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.AppliedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Дата найма"
		col++
		if item.HiredAt != nil {
			if err := writeColumn(f, sheet, col, row, item.HiredAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Дата отказа"
		col++
		if item.RejectedAt != nil {
			if err := writeColumn(f, sheet, col, row, item.RejectedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Причина отказа"
		col++
		if err := writeColumn(f, sheet, col, row, item.RejectReason); err != nil {
			return row, err
		}
	}
	return row, nil
}
