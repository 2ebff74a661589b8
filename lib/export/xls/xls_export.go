package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	ExportTicketList(list []dbmodels.Ticket) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var ticketHeaders = []string{"Номер", "Отдел", "Тип", "Категория", "Приоритет", "Тема", "Статус", "Маршрутизация", "Создан"}

func (i impl) ExportTicketList(list []dbmodels.Ticket) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, ticketHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeTicketData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Тикеты")
	return f.WriteToBuffer()
}

func writeTicketData(f *excelize.File, sheet string, list []dbmodels.Ticket, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(ticketHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Номер"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.ID); err != nil {
			return row, err
		}

		// "Отдел"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Department)); err != nil {
			return row, err
		}

		// "Тип"
		col++
		if err := writeColumn(f, sheet, col, row, item.Type); err != nil {
			return row, err
		}

		// "Категория"
		col++
		if err := writeColumn(f, sheet, col, row, item.Category); err != nil {
			return row, err
		}

		// "Приоритет"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Priority)); err != nil {
			return row, err
		}

		// "Тема"
		col++
		if err := writeColumn(f, sheet, col, row, item.Title); err != nil {
			return row, err
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		// "Маршрутизация"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.RouteStatus)); err != nil {
			return row, err
		}

		// "Создан"
		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006 15:04")); err != nil {
			return row, err
		}
	}
	return row, nil
}
