package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"campus-outpass-backend/models"
	leaveapimodels "campus-outpass-backend/models/api/leave"
)

type Provider interface {
	ExportRequestList(list []leaveapimodels.LeaveRequestView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var requestHeaders = []string{"Student ID", "Name", "Branch", "Year", "Phone", "Type", "Start Date", "End Date", "Out Time", "In Time", "Reason", "Status", "Decided By"}

func (i impl) ExportRequestList(list []leaveapimodels.LeaveRequestView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx close failed")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, requestHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write failed")
	}
	if len(list) != 0 {
		_, err = writeRequestData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "xlsx data write failed")
		}
	}
	f.SetSheetName(sheet, "Leave Requests")
	return f.WriteToBuffer()
}

func writeRequestData(f *excelize.File, sheet string, list []leaveapimodels.LeaveRequestView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(requestHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.StudentID); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.StudentName); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.StudentBranch); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.StudentYear); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.StudentPhone); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Kind.ToHuman()); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.StartDate); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.EndDate); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.OutTime); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.InTime); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Reason); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, decidedBy(item)); err != nil {
			return row, err
		}
	}
	return row, nil
}

func decidedBy(item leaveapimodels.LeaveRequestView) string {
	switch item.Status {
	case models.LeaveStatusApproved:
		return item.ApprovedBy
	case models.LeaveStatusRejected:
		return item.RejectedBy
	case models.LeaveStatusForwarded:
		return item.ForwardedTo.Role().ToHuman()
	}
	return ""
}
