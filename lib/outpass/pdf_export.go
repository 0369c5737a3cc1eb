package outpass

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	leavereqstore "campus-outpass-backend/lib/leave-req/store"
	signaturestorage "campus-outpass-backend/lib/signature-storage"
	"campus-outpass-backend/memstore"
	"campus-outpass-backend/models"
	storemodels "campus-outpass-backend/models/store"
)

var ErrNotApproved = errors.New("outpass is only available for an approved request")

type Provider interface {
	Generate(ctx context.Context, requestID string) (pdfFile []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(memstore.DB)
}

func NewInstance(db *memstore.Database) Provider {
	return impl{
		store: leavereqstore.NewInstance(db),
	}
}

type impl struct {
	store leavereqstore.Provider
}

// Generate renders the printable outpass for an approved request.
func (i impl) Generate(ctx context.Context, requestID string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("Generate panic recover: %v", r)
		}
	}()
	rec := i.store.GetByID(requestID)
	if rec == nil {
		return nil, errors.New("leave request not found")
	}
	if rec.Status != models.LeaveStatusApproved {
		return nil, ErrNotApproved
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Approved Outpass", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	writeField(pdf, "Student ID", rec.StudentID)
	writeField(pdf, "Name", rec.StudentName)
	writeField(pdf, "Branch", rec.StudentBranch)
	writeField(pdf, "Year", rec.StudentYear)
	writeField(pdf, "Phone Number", rec.StudentPhone)
	writeField(pdf, "Type", rec.Kind.ToHuman())
	writeField(pdf, "Start Date", rec.StartDate)
	writeField(pdf, "End Date", rec.EndDate)
	if rec.Kind == models.RequestKindOuting {
		writeField(pdf, "Out Time", rec.OutTime)
		writeField(pdf, "In Time", rec.InTime)
	}
	writeField(pdf, "Reason", rec.Reason)

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Approved By", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	i.putSignature(ctx, pdf, rec)
	pdf.CellFormat(0, 8, rec.ApprovedBy, "", 1, "L", false, 0, "")

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := bytes.Buffer{}
	if err = pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "outpass rendering failed")
	}
	return buf.Bytes(), nil
}

// putSignature embeds the approver signature image above the name. A
// missing image is tolerated, the outpass stays valid as text.
func (i impl) putSignature(ctx context.Context, pdf *fpdf.Fpdf, rec *storemodels.LeaveRequest) {
	if signaturestorage.Instance == nil || rec.ApproverSignature == "" {
		return
	}
	img, err := signaturestorage.Instance.GetSignature(ctx, rec.ApproverSignature)
	if err != nil {
		log.WithField("rec_id", rec.ID).
			WithError(err).
			Error("signature image fetch failed")
		return
	}
	if len(img) == 0 {
		return
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(rec.ApproverSignature, opts, bytes.NewReader(img))
	pdf.ImageOptions(rec.ApproverSignature, pdf.GetX(), pdf.GetY(), 40, 0, true, opts, 0, "")
}

func writeField(pdf *fpdf.Fpdf, label, value string) {
	pdf.CellFormat(50, 8, fmt.Sprintf("%s:", label), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
}
