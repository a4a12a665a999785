package export

import (
	"offerforge/internal/errors"
	"offerforge/models"
	"offerforge/ports"

	"github.com/xuri/excelize/v2"
)

// renderXLSX writes the package to a workbook: one sheet per tier plus
// a comparison sheet. No timestamps are embedded so the same record
// always renders the same bytes.
func (e *Exporter) renderXLSX(record *ports.OfferRecord) (*Result, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeOverviewSheet(f, &record.Package); err != nil {
		return nil, err
	}
	if err := writeComparisonSheet(f, record.Package.Comparison); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}
	return &Result{
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Filename:    "offer-" + record.ID.String() + ".xlsx",
		Data:        buf.Bytes(),
	}, nil
}

func writeOverviewSheet(f *excelize.File, pkg *models.OfferPackage) error {
	const sheet = "Offer"
	f.SetSheetName("Sheet1", sheet)

	headers := []interface{}{"Tier", "Price/Month", "Contract", "Hours/Month", "Promise", "Guarantee", "Timeline"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return errors.Wrap(err, "write header row")
	}

	row := 2
	for _, name := range []models.TierName{models.TierStarter, models.TierCore, models.TierPremium} {
		tier := pkg.TierByName(name)
		if tier == nil {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		values := []interface{}{
			tier.DisplayName,
			tier.MonthlyPrice,
			string(tier.ContractTerm),
			tier.MonthlyHours,
			tier.Promise,
			tier.Guarantee,
			tier.Timeline,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrap(err, "write tier row")
		}
		row++
	}

	cell, _ := excelize.CoordinatesToCellName(1, row+1)
	summary := []interface{}{"Conversion Score", pkg.Assessment.Score}
	if err := f.SetSheetRow(sheet, cell, &summary); err != nil {
		return errors.Wrap(err, "write score row")
	}
	return nil
}

func writeComparisonSheet(f *excelize.File, rows []models.ComparisonRow) error {
	const sheet = "Comparison"
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.Wrap(err, "create comparison sheet")
	}

	headers := []interface{}{"Feature", "Starter", "Core", "Premium"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return errors.Wrap(err, "write comparison header")
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{row.Feature, row.Starter, row.Core, row.Premium}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrap(err, "write comparison row")
		}
	}
	return nil
}
