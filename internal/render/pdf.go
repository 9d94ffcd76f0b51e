package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

// Sender is the business block printed as the issuing party on the PDF.
type Sender struct {
	Name        string
	Email       string
	Address     string
	BankDetails string
}

// RenderPDF renders the invoice projection to a PDF document.
func RenderPDF(doc Document, sender Sender) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(10,
		text.NewCol(12, "Invoice "+doc.DisplayNumber(), props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(20,
		col.New(6).Add(
			text.New(doc.Title, props.Text{Top: 0}),
			text.New("Date of issue: "+doc.CreatedAt.Format("2006-01-02"), props.Text{Top: 5}),
			text.New(fmt.Sprintf("Due: %s (%d days)", doc.DueDate().Format("2006-01-02"), doc.DueInDays), props.Text{Top: 9}),
		),
		col.New(6),
	)

	m.AddRow(35,
		col.New(6).Add(
			text.New(sender.Name, props.Text{Style: fontstyle.Bold}),
			text.New(sender.Address, props.Text{Top: 5}),
			text.New(sender.Email, props.Text{Top: 18}),
		),
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold}),
			text.New(doc.CustomerName, props.Text{Top: 5}),
			text.New(doc.CustomerAddress, props.Text{Top: 9}),
			text.New(doc.CustomerEmail, props.Text{Top: 22}),
		),
	)

	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Hours", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Rate", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, line := range doc.Lines {
		m.AddRow(12,
			text.NewCol(6, line.Description, props.Text{Size: 9}),
			text.NewCol(2, formatOptional(line.Hours), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, formatOptional(line.PricePerHour), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, formatMoney(line.Amount, doc.Currency), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Net", props.Text{Size: 9}),
		text.NewCol(2, formatMoney(doc.Sum, doc.Currency), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, formatMoney(doc.SumWithTax, doc.Currency), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	if sender.BankDetails != "" {
		m.AddRow(20,
			text.NewCol(12, sender.BankDetails, props.Text{Size: 9, Top: 5}),
		)
	}

	rendered, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return rendered.GetBytes(), nil
}

func formatMoney(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(2) + " " + currency
}

func formatOptional(value *decimal.Decimal) string {
	if value == nil {
		return ""
	}
	return value.StringFixed(2)
}
