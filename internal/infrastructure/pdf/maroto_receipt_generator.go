// Package pdf implementa la generación del recibo de venta en PDF.
//
// Layout (ticket A5):
//
//	┌──────────────────────────────────────┐
//	│  CABECERA: nombre y datos de tienda  │
//	│  N° Bill + fecha + modo de pago      │
//	│  ──────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.U. | Tot │
//	│  ──────────────────────────────────  │
//	│  Subtotal / GST / Descuento / TOTAL  │
//	│  Barcode del N° de bill              │
//	└──────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/retail-pos/internal/application/ports"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa ports.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// Generate genera el recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) Generate(sale *entity.Sale, items []entity.SaleItem, header []string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "courier", Size: 9}).
		WithTitle("Recibo "+sale.BillNumber, true).
		Build()

	m := maroto.New(cfg)

	for _, r := range headerRows(sale, header) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))

	m.AddRows(tableHeaderRow())
	for _, r := range itemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))
	m.AddRows(billBarcodeRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRows: líneas de cabecera de la tienda + datos del bill.
func headerRows(sale *entity.Sale, header []string) []core.Row {
	out := make([]core.Row, 0, len(header)+1)
	for i, h := range header {
		style := props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}
		if i == 0 {
			style = props.Text{Style: fontstyle.Bold, Size: 13, Align: align.Center, Color: colorPrimary, Top: 1}
		}
		out = append(out, row.New(6).Add(col.New(12).Add(text.New(h, style))))
	}

	out = append(out, row.New(10).Add(
		col.New(6).Add(
			text.New(sale.BillNumber, props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}),
			text.New("Cajero: "+sale.CashierEmail, props.Text{Size: 7, Top: 7, Color: colorGray}),
		),
		col.New(6).Add(
			text.New(sale.CreatedAt.Format("02/01/2006 15:04"), props.Text{Size: 8, Align: align.Right, Top: 2}),
			text.New("Pago: "+sale.PaymentMode, props.Text{Size: 8, Align: align.Right, Top: 7, Color: colorGray}),
		),
	))
	return out
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// itemRows: una fila por línea de venta.
func itemRows(items []entity.SaleItem) []core.Row {
	out := make([]core.Row, 0, len(items))
	for _, it := range items {
		out = append(out, row.New(5).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8, Align: align.Center})),
			col.New(5).Add(text.New(it.Name, props.Text{Size: 8, Align: align.Left})),
			col.New(2).Add(text.New(it.Price.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
			col.New(3).Add(text.New(it.Total.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return out
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(sale *entity.Sale) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 8, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 8, Align: align.Right, Top: top})
	}

	return row.New(24).Add(
		col.New(4),
		col.New(5).Add(
			label("Subtotal:", 1),
			label(fmt.Sprintf("GST (%s%%):", sale.GSTPercent.StringFixed(0)), 5),
			label(fmt.Sprintf("Descuento (%s%%):", sale.DiscountPercent.StringFixed(0)), 9),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 15}),
		),
		col.New(3).Add(
			value(sale.Subtotal.StringFixed(2), 1),
			value(sale.GSTAmount.StringFixed(2), 5),
			value("-"+sale.DiscountAmount.StringFixed(2), 9),
			text.New(sale.Total.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 15}),
		),
	)
}

// billBarcodeRow: el número de bill como barcode CODE128 para reimpresiones.
func billBarcodeRow(sale *entity.Sale) core.Row {
	return row.New(20).Add(
		col.New(3),
		col.New(6).Add(
			code.NewBar(sale.BillNumber, props.Barcode{
				Center:  true,
				Percent: 90,
				Top:     3,
			}),
			text.New(sale.BillNumber, props.Text{Size: 7, Align: align.Center, Top: 16, Color: colorGray}),
		),
		col.New(3),
	)
}
